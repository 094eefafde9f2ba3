// Package config loads server settings from defaults, environment variables
// and an optional YAML file, in increasing order of precedence.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds everything the API server needs at startup.
type Config struct {
	ListenAddr  string `mapstructure:"listen_addr"`
	DBPath      string `mapstructure:"db_path"`
	OutputDir   string `mapstructure:"output_dir"`
	MaxUploadMB int64  `mapstructure:"max_upload_mb"`
	DefaultTopN int    `mapstructure:"default_top_n"`
}

// Load reads configuration. cfgFile may be empty, in which case only defaults
// and INSIGHTS_* environment variables apply.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("INSIGHTS")
	v.AutomaticEnv()

	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("db_path", "insights.db")
	v.SetDefault("output_dir", "outputs")
	v.SetDefault("max_upload_mb", 32)
	v.SetDefault("default_top_n", 10)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
