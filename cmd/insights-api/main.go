package main

import (
	"log"
	"os"

	_ "go-insights-dashboard/docs"
	"go-insights-dashboard/internal/api"
	"go-insights-dashboard/internal/api/handler"
	"go-insights-dashboard/internal/config"
	"go-insights-dashboard/internal/session"
	"go-insights-dashboard/internal/store"
	"go-insights-dashboard/pkg/router"
	"go-insights-dashboard/pkg/utils"
)

// @title Opportunity Insights API
// @version 1.0
// @description Upload opportunity data, filter it, and read back summary metrics and ranked chart series.
// @BasePath /api/v1
func main() {
	cfg, err := config.Load(os.Getenv("INSIGHTS_CONFIG"))
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// Init DB
	if err := store.InitDB(cfg.DBPath); err != nil {
		log.Fatalf("store: %v", err)
	}
	defer store.Close()

	outputs := utils.NewOutputManager(cfg.OutputDir)
	handler.Setup(session.NewRegistry(), outputs, cfg.MaxUploadMB<<20, cfg.DefaultTopN)

	// Create router and register API routes
	r := router.New()
	api.RegisterRoutes(r)

	// Start server
	if err := r.Start(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
