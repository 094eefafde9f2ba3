package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"100", 100},
		{"1,000,000.50", 1000000.50},
		{" 42 ", 42},
		{"-3.5", -3.5},
		{"0", 0},
	}
	for _, tc := range cases {
		got, err := ParseNumber(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := ParseNumber("TBD")
	assert.Error(t, err)
	_, err = ParseNumber("")
	assert.Error(t, err)
}

func TestToFloat(t *testing.T) {
	f, ok := ToFloat(float64(1.5))
	assert.True(t, ok)
	assert.Equal(t, 1.5, f)

	f, ok = ToFloat("2,500")
	assert.True(t, ok)
	assert.Equal(t, float64(2500), f)

	_, ok = ToFloat(nil)
	assert.False(t, ok)
	_, ok = ToFloat("Acme")
	assert.False(t, ok)
}

func TestCellText(t *testing.T) {
	assert.Equal(t, "", CellText(nil))
	assert.Equal(t, "Acme", CellText("Acme"))
	assert.Equal(t, "1500000", CellText(float64(1500000)))
	assert.Equal(t, "0.5", CellText(float64(0.5)))
}

func TestOutputManagerPaths(t *testing.T) {
	om := NewOutputManager(t.TempDir())

	path, err := om.GetOutputFilePath("s1", "filtered_data.csv")
	require.NoError(t, err)
	assert.Contains(t, path, "s1")

	// Path traversal in the file name is neutralized.
	path, err = om.GetOutputFilePath("s1", "../../etc/passwd")
	require.NoError(t, err)
	assert.NotContains(t, path, "..")

	assert.Equal(t, "/api/v1/download/s1/filtered_data.csv", om.GetDownloadURL("s1", "filtered_data.csv"))
}

func TestContentType(t *testing.T) {
	om := NewOutputManager(t.TempDir())
	assert.Equal(t, "text/csv; charset=utf-8", om.ContentType("filtered_data.csv"))
	assert.Contains(t, om.ContentType("filtered_data.xlsx"), "spreadsheetml")
	assert.Equal(t, "application/octet-stream", om.ContentType("data.bin"))
}
