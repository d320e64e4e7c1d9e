package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cryptoinsight/internal"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, "Crypto Insight", cfg.Window.Title)
	assert.Equal(t, internal.DefaultCanvas, cfg.Chart)
	assert.Equal(t, internal.DefaultLoadingDelay, cfg.Loading.Delay)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.SeriesFile)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
window:
  width: 800
  height: 600
chart:
  width: 500
  height: 250
  padding_x: 10
  padding_y: 15
loading:
  delay: 500ms
log:
  level: debug
series_file: data/btc.yaml
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, internal.Canvas{Width: 500, Height: 250, PadX: 10, PadY: 15}, cfg.Chart)
	assert.Equal(t, 500*time.Millisecond, cfg.Loading.Delay)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "data/btc.yaml", cfg.SeriesFile)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CRYPTOINSIGHT_LOG_LEVEL", "warn")
	t.Setenv("CRYPTOINSIGHT_SERIES_FILE", "other.yaml")
	t.Setenv("CRYPTOINSIGHT_LOADING_DELAY", "3s")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "other.yaml", cfg.SeriesFile)
	assert.Equal(t, 3*time.Second, cfg.Loading.Delay)
}

func TestLoad_BadDelay(t *testing.T) {
	t.Setenv("CRYPTOINSIGHT_LOADING_DELAY", "soon")

	_, err := Load("")
	require.Error(t, err)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: [1, 2"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	cfg.Chart.PadX = 200
	assert.Error(t, cfg.Validate())

	cfg.Chart = internal.DefaultCanvas
	cfg.Chart.PadY = -1
	assert.Error(t, cfg.Validate())

	cfg.Chart = internal.DefaultCanvas
	cfg.Window.Height = -5
	assert.Error(t, cfg.Validate())
}

func TestLoad_PartialChartSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("chart:\n  padding_x: 10\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, internal.Canvas{Width: 400, Height: 200, PadX: 10, PadY: 20}, cfg.Chart)
	assert.NoError(t, cfg.Validate())
}
