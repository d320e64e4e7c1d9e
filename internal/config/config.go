package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"cryptoinsight/internal"
)

// Config holds all application configuration.
type Config struct {
	Window struct {
		Width  int    `yaml:"width"`
		Height int    `yaml:"height"`
		Title  string `yaml:"title"`
	} `yaml:"window"`
	Chart   internal.Canvas `yaml:"chart"`
	Loading struct {
		Delay time.Duration `yaml:"delay"`
	} `yaml:"loading"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
	SeriesFile string `yaml:"series_file"`
}

// Load reads config from a YAML file, then applies .env and environment
// variable overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, errors.Wrap(err, "read config")
		}
		if len(data) > 0 {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, errors.Wrap(err, "parse config")
			}
		}
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		internal.Log.Warnf("Error loading .env file: %v", err)
	}

	// Environment variable overrides
	if v := os.Getenv("CRYPTOINSIGHT_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("CRYPTOINSIGHT_SERIES_FILE"); v != "" {
		cfg.SeriesFile = v
	}
	if v := os.Getenv("CRYPTOINSIGHT_LOADING_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, errors.Wrap(err, "CRYPTOINSIGHT_LOADING_DELAY")
		}
		cfg.Loading.Delay = d
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Window.Width == 0 {
		c.Window.Width = 640
	}
	if c.Window.Height == 0 {
		c.Window.Height = 560
	}
	if c.Window.Title == "" {
		c.Window.Title = "Crypto Insight"
	}
	if c.Chart.Width == 0 {
		c.Chart.Width = internal.DefaultCanvas.Width
	}
	if c.Chart.Height == 0 {
		c.Chart.Height = internal.DefaultCanvas.Height
	}
	if c.Chart.PadX == 0 {
		c.Chart.PadX = internal.DefaultCanvas.PadX
	}
	if c.Chart.PadY == 0 {
		c.Chart.PadY = internal.DefaultCanvas.PadY
	}
	if c.Loading.Delay == 0 {
		c.Loading.Delay = internal.DefaultLoadingDelay
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate checks that the chart canvas leaves room to draw.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.New("window size must be positive")
	}
	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		return errors.New("chart.width and chart.height must be positive")
	}
	if c.Chart.PadX < 0 || c.Chart.PadY < 0 {
		return errors.New("chart padding must not be negative")
	}
	if 2*c.Chart.PadX >= c.Chart.Width || 2*c.Chart.PadY >= c.Chart.Height {
		return errors.New("chart padding must be smaller than half the canvas")
	}
	if c.Loading.Delay < 0 {
		return errors.New("loading.delay must not be negative")
	}
	return nil
}
