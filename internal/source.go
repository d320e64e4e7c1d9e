package internal

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type seriesFile struct {
	Samples []Sample `yaml:"samples"`
}

// LoadSeries reads samples from a YAML (or JSON) file. An empty path yields
// the mock series.
func LoadSeries(path string) (Series, error) {
	if path == "" {
		return MockSeries(), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open series file")
	}
	defer file.Close()

	var data seriesFile
	if err := yaml.NewDecoder(file).Decode(&data); err != nil {
		return nil, errors.Wrapf(err, "decode series file %s", path)
	}

	series, err := NewSeries(data.Samples)
	if err != nil {
		return nil, errors.Wrapf(err, "series file %s", path)
	}
	return series, nil
}
