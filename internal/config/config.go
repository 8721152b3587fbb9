// Package config defines the run configuration. Values come from an
// optional YAML file with environment-variable overrides; every field has a
// default, so the binary runs with no configuration at all.
package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all settings for one pipeline run.
type Config struct {
	// InputPath is the full catalog CSV.
	InputPath string `yaml:"input_path" env:"CATALENS_INPUT" env-default:"data/netflix_titles.csv"`

	// SubsetPath is where the sampled subset is written; any existing file
	// is overwritten.
	SubsetPath string `yaml:"subset_path" env:"CATALENS_SUBSET" env-default:"data/netflix_titles_subset_3000.csv"`

	// SampleSize is the fixed subset cardinality.
	SampleSize int `yaml:"sample_size" env:"CATALENS_SAMPLE_SIZE" env-default:"3000"`

	// Seed feeds the sampler's pseudo-random source. Same input, size, and
	// seed always reproduce the same subset.
	Seed int64 `yaml:"seed" env:"CATALENS_SEED" env-default:"42"`

	// PreviewRows is how many cleaned rows the summary prints.
	PreviewRows int `yaml:"preview_rows" env:"CATALENS_PREVIEW_ROWS" env-default:"5"`

	// ChartsPath, when set, exports the chart specs as JSON for an external
	// viewer. Empty means charts stay in memory only.
	ChartsPath string `yaml:"charts_path" env:"CATALENS_CHARTS" env-default:""`
}

// Load reads configuration from path when the file exists, then applies
// environment overrides. A missing file is not an error; the environment
// and defaults carry the run.
func Load(path string) (Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return Config{}, fmt.Errorf("read config %s: %w", path, err)
			}
			return cfg, cfg.validate()
		}
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env config: %w", err)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.SampleSize <= 0 {
		return fmt.Errorf("sample_size must be positive, got %d", c.SampleSize)
	}
	if c.PreviewRows < 0 {
		return fmt.Errorf("preview_rows must not be negative, got %d", c.PreviewRows)
	}
	return nil
}
