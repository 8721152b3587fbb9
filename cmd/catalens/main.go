// Command catalens runs the full catalog analysis pipeline: load the
// catalog CSV, draw the deterministic subset, derive the analysis columns,
// and build the chart set. It takes no flags; configuration comes from
// catalens.yaml (when present) and CATALENS_* environment variables.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"catalens/internal/charts"
	"catalens/internal/cleaner"
	"catalens/internal/config"
	"catalens/internal/dataset"
	"catalens/internal/report"
	"catalens/internal/sampler"
)

// configPath is the fixed configuration location; absence is fine.
const configPath = "catalens.yaml"

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger = logger.With(zap.String("run_id", uuid.NewString()))

	if err := run(logger, os.Stdout); err != nil {
		logger.Error("pipeline failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "catalens: %v\n", err)
		os.Exit(1)
	}
}

func run(logger *zap.Logger, out io.Writer) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	logger.Info("starting catalog analysis",
		zap.String("input", cfg.InputPath),
		zap.Int("sample_size", cfg.SampleSize),
		zap.Int64("seed", cfg.Seed))

	full, err := dataset.Load(cfg.InputPath, logger)
	if err != nil {
		return fmt.Errorf("load stage: %w", err)
	}
	report.WriteShape(out, "Full dataset", full)
	report.WriteMissing(out, full)

	subset, err := sampler.Sample(full, cfg.SampleSize, cfg.Seed)
	if err != nil {
		return fmt.Errorf("sample stage: %w", err)
	}
	sum, err := sampler.WriteSubset(subset, cfg.SubsetPath)
	if err != nil {
		return fmt.Errorf("sample stage: %w", err)
	}
	logger.Info("subset written",
		zap.String("path", cfg.SubsetPath),
		zap.Int("rows", len(subset.Rows)),
		zap.String("checksum", fmt.Sprintf("%016x", sum)))
	report.WriteShape(out, "Subset", subset)

	cleaned, err := cleaner.Clean(subset)
	if err != nil {
		return fmt.Errorf("clean stage: %w", err)
	}

	set, err := charts.Build(cleaned)
	if err != nil {
		return fmt.Errorf("chart stage: %w", err)
	}
	if cfg.ChartsPath != "" {
		if err := exportCharts(set, cfg.ChartsPath); err != nil {
			return fmt.Errorf("chart stage: %w", err)
		}
		logger.Info("chart specs exported", zap.String("path", cfg.ChartsPath))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Cleaned dataset preview:")
	report.WritePreview(out, cleaned, cfg.PreviewRows)

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Catalog analysis complete.")
	return nil
}

// exportCharts writes the chart set as indented JSON for an external
// Vega-Lite viewer.
func exportCharts(set *charts.Set, path string) error {
	raw, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal charts: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write charts: %w", err)
	}
	return nil
}
