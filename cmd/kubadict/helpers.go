package main

import (
	"fmt"

	"github.com/at-ishikawa/kubadict/internal/config"
	"github.com/at-ishikawa/kubadict/internal/entry"
	"github.com/at-ishikawa/kubadict/internal/extraction"
	"github.com/at-ishikawa/kubadict/internal/lexicon"
	"github.com/at-ishikawa/kubadict/internal/sense"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

func extractionOptions(cfg *config.Config) (extraction.Options, error) {
	overrides, err := sense.LoadOverrideTable(cfg.Senses.OverridesFile)
	if err != nil {
		return extraction.Options{}, fmt.Errorf("sense.LoadOverrideTable() > %w", err)
	}
	return extraction.Options{
		Rules:     cfg.Extraction.Rules(),
		Parser:    entry.Options{AltFormWindow: cfg.Extraction.AltFormWindow},
		Overrides: overrides,
	}, nil
}

// readRecords reads the CSV table at input, or the configured one when input is empty.
func readRecords(cfg *config.Config, input string) ([]lexicon.Record, error) {
	if input == "" {
		input = cfg.Outputs.CSVFile
	}
	records, err := lexicon.ReadCSVFile(input)
	if err != nil {
		return nil, fmt.Errorf("lexicon.ReadCSVFile() > %w", err)
	}
	return records, nil
}
