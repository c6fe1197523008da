// Package main provides the extractor command: it reads the raw feedback
// file, validates every row, and writes the normalized dataset.
package main

import (
	"flag"
	"fmt"
	"os"

	"academicpulse/internal/config"
	"academicpulse/internal/extractor"
	"academicpulse/internal/logger"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML configuration file")
	inputPath := flag.String("input", "", "Raw feedback CSV (overrides paths.raw)")
	outputPath := flag.String("output", "", "Normalized output CSV (overrides paths.normalized)")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)

	input := cfg.Paths.Raw
	if *inputPath != "" {
		input = *inputPath
	}

	output := cfg.Paths.Normalized
	if *outputPath != "" {
		output = *outputPath
	}

	log.Info("starting extraction", "input", input)

	summary, _, err := extractor.New(cfg, log).Extract(input, output)
	if err != nil {
		log.Error("extraction failed", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Rows read:       %d\n", summary.RowsRead)
	fmt.Printf("Accepted:        %d\n", summary.Accepted)
	fmt.Printf("Out of range:    %d\n", summary.RejectedRange)
	fmt.Printf("Missing fields:  %d\n", summary.RejectedMissing)
	fmt.Printf("Malformed:       %d\n", summary.Malformed)
	fmt.Printf("Saved to:        %s\n", output)
}
