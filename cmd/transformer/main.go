// Package main provides the transformer command: it reads the normalized
// dataset, derives the computed fields, and writes the processed dataset.
package main

import (
	"flag"
	"fmt"
	"os"

	"academicpulse/internal/config"
	"academicpulse/internal/logger"
	"academicpulse/internal/transformer"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML configuration file")
	inputPath := flag.String("input", "", "Normalized CSV (overrides paths.normalized)")
	outputPath := flag.String("output", "", "Processed output CSV (overrides paths.processed)")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)

	input := cfg.Paths.Normalized
	if *inputPath != "" {
		input = *inputPath
	}

	output := cfg.Paths.Processed
	if *outputPath != "" {
		output = *outputPath
	}

	log.Info("starting transformation", "input", input)

	report, _, err := transformer.New(cfg, log).Run(input, output)
	if err != nil {
		log.Error("transformation failed", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Records processed: %d\n", report.RecordsProcessed)
	fmt.Printf("Records cleaned:   %d\n", report.RecordsCleaned)
	fmt.Printf("Quality score:     %.1f%%\n", report.QualityScore)
	fmt.Printf("Saved to:          %s\n", output)
}
