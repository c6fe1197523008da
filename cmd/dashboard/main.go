// Package main provides the interactive dashboard over the processed dataset.
package main

import (
	"flag"
	"fmt"
	"os"

	"academicpulse/internal/config"
	"academicpulse/internal/dashboard"
	"academicpulse/internal/dataset"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML configuration file")
	inputPath := flag.String("input", "", "Processed CSV (overrides paths.processed)")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	input := cfg.Paths.Processed
	if *inputPath != "" {
		input = *inputPath
	}

	records, err := dataset.ReadProcessed(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\nRun the ETL pipeline first.\n", input, err)
		os.Exit(1)
	}

	dashboard.NewSession(cfg, records, os.Stdin, os.Stdout).Run()
}
