// Package main provides the unified pipeline command that runs extraction,
// transformation, and analysis in order and prints a final summary report.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"academicpulse/internal/analyzer"
	"academicpulse/internal/config"
	"academicpulse/internal/extractor"
	"academicpulse/internal/logger"
	"academicpulse/internal/transformer"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML configuration file")
	inputPath := flag.String("input", "", "Raw feedback CSV (overrides paths.raw)")
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

	log.Info("starting feedback pipeline", "input", input)

	startTime := time.Now()

	// Phase 1: extraction.
	log.Info("phase 1: extraction")

	summary, _, err := extractor.New(cfg, log).Extract(input, cfg.Paths.Normalized)
	if err != nil {
		log.Error("extraction failed", "error", err)
		os.Exit(1)
	}

	// Phase 2: transformation.
	log.Info("phase 2: transformation")

	quality, _, err := transformer.New(cfg, log).Run(cfg.Paths.Normalized, cfg.Paths.Processed)
	if err != nil {
		log.Error("transformation failed", "error", err)
		os.Exit(1)
	}

	// Phase 3: analysis and reporting.
	log.Info("phase 3: analysis")

	report, err := analyzer.New(cfg, log).Run(cfg.Paths.Processed, cfg.Paths.ReportsDir)
	if err != nil {
		log.Error("analysis failed", "error", err)
		os.Exit(1)
	}

	log.Info("pipeline complete")

	fmt.Println("\n------------------------------------------------")
	fmt.Println("Pipeline Summary Report")
	fmt.Println("------------------------------------------------")
	fmt.Printf("Run ID:            %s\n", report.RunID)
	fmt.Printf("Rows read:         %d\n", summary.RowsRead)
	fmt.Printf("Rows accepted:     %d\n", summary.Accepted)
	fmt.Printf("Rows rejected:     %d\n", summary.Rejected())
	fmt.Printf("Quality score:     %.1f%%\n", quality.QualityScore)
	fmt.Printf("Instructors:       %d\n", report.Instructors)
	fmt.Printf("Courses:           %d\n", report.Courses)
	fmt.Printf("Mean satisfaction: %.2f/%d\n", report.MeanSatisfaction, cfg.Scale.Max)
	fmt.Printf("Reports:           %s\n", cfg.Paths.ReportsDir)
	fmt.Printf("Total duration:    %v\n", time.Since(startTime))
	fmt.Println("------------------------------------------------")
}
