// Package main provides the analyzer command: it aggregates the processed
// dataset by instructor, course, department, and semester, and writes the
// CSV, text, and Excel reports.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"academicpulse/internal/analyzer"
	"academicpulse/internal/config"
	"academicpulse/internal/logger"
	"academicpulse/pkg/metadata"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML configuration file")
	inputPath := flag.String("input", "", "Processed CSV (overrides paths.processed)")
	reportsDir := flag.String("reports", "", "Reports directory (overrides paths.reports_dir)")
	verify := flag.Bool("verify", false, "Verify the provenance footer of an existing dashboard summary and exit")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)

	dir := cfg.Paths.ReportsDir
	if *reportsDir != "" {
		dir = *reportsDir
	}

	if *verify {
		verifySummary(filepath.Join(dir, analyzer.DashboardReportFile))

		return
	}

	input := cfg.Paths.Processed
	if *inputPath != "" {
		input = *inputPath
	}

	log.Info("starting analysis", "input", input)

	report, err := analyzer.New(cfg, log).Run(input, dir)
	if err != nil {
		log.Error("analysis failed", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Run ID:        %s\n", report.RunID)
	fmt.Printf("Records:       %d\n", report.TotalRecords)
	fmt.Printf("Instructors:   %d\n", report.Instructors)
	fmt.Printf("Courses:       %d\n", report.Courses)
	fmt.Printf("Reports saved: %s\n", dir)
}

func verifySummary(path string) {
	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
		os.Exit(1)
	}

	prov, err := metadata.Verify(string(content))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Verification failed for %s: %v\n", path, err)
		os.Exit(1)
	}

	fmt.Printf("OK: %s generated at %s by run %s\n", path, prov.GeneratedAt.Format("2006-01-02 15:04:05"), prov.RunID)
}
