// Package main provides the seed command-line tool. It generates a sample
// raw feedback CSV so the pipeline can be exercised without a real export.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"academicpulse/internal/config"
)

// Sample pools for generated records.
var (
	semesters = []string{"Fall2024", "Spring2024", "Summer2024"}

	departments = []string{"Computer Science", "Mathematics", "Physics", "Biology", "History"}

	comments = []string{
		"",
		"Great course, learned a lot.",
		"Too much homework for the credit hours.",
		"Lectures were engaging and well structured.",
		"Grading felt inconsistent.",
		"Would recommend to other students.",
	}
)

func main() {
	configPath := flag.String("config", "", "Path to YAML configuration file")
	outputPath := flag.String("output", "", "Output CSV (overrides paths.raw)")
	numRecords := flag.Int("records", 500, "Number of sample records to generate")
	seed := flag.Int64("seed", 0, "Random seed (0 uses current time)")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	output := cfg.Paths.Raw
	if *outputPath != "" {
		output = *outputPath
	}

	src := *seed
	if src == 0 {
		src = time.Now().UnixNano()
	}

	if err := generate(cfg, output, *numRecords, rand.New(rand.NewSource(src))); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating sample data: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated %d sample records in %s\n", *numRecords, output)
}

func generate(cfg *config.Config, path string, n int, r *rand.Rand) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	header := []string{
		"feedback_id", "student_id", "course_id", "instructor_id", "department", "semester",
		"overall_rating", "course_content_rating", "instructor_effectiveness", "difficulty_level",
		"workload_rating", "recommendation_score", "assignment_quality", "attendance_rate",
		"comment", "feedback_date",
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	rating := func() string {
		return strconv.Itoa(cfg.Scale.Min + r.Intn(cfg.Scale.Max-cfg.Scale.Min+1))
	}

	for i := 1; i <= n; i++ {
		row := []string{
			strconv.Itoa(i),
			fmt.Sprintf("STU%03d", i),
			fmt.Sprintf("COURSE%02d", r.Intn(10)+1),
			fmt.Sprintf("INST%02d", r.Intn(5)+1),
			departments[r.Intn(len(departments))],
			semesters[r.Intn(len(semesters))],
			rating(), rating(), rating(), rating(), rating(), rating(), rating(),
			strconv.FormatFloat(0.6+r.Float64()*0.4, 'f', 2, 64),
			comments[r.Intn(len(comments))],
			time.Now().Format("2006-01-02"),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}

	return f.Close()
}
