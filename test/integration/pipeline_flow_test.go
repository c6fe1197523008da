package integration

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"academicpulse/internal/analyzer"
	"academicpulse/internal/config"
	"academicpulse/internal/dashboard"
	"academicpulse/internal/dataset"
	"academicpulse/internal/extractor"
	"academicpulse/internal/logger"
	"academicpulse/internal/transformer"
	"academicpulse/pkg/metadata"
)

// rawFixture covers the full validation surface: three valid rows for one
// course (ratings 5, 3, 1), one out-of-range rating, and one missing field.
const rawFixture = `feedback_id,student_id,course_id,instructor_id,department,semester,overall_rating,course_content_rating,instructor_effectiveness,difficulty_level,workload_rating,recommendation_score,assignment_quality,attendance_rate,comment,feedback_date
1,STU001,COURSE01,INST01,Physics,Fall2024,5,5,5,2,2,5,5,0.95,Excellent lectures,2024-07-13
2,STU002,COURSE01,INST01,Physics,Fall2024,3,3,3,3,3,3,3,0.8,,2024-07-13
3,STU003,COURSE01,INST02,Physics,Spring2024,1,1,1,5,5,1,1,0.6,Too fast,2024-07-13
4,STU004,COURSE02,INST02,Physics,Spring2024,7,3,3,3,3,3,3,0.8,,2024-07-13
5,,COURSE02,INST02,Physics,Spring2024,4,3,3,3,3,3,3,0.8,,2024-07-13
`

func TestPipelineFlow(t *testing.T) {
	dir := t.TempDir()

	rawPath := filepath.Join(dir, "raw.csv")
	if err := os.WriteFile(rawPath, []byte(rawFixture), 0644); err != nil {
		t.Fatalf("Failed to write raw fixture: %v", err)
	}

	cfg := config.Default()
	cfg.Paths.Raw = rawPath
	cfg.Paths.Normalized = filepath.Join(dir, "normalized.csv")
	cfg.Paths.Processed = filepath.Join(dir, "processed.csv")
	cfg.Paths.ReportsDir = filepath.Join(dir, "reports")

	log := logger.NewWithWriter(io.Discard, "error")

	// 1. Extraction.
	summary, _, err := extractor.New(cfg, log).Extract(cfg.Paths.Raw, cfg.Paths.Normalized)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if summary.Accepted != 3 {
		t.Fatalf("Expected 3 accepted rows, got %d", summary.Accepted)
	}

	if summary.RejectedRange != 1 || summary.RejectedMissing != 1 {
		t.Errorf("Unexpected rejections: %+v", summary)
	}

	// 2. Transformation.
	quality, processed, err := transformer.New(cfg, log).Run(cfg.Paths.Normalized, cfg.Paths.Processed)
	if err != nil {
		t.Fatalf("Transform failed: %v", err)
	}

	if quality.RecordsProcessed != 3 {
		t.Fatalf("Expected 3 processed records, got %d", quality.RecordsProcessed)
	}

	for _, r := range processed {
		if r.DifficultyCategory == "" || r.PerformanceCategory == "" {
			t.Errorf("Record %s missing derived fields: %+v", r.StudentID, r)
		}
	}

	// 3. Analysis.
	report, err := analyzer.New(cfg, log).Run(cfg.Paths.Processed, cfg.Paths.ReportsDir)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if report.TotalRecords != 3 {
		t.Fatalf("Expected 3 analyzed records, got %d", report.TotalRecords)
	}

	// COURSE01 holds ratings 5, 3, 1: mean 3.0, min 1, max 5.
	var course01 bool

	for _, g := range report.ByCourse {
		if g.Key != "COURSE01" {
			continue
		}

		course01 = true

		if g.MeanRating != 3.0 || g.MinRating != 1 || g.MaxRating != 5 {
			t.Errorf("COURSE01 stats = mean %v min %d max %d, want 3.0/1/5", g.MeanRating, g.MinRating, g.MaxRating)
		}

		if g.Count != 3 {
			t.Errorf("COURSE01 count = %d, want 3", g.Count)
		}
	}

	if !course01 {
		t.Error("COURSE01 missing from course report")
	}

	// The rejected rating 7 must not leak into any aggregate.
	total := 0
	for _, g := range report.ByInstructor {
		total += g.Count

		if g.MaxRating > cfg.Scale.Max {
			t.Errorf("Out-of-scale rating leaked into group %s", g.Key)
		}
	}

	if total != report.TotalRecords {
		t.Errorf("Group counts sum to %d, want %d", total, report.TotalRecords)
	}

	// 4. Report files exist and the summary footer verifies.
	content, err := os.ReadFile(filepath.Join(cfg.Paths.ReportsDir, analyzer.DashboardReportFile))
	if err != nil {
		t.Fatalf("Failed to read dashboard summary: %v", err)
	}

	prov, err := metadata.Verify(string(content))
	if err != nil {
		t.Fatalf("Summary provenance failed: %v", err)
	}

	if prov.RunID != report.RunID {
		t.Errorf("Summary run ID = %s, want %s", prov.RunID, report.RunID)
	}

	// 5. Dashboard over the processed file.
	records, err := dataset.ReadProcessed(cfg.Paths.Processed)
	if err != nil {
		t.Fatalf("ReadProcessed failed: %v", err)
	}

	var out bytes.Buffer

	dashboard.NewSession(cfg, records, strings.NewReader("1\n0\n"), &out).Run()

	if !strings.Contains(out.String(), "Total Records: 3") {
		t.Errorf("Dashboard overview wrong:\n%s", out.String())
	}
}

func TestPipelineFlow_EmptyInput(t *testing.T) {
	dir := t.TempDir()

	header := strings.SplitAfter(rawFixture, "\n")[0]

	rawPath := filepath.Join(dir, "raw.csv")
	if err := os.WriteFile(rawPath, []byte(header), 0644); err != nil {
		t.Fatalf("Failed to write raw fixture: %v", err)
	}

	cfg := config.Default()
	cfg.Paths.Normalized = filepath.Join(dir, "normalized.csv")
	cfg.Paths.Processed = filepath.Join(dir, "processed.csv")
	cfg.Paths.ReportsDir = filepath.Join(dir, "reports")

	log := logger.NewWithWriter(io.Discard, "error")

	if _, _, err := extractor.New(cfg, log).Extract(rawPath, cfg.Paths.Normalized); err != nil {
		t.Fatalf("Extract failed on empty input: %v", err)
	}

	if _, _, err := transformer.New(cfg, log).Run(cfg.Paths.Normalized, cfg.Paths.Processed); err != nil {
		t.Fatalf("Transform failed on empty input: %v", err)
	}

	report, err := analyzer.New(cfg, log).Run(cfg.Paths.Processed, cfg.Paths.ReportsDir)
	if err != nil {
		t.Fatalf("Analyze failed on empty input: %v", err)
	}

	if report.TotalRecords != 0 {
		t.Errorf("Expected empty report, got %d records", report.TotalRecords)
	}

	// Empty pipeline still produces the report files.
	if _, err := os.Stat(filepath.Join(cfg.Paths.ReportsDir, analyzer.SummaryReportFile)); err != nil {
		t.Errorf("Missing summary report for empty input: %v", err)
	}
}
