package analyzer

import (
	"io"
	"testing"

	"academicpulse/internal/config"
	"academicpulse/internal/logger"
	"academicpulse/internal/models"
)

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()

	return New(config.Default(), logger.NewWithWriter(io.Discard, "error"))
}

func record(course, instructor string, rating int, satisfaction float64) models.FeedbackRecord {
	return models.FeedbackRecord{
		StudentID:         "STU001",
		CourseID:          course,
		InstructorID:      instructor,
		OverallRating:     rating,
		SatisfactionScore: satisfaction,
	}
}

func TestGroupBy_SingleCourseStats(t *testing.T) {
	records := models.Dataset{
		record("COURSE01", "INST01", 5, 5),
		record("COURSE01", "INST01", 3, 3),
		record("COURSE01", "INST02", 1, 1),
	}

	groups := GroupBy(records, func(r models.FeedbackRecord) string { return r.CourseID })

	if len(groups) != 1 {
		t.Fatalf("Expected 1 group, got %d", len(groups))
	}

	g := groups[0]

	if g.Count != 3 {
		t.Errorf("Count = %d, want 3", g.Count)
	}

	if g.MeanRating != 3.0 {
		t.Errorf("MeanRating = %v, want 3.0", g.MeanRating)
	}

	if g.MinRating != 1 || g.MaxRating != 5 {
		t.Errorf("Min/Max = %d/%d, want 1/5", g.MinRating, g.MaxRating)
	}

	if g.Distribution[5] != 1 || g.Distribution[3] != 1 || g.Distribution[1] != 1 {
		t.Errorf("Unexpected distribution: %v", g.Distribution)
	}
}

func TestGroupBy_CountsSumToTotal(t *testing.T) {
	records := models.Dataset{
		record("COURSE01", "INST01", 5, 4.5),
		record("COURSE02", "INST01", 4, 4.0),
		record("COURSE02", "INST02", 2, 2.5),
		record("COURSE03", "INST03", 3, 3.0),
	}

	groups := GroupBy(records, func(r models.FeedbackRecord) string { return r.InstructorID })

	total := 0
	for _, g := range groups {
		total += g.Count
	}

	if total != len(records) {
		t.Errorf("Sum of group counts = %d, want %d", total, len(records))
	}
}

func TestGroupBy_RankingDeterministic(t *testing.T) {
	// INST02 and INST03 tie on satisfaction; INST03 has more reviews.
	// INST04 and INST05 tie on both, so the key breaks the tie.
	records := models.Dataset{
		record("C", "INST01", 5, 5.0),
		record("C", "INST02", 4, 4.0),
		record("C", "INST03", 4, 4.0),
		record("C", "INST03", 4, 4.0),
		record("C", "INST05", 3, 3.0),
		record("C", "INST04", 3, 3.0),
	}

	groups := GroupBy(records, func(r models.FeedbackRecord) string { return r.InstructorID })

	want := []string{"INST01", "INST03", "INST02", "INST04", "INST05"}

	if len(groups) != len(want) {
		t.Fatalf("Expected %d groups, got %d", len(want), len(groups))
	}

	for i, key := range want {
		if groups[i].Key != key {
			t.Errorf("Rank %d = %s, want %s", i+1, groups[i].Key, key)
		}
	}
}

func TestGroupBy_IgnoresEmptyKeys(t *testing.T) {
	records := models.Dataset{
		record("COURSE01", "", 5, 5.0),
		record("COURSE01", "INST01", 3, 3.0),
	}

	groups := GroupBy(records, func(r models.FeedbackRecord) string { return r.InstructorID })

	if len(groups) != 1 || groups[0].Key != "INST01" {
		t.Errorf("Expected only INST01, got %+v", groups)
	}
}

func TestAnalyze_EmptyDataset(t *testing.T) {
	a := newTestAnalyzer(t)

	report := a.Analyze(models.Dataset{})

	if report.TotalRecords != 0 {
		t.Errorf("TotalRecords = %d, want 0", report.TotalRecords)
	}

	if report.MeanSatisfaction != 0 || report.MeanOverall != 0 {
		t.Errorf("Means must be zero for empty input: %+v", report)
	}

	if len(report.ByInstructor) != 0 || len(report.ByCourse) != 0 {
		t.Error("Expected no groups for empty input")
	}

	if report.RunID == "" || report.GeneratedAt == "" {
		t.Error("Run metadata must be set even for empty input")
	}
}

func TestAnalyze_OverallMeans(t *testing.T) {
	a := newTestAnalyzer(t)

	records := models.Dataset{
		record("COURSE01", "INST01", 5, 4.0),
		record("COURSE02", "INST02", 3, 3.0),
		record("COURSE03", "INST03", 1, 2.0),
	}

	report := a.Analyze(records)

	if report.MeanOverall != 3.0 {
		t.Errorf("MeanOverall = %v, want 3.0", report.MeanOverall)
	}

	if report.MeanSatisfaction != 3.0 {
		t.Errorf("MeanSatisfaction = %v, want 3.0", report.MeanSatisfaction)
	}

	if report.Courses != 3 || report.Instructors != 3 {
		t.Errorf("Unexpected unique counts: %+v", report)
	}
}

func TestTopN_BottomN(t *testing.T) {
	groups := []models.GroupStats{
		{Key: "A", MeanSatisfaction: 5},
		{Key: "B", MeanSatisfaction: 4},
		{Key: "C", MeanSatisfaction: 3},
	}

	top := TopN(groups, 2)
	if len(top) != 2 || top[0].Key != "A" {
		t.Errorf("TopN = %+v", top)
	}

	bottom := BottomN(groups, 2)
	if len(bottom) != 2 || bottom[0].Key != "C" || bottom[1].Key != "B" {
		t.Errorf("BottomN = %+v", bottom)
	}

	if got := TopN(groups, 10); len(got) != 3 {
		t.Errorf("TopN beyond length = %d items, want 3", len(got))
	}
}
