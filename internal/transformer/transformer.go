// Package transformer applies the cleaning and derivation rules that turn a
// normalized dataset into the processed dataset. All derived fields are pure
// functions of the base fields, so re-running the stage over its own output
// produces identical results.
package transformer

import (
	"fmt"
	"math"

	"academicpulse/internal/config"
	"academicpulse/internal/dataset"
	"academicpulse/internal/logger"
	"academicpulse/internal/models"
)

// Category labels for the derived difficulty and performance fields.
const (
	DifficultyEasy     = "Easy"
	DifficultyModerate = "Moderate"
	DifficultyHard     = "Hard"
	DifficultyVeryHard = "Very Hard"

	PerformanceExcellent = "Excellent"
	PerformanceGood      = "Good"
	PerformancePoor      = "Poor"
)

// Transformer derives the computed fields and fills cleaning defaults.
type Transformer struct {
	cfg *config.Config
	log *logger.Logger
}

// New creates a transformer for the given configuration.
func New(cfg *config.Config, log *logger.Logger) *Transformer {
	return &Transformer{cfg: cfg, log: log}
}

// Run reads the normalized dataset, applies the transformation to every
// record, writes the processed dataset, and returns the quality report.
func (t *Transformer) Run(inputPath, outputPath string) (*models.QualityReport, models.Dataset, error) {
	records, err := dataset.ReadNormalized(inputPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load normalized dataset: %w", err)
	}

	if len(records) == 0 {
		t.log.Warn("normalized dataset is empty", "input", inputPath)
	}

	report := t.Apply(records)

	if err := dataset.WriteProcessed(outputPath, records); err != nil {
		return nil, nil, fmt.Errorf("failed to write processed dataset: %w", err)
	}

	t.log.Info("transformation complete",
		"processed", report.RecordsProcessed,
		"cleaned", report.RecordsCleaned,
		"quality_score", report.QualityScore,
		"output", outputPath,
	)

	return report, records, nil
}

// Apply transforms every record in place and returns the quality report.
func (t *Transformer) Apply(records models.Dataset) *models.QualityReport {
	cleaned := 0

	for i := range records {
		if t.Enhance(&records[i]) {
			cleaned++
		}
	}

	report := &models.QualityReport{
		RecordsProcessed: len(records),
		RecordsCleaned:   cleaned,
	}

	if len(records) > 0 {
		report.QualityScore = round2(float64(len(records)-cleaned) / float64(len(records)) * 100)
	}

	return report
}

// Enhance fills cleaning defaults and computes the derived fields for one
// record. It reports whether any default had to be filled in.
func (t *Transformer) Enhance(rec *models.FeedbackRecord) bool {
	filled := false

	if rec.Department == "" {
		rec.Department = t.cfg.Transform.DefaultDepartment
		filled = true
	}

	if rec.Semester == "" {
		rec.Semester = t.cfg.Transform.DefaultSemester
		filled = true
	}

	rec.SatisfactionScore = t.SatisfactionScore(rec)
	rec.EngagementScore = t.EngagementScore(rec)
	rec.DifficultyCategory = t.DifficultyCategory(rec.DifficultyLevel)
	rec.PerformanceCategory = t.PerformanceCategory(rec.SatisfactionScore)

	return filled
}

// SatisfactionScore averages the four satisfaction-facing ratings.
func (t *Transformer) SatisfactionScore(rec *models.FeedbackRecord) float64 {
	sum := rec.OverallRating + rec.CourseContentRating + rec.InstructorEffectiveness + rec.RecommendationScore

	return round2(float64(sum) / 4)
}

// EngagementScore combines attendance (scaled to the rating range) with
// assignment quality.
func (t *Transformer) EngagementScore(rec *models.FeedbackRecord) float64 {
	attendance := rec.AttendanceRate * float64(t.cfg.Scale.Max)

	return round2((attendance + float64(rec.AssignmentQuality)) / 2)
}

// DifficultyCategory buckets a difficulty level using the configured tiers.
func (t *Transformer) DifficultyCategory(level int) string {
	switch {
	case level <= t.cfg.Transform.DifficultyEasyMax:
		return DifficultyEasy
	case level <= t.cfg.Transform.DifficultyModerateMax:
		return DifficultyModerate
	case level <= t.cfg.Transform.DifficultyHardMax:
		return DifficultyHard
	default:
		return DifficultyVeryHard
	}
}

// PerformanceCategory buckets a satisfaction score using the configured tiers.
func (t *Transformer) PerformanceCategory(satisfaction float64) string {
	switch {
	case satisfaction >= t.cfg.Transform.PerformanceExcellentMin:
		return PerformanceExcellent
	case satisfaction >= t.cfg.Transform.PerformanceGoodMin:
		return PerformanceGood
	default:
		return PerformancePoor
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
