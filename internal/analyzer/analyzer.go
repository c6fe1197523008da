// Package analyzer computes aggregate statistics over the processed dataset
// and emits the report files. Rankings are deterministic: mean satisfaction
// descending, then review count descending, then key ascending.
package analyzer

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"academicpulse/internal/config"
	"academicpulse/internal/dataset"
	"academicpulse/internal/logger"
	"academicpulse/internal/models"
)

// Analyzer builds aggregate reports from a processed dataset.
type Analyzer struct {
	cfg *config.Config
	log *logger.Logger
}

// New creates an analyzer for the given configuration.
func New(cfg *config.Config, log *logger.Logger) *Analyzer {
	return &Analyzer{cfg: cfg, log: log}
}

// Run loads the processed dataset, computes the aggregate report, and writes
// every report file into reportsDir.
func (a *Analyzer) Run(inputPath, reportsDir string) (*models.AggregateReport, error) {
	records, err := dataset.ReadProcessed(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load processed dataset: %w", err)
	}

	if len(records) == 0 {
		a.log.Warn("processed dataset is empty, reports will be empty", "input", inputPath)
	}

	report := a.Analyze(records)

	if err := a.WriteAll(report, reportsDir); err != nil {
		return nil, err
	}

	a.log.Info("analysis complete",
		"records", report.TotalRecords,
		"instructors", report.Instructors,
		"courses", report.Courses,
		"reports_dir", reportsDir,
	)

	return report, nil
}

// Analyze computes the full aggregate report without touching the filesystem.
func (a *Analyzer) Analyze(records models.Dataset) *models.AggregateReport {
	report := &models.AggregateReport{
		RunID:           uuid.NewString(),
		GeneratedAt:     time.Now().UTC().Format(time.RFC3339),
		TotalRecords:    len(records),
		Students:        len(records.StudentIDs()),
		Courses:         len(records.CourseIDs()),
		Instructors:     len(records.InstructorIDs()),
		Semesters:       len(records.Semesters()),
		PerformanceDist: map[string]int{},
		DifficultyDist:  map[string]int{},
	}

	var satisfaction, engagement, overall float64

	for _, r := range records {
		satisfaction += r.SatisfactionScore
		engagement += r.EngagementScore
		overall += float64(r.OverallRating)
		report.PerformanceDist[r.PerformanceCategory]++
		report.DifficultyDist[r.DifficultyCategory]++
	}

	if n := len(records); n > 0 {
		report.MeanSatisfaction = round2(satisfaction / float64(n))
		report.MeanEngagement = round2(engagement / float64(n))
		report.MeanOverall = round2(overall / float64(n))
	}

	report.ByInstructor = GroupBy(records, func(r models.FeedbackRecord) string { return r.InstructorID })
	report.ByCourse = GroupBy(records, func(r models.FeedbackRecord) string { return r.CourseID })
	report.ByDepartment = GroupBy(records, func(r models.FeedbackRecord) string { return r.Department })
	report.BySemester = GroupBy(records, func(r models.FeedbackRecord) string { return r.Semester })

	return report
}

// GroupBy aggregates records under the given key and returns ranked group
// statistics. Records with an empty key are ignored.
func GroupBy(records models.Dataset, key func(models.FeedbackRecord) string) []models.GroupStats {
	acc := map[string]*models.GroupStats{}

	type sums struct {
		rating       int
		satisfaction float64
	}

	totals := map[string]*sums{}

	var order []string

	for _, r := range records {
		k := key(r)
		if k == "" {
			continue
		}

		g, ok := acc[k]
		if !ok {
			g = &models.GroupStats{
				Key:          k,
				MinRating:    r.OverallRating,
				MaxRating:    r.OverallRating,
				Distribution: map[int]int{},
			}
			acc[k] = g
			totals[k] = &sums{}

			order = append(order, k)
		}

		g.Count++
		g.Distribution[r.OverallRating]++

		if r.OverallRating < g.MinRating {
			g.MinRating = r.OverallRating
		}

		if r.OverallRating > g.MaxRating {
			g.MaxRating = r.OverallRating
		}

		totals[k].rating += r.OverallRating
		totals[k].satisfaction += r.SatisfactionScore
	}

	groups := make([]models.GroupStats, 0, len(order))

	for _, k := range order {
		g := acc[k]
		g.MeanRating = round2(float64(totals[k].rating) / float64(g.Count))
		g.MeanSatisfaction = round2(totals[k].satisfaction / float64(g.Count))
		groups = append(groups, *g)
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].MeanSatisfaction != groups[j].MeanSatisfaction {
			return groups[i].MeanSatisfaction > groups[j].MeanSatisfaction
		}

		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}

		return groups[i].Key < groups[j].Key
	})

	return groups
}

// TopN returns at most n leading groups from an already ranked slice.
func TopN(groups []models.GroupStats, n int) []models.GroupStats {
	if len(groups) <= n {
		return groups
	}

	return groups[:n]
}

// BottomN returns at most n trailing groups, worst first.
func BottomN(groups []models.GroupStats, n int) []models.GroupStats {
	if n > len(groups) {
		n = len(groups)
	}

	out := make([]models.GroupStats, 0, n)
	for i := len(groups) - 1; i >= len(groups)-n; i-- {
		out = append(out, groups[i])
	}

	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
