package analyzer

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"academicpulse/internal/models"
	"academicpulse/pkg/metadata"
	"academicpulse/pkg/textutil"
)

// Report file names written into the reports directory.
const (
	InstructorReportFile = "instructor_performance.csv"
	CourseReportFile     = "course_analysis.csv"
	SummaryReportFile    = "executive_summary.csv"
	DashboardReportFile  = "dashboard_summary.txt"
	WorkbookFile         = "feedback_report.xlsx"
)

// WriteAll writes every report file for the given aggregate report.
func (a *Analyzer) WriteAll(report *models.AggregateReport, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create reports directory: %w", err)
	}

	if err := writeGroupCSV(filepath.Join(dir, InstructorReportFile), "instructor_id", report.ByInstructor); err != nil {
		return err
	}

	if err := writeGroupCSV(filepath.Join(dir, CourseReportFile), "course_id", report.ByCourse); err != nil {
		return err
	}

	if err := writeSummaryCSV(filepath.Join(dir, SummaryReportFile), report); err != nil {
		return err
	}

	if err := a.writeDashboardSummary(filepath.Join(dir, DashboardReportFile), report); err != nil {
		return err
	}

	return a.writeWorkbook(filepath.Join(dir, WorkbookFile), report)
}

func writeGroupCSV(path, keyColumn string, groups []models.GroupStats) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	header := []string{"rank", keyColumn, "reviews", "mean_satisfaction", "mean_rating", "min_rating", "max_rating"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, g := range groups {
		row := []string{
			strconv.Itoa(i + 1),
			g.Key,
			strconv.Itoa(g.Count),
			formatScore(g.MeanSatisfaction),
			formatScore(g.MeanRating),
			strconv.Itoa(g.MinRating),
			strconv.Itoa(g.MaxRating),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write row for %s: %w", g.Key, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}

	return f.Close()
}

func writeSummaryCSV(path string, report *models.AggregateReport) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	rows := [][]string{
		{"ACADEMIC PULSE - EXECUTIVE SUMMARY"},
		{"Generated", report.GeneratedAt},
		{"Run ID", report.RunID},
		{},
		{"KEY PERFORMANCE INDICATORS"},
		{"Metric", "Value"},
		{"Total Feedback Records", strconv.Itoa(report.TotalRecords)},
		{"Average Satisfaction Score", formatScore(report.MeanSatisfaction)},
		{"Average Engagement Score", formatScore(report.MeanEngagement)},
		{"Average Overall Rating", formatScore(report.MeanOverall)},
		{"Students Surveyed", strconv.Itoa(report.Students)},
		{"Courses Evaluated", strconv.Itoa(report.Courses)},
		{"Instructors Assessed", strconv.Itoa(report.Instructors)},
		{"Semesters Covered", strconv.Itoa(report.Semesters)},
		{},
	}

	rows = append(rows, distributionRows("PERFORMANCE DISTRIBUTION", report.PerformanceDist, report.TotalRecords)...)
	rows = append(rows, []string{})
	rows = append(rows, distributionRows("DIFFICULTY DISTRIBUTION", report.DifficultyDist, report.TotalRecords)...)

	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}

	return f.Close()
}

func distributionRows(title string, dist map[string]int, total int) [][]string {
	rows := [][]string{{title}, {"Category", "Count", "Percentage"}}

	for _, category := range sortedKeys(dist) {
		count := dist[category]
		pct := 0.0

		if total > 0 {
			pct = float64(count) / float64(total) * 100
		}

		rows = append(rows, []string{category, strconv.Itoa(count), fmt.Sprintf("%.1f%%", pct)})
	}

	return rows
}

// writeDashboardSummary renders the text dashboard report and signs it with
// the run's provenance footer.
func (a *Analyzer) writeDashboardSummary(path string, report *models.AggregateReport) error {
	var b strings.Builder

	line := strings.Repeat("=", 50)

	fmt.Fprintf(&b, "%s\nACADEMIC PULSE DASHBOARD SUMMARY\n%s\n", line, line)
	fmt.Fprintf(&b, "Generated: %s\n\n", report.GeneratedAt)

	fmt.Fprintf(&b, "Total Feedback Records: %d\n", report.TotalRecords)
	fmt.Fprintf(&b, "Students: %d  Courses: %d  Instructors: %d  Semesters: %d\n\n",
		report.Students, report.Courses, report.Instructors, report.Semesters)

	fmt.Fprintf(&b, "Average Satisfaction: %s/%d  %s\n",
		formatScore(report.MeanSatisfaction), a.cfg.Scale.Max, textutil.Stars(report.MeanSatisfaction, a.cfg.Scale.Max))
	fmt.Fprintf(&b, "Average Engagement:   %s/%d\n", formatScore(report.MeanEngagement), a.cfg.Scale.Max)
	fmt.Fprintf(&b, "Average Overall:      %s/%d\n\n", formatScore(report.MeanOverall), a.cfg.Scale.Max)

	writeDistChart(&b, "Performance Distribution", report.PerformanceDist, report.TotalRecords)
	writeDistChart(&b, "Difficulty Distribution", report.DifficultyDist, report.TotalRecords)

	writeRankingTable(&b, fmt.Sprintf("Top %d Instructors", a.cfg.Analysis.TopN), TopN(report.ByInstructor, a.cfg.Analysis.TopN), a.cfg.Scale.Max)
	writeRankingTable(&b, fmt.Sprintf("Top %d Courses", a.cfg.Analysis.TopN), TopN(report.ByCourse, a.cfg.Analysis.TopN), a.cfg.Scale.Max)

	signed := metadata.Sign(b.String(), report.RunID)

	if err := os.WriteFile(path, []byte(signed), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

func writeDistChart(b *strings.Builder, title string, dist map[string]int, total int) {
	fmt.Fprintf(b, "%s\n%s\n", title, strings.Repeat("-", len(title)))

	for _, category := range sortedKeys(dist) {
		count := dist[category]
		pct := 0.0

		if total > 0 {
			pct = float64(count) / float64(total) * 100
		}

		bar := textutil.Bar(float64(count), float64(total), 30)
		fmt.Fprintf(b, "%s |%s %5.1f%% (%d)\n", textutil.PadRight(category, 12), textutil.PadRight(bar, 30), pct, count)
	}

	b.WriteString("\n")
}

func writeRankingTable(b *strings.Builder, title string, groups []models.GroupStats, scaleMax int) {
	fmt.Fprintf(b, "%s\n%s\n", title, strings.Repeat("-", len(title)))
	fmt.Fprintf(b, "%s %s %s %s\n",
		textutil.PadRight("Rank", 5), textutil.PadRight("ID", 12), textutil.PadLeft("Rating", 7), textutil.PadLeft("Reviews", 8))

	for i, g := range groups {
		fmt.Fprintf(b, "%s %s %s %s  %s\n",
			textutil.PadRight(strconv.Itoa(i+1), 5),
			textutil.PadRight(g.Key, 12),
			textutil.PadLeft(formatScore(g.MeanSatisfaction), 7),
			textutil.PadLeft(strconv.Itoa(g.Count), 8),
			textutil.Stars(g.MeanSatisfaction, scaleMax),
		)
	}

	b.WriteString("\n")
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
