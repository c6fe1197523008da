package dashboard

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"academicpulse/internal/analyzer"
	"academicpulse/internal/models"
	"academicpulse/pkg/textutil"
)

// RenderView writes a paginated record table with match statistics.
func RenderView(w io.Writer, view View, scaleMax int) {
	fmt.Fprintf(w, "\nMatches: %d", view.TotalMatches)

	if view.TotalMatches > 0 {
		fmt.Fprintf(w, "  |  Avg Rating: %.2f/%d  |  Avg Satisfaction: %.2f/%d",
			view.MeanRating, scaleMax, view.MeanSatisfaction, scaleMax)
	}

	fmt.Fprintf(w, "  |  Page %d/%d\n", view.Page, view.Pages)

	if len(view.Rows) == 0 {
		fmt.Fprintln(w, "No records to display.")

		return
	}

	cols := []struct {
		name  string
		width int
	}{
		{"Student", 8}, {"Course", 9}, {"Instructor", 10}, {"Semester", 10},
		{"Rating", 6}, {"Satisf", 6}, {"Performance", 11}, {"Comment", 28},
	}

	var header []string
	for _, c := range cols {
		header = append(header, textutil.PadRight(c.name, c.width))
	}

	line := strings.Join(header, " | ")
	fmt.Fprintln(w, line)
	fmt.Fprintln(w, strings.Repeat("-", len(line)))

	for _, r := range view.Rows {
		fields := []string{
			textutil.PadRight(r.StudentID, 8),
			textutil.PadRight(r.CourseID, 9),
			textutil.PadRight(r.InstructorID, 10),
			textutil.PadRight(r.Semester, 10),
			textutil.PadLeft(strconv.Itoa(r.OverallRating), 6),
			textutil.PadLeft(fmt.Sprintf("%.2f", r.SatisfactionScore), 6),
			textutil.PadRight(r.PerformanceCategory, 11),
			textutil.Truncate(textutil.NormalizeWhitespace(r.Comment), 28),
		}
		fmt.Fprintln(w, strings.Join(fields, " | "))
	}
}

// RenderOverview writes the quick-overview panel.
func RenderOverview(w io.Writer, records models.Dataset, scaleMax int) {
	fmt.Fprintln(w, "\nQUICK OVERVIEW")
	fmt.Fprintln(w, strings.Repeat("-", 30))

	total := len(records)
	fmt.Fprintf(w, "Total Records: %d\n", total)

	if total == 0 {
		return
	}

	var satisfaction float64

	perf := map[string]int{}

	for _, r := range records {
		satisfaction += r.SatisfactionScore
		perf[r.PerformanceCategory]++
	}

	fmt.Fprintf(w, "Students: %d  Courses: %d  Instructors: %d\n",
		len(records.StudentIDs()), len(records.CourseIDs()), len(records.InstructorIDs()))
	fmt.Fprintf(w, "Average Satisfaction: %.2f/%d\n\n", satisfaction/float64(total), scaleMax)

	fmt.Fprintln(w, "Performance Distribution:")
	renderDistribution(w, perf, total)
}

// RenderRankings writes a ranked group table with star ratings.
func RenderRankings(w io.Writer, title string, groups []models.GroupStats, scaleMax int) {
	fmt.Fprintf(w, "\n%s\n%s\n", title, strings.Repeat("-", len(title)))

	if len(groups) == 0 {
		fmt.Fprintln(w, "No data available.")

		return
	}

	fmt.Fprintf(w, "%s | %s | %s | %s |\n",
		textutil.PadRight("Rank", 4), textutil.PadRight("ID", 12), textutil.PadLeft("Rating", 6), textutil.PadLeft("Reviews", 7))

	for i, g := range groups {
		fmt.Fprintf(w, "%s | %s | %s | %s | %s\n",
			textutil.PadRight(strconv.Itoa(i+1), 4),
			textutil.PadRight(g.Key, 12),
			textutil.PadLeft(fmt.Sprintf("%.2f", g.MeanSatisfaction), 6),
			textutil.PadLeft(strconv.Itoa(g.Count), 7),
			textutil.Stars(g.MeanSatisfaction, scaleMax),
		)
	}
}

// RenderCourseDetail writes per-course stats including difficulty.
func RenderCourseDetail(w io.Writer, courseID string, matches models.Dataset, scaleMax int) {
	fmt.Fprintf(w, "\n%s Results:\n", courseID)

	if len(matches) == 0 {
		fmt.Fprintf(w, "No records found for %s\n", courseID)

		return
	}

	var satisfaction, difficulty float64

	for _, r := range matches {
		satisfaction += r.SatisfactionScore
		difficulty += float64(r.DifficultyLevel)
	}

	n := float64(len(matches))

	fmt.Fprintf(w, "  Reviews: %d\n", len(matches))
	fmt.Fprintf(w, "  Average Satisfaction: %.2f/%d\n", satisfaction/n, scaleMax)
	fmt.Fprintf(w, "  Average Difficulty: %.1f/%d\n", difficulty/n, scaleMax)
	fmt.Fprintf(w, "  Instructors: %s\n", strings.Join(matches.InstructorIDs(), ", "))
}

// RenderCharts writes distribution bar charts for the dataset.
func RenderCharts(w io.Writer, records models.Dataset) {
	total := len(records)
	if total == 0 {
		fmt.Fprintln(w, "No data available.")

		return
	}

	perf := map[string]int{}
	diff := map[string]int{}

	for _, r := range records {
		perf[r.PerformanceCategory]++
		diff[r.DifficultyCategory]++
	}

	fmt.Fprintln(w, "\nPerformance Distribution")
	renderDistribution(w, perf, total)

	fmt.Fprintln(w, "\nDifficulty Distribution")
	renderDistribution(w, diff, total)

	fmt.Fprintln(w, "\nAverage Satisfaction by Semester")

	for _, g := range analyzer.GroupBy(records, func(r models.FeedbackRecord) string { return r.Semester }) {
		bar := textutil.Bar(g.MeanSatisfaction, 5, 30)
		fmt.Fprintf(w, "%s |%s %.2f\n", textutil.PadRight(g.Key, 12), textutil.PadRight(bar, 30), g.MeanSatisfaction)
	}
}

func renderDistribution(w io.Writer, dist map[string]int, total int) {
	for _, category := range sortedCategories(dist) {
		count := dist[category]
		pct := float64(count) / float64(total) * 100
		bar := textutil.Bar(float64(count), float64(total), 25)
		fmt.Fprintf(w, "  %s |%s %5.1f%% (%d)\n", textutil.PadRight(category, 10), textutil.PadRight(bar, 25), pct, count)
	}
}

func sortedCategories(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
