package analyzer

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"academicpulse/internal/models"
)

// writeWorkbook exports the aggregate report as an Excel workbook with a
// summary sheet plus one ranked sheet per grouping.
func (a *Analyzer) writeWorkbook(path string, report *models.AggregateReport) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Summary"); err != nil {
		return fmt.Errorf("failed to rename summary sheet: %w", err)
	}

	summary := [][]interface{}{
		{"Academic Pulse Feedback Report"},
		{"Generated", report.GeneratedAt},
		{"Run ID", report.RunID},
		{},
		{"Metric", "Value"},
		{"Total Feedback Records", report.TotalRecords},
		{"Average Satisfaction Score", report.MeanSatisfaction},
		{"Average Engagement Score", report.MeanEngagement},
		{"Average Overall Rating", report.MeanOverall},
		{"Students Surveyed", report.Students},
		{"Courses Evaluated", report.Courses},
		{"Instructors Assessed", report.Instructors},
		{"Semesters Covered", report.Semesters},
	}

	for i, row := range summary {
		for j, val := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return fmt.Errorf("bad summary coordinates: %w", err)
			}

			if err := f.SetCellValue("Summary", cell, val); err != nil {
				return fmt.Errorf("failed to set summary cell %s: %w", cell, err)
			}
		}
	}

	sheets := []struct {
		name   string
		key    string
		groups []models.GroupStats
	}{
		{"Instructors", "Instructor ID", report.ByInstructor},
		{"Courses", "Course ID", report.ByCourse},
		{"Departments", "Department", report.ByDepartment},
		{"Semesters", "Semester", report.BySemester},
	}

	for _, sheet := range sheets {
		if err := writeGroupSheet(f, sheet.name, sheet.key, sheet.groups); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	return nil
}

func writeGroupSheet(f *excelize.File, name, keyHeader string, groups []models.GroupStats) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", name, err)
	}

	header := []interface{}{"Rank", keyHeader, "Reviews", "Mean Satisfaction", "Mean Rating", "Min", "Max"}

	rows := [][]interface{}{header}
	for i, g := range groups {
		rows = append(rows, []interface{}{i + 1, g.Key, g.Count, g.MeanSatisfaction, g.MeanRating, g.MinRating, g.MaxRating})
	}

	for i, row := range rows {
		for j, val := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return fmt.Errorf("bad coordinates on sheet %s: %w", name, err)
			}

			if err := f.SetCellValue(name, cell, val); err != nil {
				return fmt.Errorf("failed to set cell %s!%s: %w", name, cell, err)
			}
		}
	}

	return nil
}
