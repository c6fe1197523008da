// Package dataset reads and writes the CSV files that connect the pipeline
// stages. Normalized files carry the base columns; processed files append the
// derived columns. Writes are whole-file replacements.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"academicpulse/internal/models"
)

// Codec errors.
var (
	ErrHeaderMismatch = errors.New("unexpected CSV header")
	ErrFieldCount     = errors.New("unexpected field count")
)

// baseColumns is the normalized dataset header, in write order.
var baseColumns = []string{
	"feedback_id",
	"student_id",
	"course_id",
	"instructor_id",
	"department",
	"semester",
	"overall_rating",
	"course_content_rating",
	"instructor_effectiveness",
	"difficulty_level",
	"workload_rating",
	"recommendation_score",
	"assignment_quality",
	"attendance_rate",
	"comment",
	"feedback_date",
}

// derivedColumns is appended to baseColumns in processed files.
var derivedColumns = []string{
	"satisfaction_score",
	"engagement_score",
	"difficulty_category",
	"performance_category",
}

// WriteNormalized writes records with base columns only.
func WriteNormalized(path string, records models.Dataset) error {
	return write(path, records, false)
}

// WriteProcessed writes records with base and derived columns.
func WriteProcessed(path string, records models.Dataset) error {
	return write(path, records, true)
}

// ReadNormalized reads a normalized dataset. A missing header (empty file)
// yields an empty dataset, not an error.
func ReadNormalized(path string) (models.Dataset, error) {
	return read(path, false)
}

// ReadProcessed reads a transformed dataset including derived columns.
func ReadProcessed(path string) (models.Dataset, error) {
	return read(path, true)
}

func write(path string, records models.Dataset, derived bool) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	header := baseColumns
	if derived {
		header = append(append([]string{}, baseColumns...), derivedColumns...)
	}

	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i := range records {
		if err := w.Write(row(&records[i], derived)); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}

	return f.Close()
}

func row(r *models.FeedbackRecord, derived bool) []string {
	fields := []string{
		r.FeedbackID,
		r.StudentID,
		r.CourseID,
		r.InstructorID,
		r.Department,
		r.Semester,
		strconv.Itoa(r.OverallRating),
		strconv.Itoa(r.CourseContentRating),
		strconv.Itoa(r.InstructorEffectiveness),
		strconv.Itoa(r.DifficultyLevel),
		strconv.Itoa(r.WorkloadRating),
		strconv.Itoa(r.RecommendationScore),
		strconv.Itoa(r.AssignmentQuality),
		strconv.FormatFloat(r.AttendanceRate, 'f', -1, 64),
		r.Comment,
		r.FeedbackDate,
	}

	if derived {
		fields = append(fields,
			strconv.FormatFloat(r.SatisfactionScore, 'f', -1, 64),
			strconv.FormatFloat(r.EngagementScore, 'f', -1, 64),
			r.DifficultyCategory,
			r.PerformanceCategory,
		)
	}

	return fields
}

func read(path string, derived bool) (models.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return models.Dataset{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	base := len(baseColumns)
	full := base + len(derivedColumns)

	// A normalized read also accepts a processed file: the derived columns
	// are simply ignored. This keeps the transformer idempotent over its
	// own output.
	want := len(header)
	if header[0] != baseColumns[0] || (want != base && want != full) || (derived && want != full) {
		return nil, fmt.Errorf("%w in %s: got %d columns", ErrHeaderMismatch, path, len(header))
	}

	var records models.Dataset

	for line := 2; ; line++ {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to read line %d: %w", line, err)
		}

		if len(fields) != want {
			return nil, fmt.Errorf("%w at line %d: got %d, want %d", ErrFieldCount, line, len(fields), want)
		}

		rec, err := parse(fields, derived)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		records = append(records, rec)
	}

	return records, nil
}

func parse(fields []string, derived bool) (models.FeedbackRecord, error) {
	var rec models.FeedbackRecord

	rec.FeedbackID = fields[0]
	rec.StudentID = fields[1]
	rec.CourseID = fields[2]
	rec.InstructorID = fields[3]
	rec.Department = fields[4]
	rec.Semester = fields[5]

	ints := []struct {
		name string
		dst  *int
		raw  string
	}{
		{"overall_rating", &rec.OverallRating, fields[6]},
		{"course_content_rating", &rec.CourseContentRating, fields[7]},
		{"instructor_effectiveness", &rec.InstructorEffectiveness, fields[8]},
		{"difficulty_level", &rec.DifficultyLevel, fields[9]},
		{"workload_rating", &rec.WorkloadRating, fields[10]},
		{"recommendation_score", &rec.RecommendationScore, fields[11]},
		{"assignment_quality", &rec.AssignmentQuality, fields[12]},
	}

	for _, f := range ints {
		v, err := strconv.Atoi(f.raw)
		if err != nil {
			return rec, fmt.Errorf("invalid %s %q: %w", f.name, f.raw, err)
		}

		*f.dst = v
	}

	attendance, err := strconv.ParseFloat(fields[13], 64)
	if err != nil {
		return rec, fmt.Errorf("invalid attendance_rate %q: %w", fields[13], err)
	}

	rec.AttendanceRate = attendance
	rec.Comment = fields[14]
	rec.FeedbackDate = fields[15]

	if derived {
		satisfaction, err := strconv.ParseFloat(fields[16], 64)
		if err != nil {
			return rec, fmt.Errorf("invalid satisfaction_score %q: %w", fields[16], err)
		}

		engagement, err := strconv.ParseFloat(fields[17], 64)
		if err != nil {
			return rec, fmt.Errorf("invalid engagement_score %q: %w", fields[17], err)
		}

		rec.SatisfactionScore = satisfaction
		rec.EngagementScore = engagement
		rec.DifficultyCategory = fields[18]
		rec.PerformanceCategory = fields[19]
	}

	return rec, nil
}
