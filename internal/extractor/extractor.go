// Package extractor reads raw student feedback files, validates each row,
// and produces the normalized dataset consumed by the transformer. Invalid
// rows are counted and excluded; they never abort the run.
package extractor

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"academicpulse/internal/config"
	"academicpulse/internal/dataset"
	"academicpulse/internal/logger"
	"academicpulse/internal/models"
)

// ErrNoHeader is returned when the raw file has no header row.
var ErrNoHeader = errors.New("raw file has no header row")

// Extractor converts a raw feedback CSV into a normalized dataset.
type Extractor struct {
	cfg *config.Config
	log *logger.Logger
	rv  *RecordValidator
}

// New creates an extractor for the given configuration.
func New(cfg *config.Config, log *logger.Logger) *Extractor {
	return &Extractor{
		cfg: cfg,
		log: log,
		rv:  NewRecordValidator(cfg.Scale),
	}
}

// Extract reads the raw file at inputPath, validates every row, writes the
// accepted rows to outputPath in source order, and returns the run summary.
// An unreadable input is fatal; invalid rows are skipped and counted.
func (e *Extractor) Extract(inputPath, outputPath string) (*models.ExtractionSummary, models.Dataset, error) {
	f, err := os.Open(inputPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open raw file: %w", err)
	}
	defer f.Close()

	summary := &models.ExtractionSummary{}

	records, err := e.readRows(f, summary)
	if err != nil {
		return nil, nil, err
	}

	if len(records) == 0 {
		e.log.Warn("no valid records extracted", "input", inputPath, "rows_read", summary.RowsRead)
	}

	if err := dataset.WriteNormalized(outputPath, records); err != nil {
		return nil, nil, fmt.Errorf("failed to write normalized dataset: %w", err)
	}

	e.log.Info("extraction complete",
		"rows_read", summary.RowsRead,
		"accepted", summary.Accepted,
		"rejected", summary.Rejected(),
		"output", outputPath,
	)

	return summary, records, nil
}

// readRows parses and validates every data row. Column order in the raw file
// is free; columns are located by header name and unknown columns are ignored.
func (e *Extractor) readRows(r io.Reader, summary *models.ExtractionSummary) (models.Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(strings.ToLower(name))] = i
	}

	var records models.Dataset

	for line := 2; ; line++ {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			summary.RowsRead++
			summary.Malformed++
			e.log.Debug("skipping malformed row", "line", line, "error", err)

			continue
		}

		summary.RowsRead++

		rec, err := e.buildRecord(cols, fields)
		if err != nil {
			if errors.Is(err, ErrMissingField) {
				summary.RejectedMissing++
			} else {
				summary.Malformed++
			}

			e.log.Debug("skipping unparsable row", "line", line, "error", err)

			continue
		}

		if err := e.rv.Validate(&rec); err != nil {
			switch {
			case errors.Is(err, ErrRatingOutOfRange), errors.Is(err, ErrInvalidAttendance):
				summary.RejectedRange++
			default:
				summary.RejectedMissing++
			}

			e.log.Debug("rejecting invalid row", "line", line, "error", err)

			continue
		}

		summary.Accepted++

		records = append(records, rec)
	}

	return records, nil
}

func (e *Extractor) buildRecord(cols map[string]int, fields []string) (models.FeedbackRecord, error) {
	get := func(name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(fields) {
			return ""
		}

		return strings.TrimSpace(fields[idx])
	}

	rec := models.FeedbackRecord{
		FeedbackID:   get("feedback_id"),
		StudentID:    get("student_id"),
		CourseID:     get("course_id"),
		InstructorID: get("instructor_id"),
		Department:   get("department"),
		Semester:     get("semester"),
		Comment:      get("comment"),
		FeedbackDate: get("feedback_date"),
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{"overall_rating", &rec.OverallRating},
		{"course_content_rating", &rec.CourseContentRating},
		{"instructor_effectiveness", &rec.InstructorEffectiveness},
		{"difficulty_level", &rec.DifficultyLevel},
		{"workload_rating", &rec.WorkloadRating},
		{"recommendation_score", &rec.RecommendationScore},
		{"assignment_quality", &rec.AssignmentQuality},
	}

	for _, f := range ints {
		raw := get(f.name)
		if raw == "" {
			return rec, fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}

		v, err := strconv.Atoi(raw)
		if err != nil {
			return rec, fmt.Errorf("invalid %s %q: %w", f.name, raw, err)
		}

		*f.dst = v
	}

	if raw := get("attendance_rate"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return rec, fmt.Errorf("invalid attendance_rate %q: %w", raw, err)
		}

		rec.AttendanceRate = v
	}

	return rec, nil
}
