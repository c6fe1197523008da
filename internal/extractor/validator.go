package extractor

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"academicpulse/internal/config"
	"academicpulse/internal/models"
)

// Validation errors. ErrRatingOutOfRange and ErrMissingField classify why a
// row was rejected; the counts are reported separately.
var (
	ErrMissingField      = errors.New("missing required field")
	ErrRatingOutOfRange  = errors.New("rating out of range")
	ErrInvalidAttendance = errors.New("attendance_rate must be between 0 and 1")
)

// RecordValidator checks that a feedback record has its required fields and
// that every rating falls within the configured scale.
type RecordValidator struct {
	validate *validator.Validate
	scale    config.ScaleConfig
	rangeTag string
}

// NewRecordValidator creates a validator for the given rating scale.
func NewRecordValidator(scale config.ScaleConfig) *RecordValidator {
	return &RecordValidator{
		validate: validator.New(),
		scale:    scale,
		rangeTag: fmt.Sprintf("gte=%d,lte=%d", scale.Min, scale.Max),
	}
}

// Validate checks a record. The returned error wraps ErrMissingField,
// ErrRatingOutOfRange, or ErrInvalidAttendance so callers can classify it.
func (v *RecordValidator) Validate(rec *models.FeedbackRecord) error {
	if err := v.validate.Struct(rec); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return fmt.Errorf("%w: %s", ErrMissingField, fieldErrs[0].Field())
		}

		return fmt.Errorf("%w: %v", ErrMissingField, err)
	}

	for _, rating := range rec.Ratings() {
		if err := v.validate.Var(rating, v.rangeTag); err != nil {
			return fmt.Errorf("%w: %d not in [%d, %d]", ErrRatingOutOfRange, rating, v.scale.Min, v.scale.Max)
		}
	}

	if err := v.validate.Var(rec.AttendanceRate, "gte=0,lte=1"); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAttendance, rec.AttendanceRate)
	}

	return nil
}
