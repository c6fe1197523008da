// Package models defines the data structures shared across the pipeline stages.
package models

// FeedbackRecord represents one student's feedback entry for a course.
// The derived fields are empty until the transformer stage fills them in.
type FeedbackRecord struct {
	FeedbackID   string `validate:"required"`
	StudentID    string `validate:"required"`
	CourseID     string `validate:"required"`
	InstructorID string `validate:"required"`
	Department   string
	Semester     string

	OverallRating           int
	CourseContentRating     int
	InstructorEffectiveness int
	DifficultyLevel         int
	WorkloadRating          int
	RecommendationScore     int
	AssignmentQuality       int

	// AttendanceRate is a fraction in [0, 1].
	AttendanceRate float64

	Comment      string
	FeedbackDate string

	// Derived fields (transformer output).
	SatisfactionScore   float64
	EngagementScore     float64
	DifficultyCategory  string
	PerformanceCategory string
}

// Ratings returns the bounded rating fields in header order. Every value
// must fall within the configured scale for the record to be accepted.
func (r *FeedbackRecord) Ratings() []int {
	return []int{
		r.OverallRating,
		r.CourseContentRating,
		r.InstructorEffectiveness,
		r.DifficultyLevel,
		r.WorkloadRating,
		r.RecommendationScore,
		r.AssignmentQuality,
	}
}

// Dataset is an ordered collection of feedback records. Order reflects
// the source file row order.
type Dataset []FeedbackRecord

// CourseIDs returns the distinct course identifiers in first-seen order.
func (d Dataset) CourseIDs() []string {
	return distinct(d, func(r FeedbackRecord) string { return r.CourseID })
}

// InstructorIDs returns the distinct instructor identifiers in first-seen order.
func (d Dataset) InstructorIDs() []string {
	return distinct(d, func(r FeedbackRecord) string { return r.InstructorID })
}

// StudentIDs returns the distinct student identifiers in first-seen order.
func (d Dataset) StudentIDs() []string {
	return distinct(d, func(r FeedbackRecord) string { return r.StudentID })
}

// Semesters returns the distinct semester labels in first-seen order.
func (d Dataset) Semesters() []string {
	return distinct(d, func(r FeedbackRecord) string { return r.Semester })
}

func distinct(d Dataset, key func(FeedbackRecord) string) []string {
	seen := make(map[string]bool, len(d))

	var out []string

	for _, r := range d {
		k := key(r)
		if k == "" || seen[k] {
			continue
		}

		seen[k] = true

		out = append(out, k)
	}

	return out
}
