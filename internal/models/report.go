package models

// ExtractionSummary reports the outcome of an extraction run. Rejected rows
// are counted per reason; they never appear in the normalized output.
type ExtractionSummary struct {
	RowsRead        int
	Accepted        int
	RejectedRange   int
	RejectedMissing int
	Malformed       int
}

// Rejected returns the total number of rows excluded from the output.
func (s *ExtractionSummary) Rejected() int {
	return s.RejectedRange + s.RejectedMissing + s.Malformed
}

// QualityReport summarizes a transformation run.
type QualityReport struct {
	RecordsProcessed int
	RecordsCleaned   int
	QualityScore     float64
}

// GroupStats holds aggregate statistics for one grouping key (an instructor,
// course, department, or semester). Immutable once computed.
type GroupStats struct {
	Key              string
	Count            int
	MeanRating       float64
	MinRating        int
	MaxRating        int
	MeanSatisfaction float64

	// Distribution maps a rating value to the number of records with that
	// overall rating.
	Distribution map[int]int
}

// AggregateReport is the full output of one analysis run.
type AggregateReport struct {
	RunID       string
	GeneratedAt string

	TotalRecords     int
	Students         int
	Courses          int
	Instructors      int
	Semesters        int
	MeanSatisfaction float64
	MeanEngagement   float64
	MeanOverall      float64

	ByInstructor []GroupStats
	ByCourse     []GroupStats
	ByDepartment []GroupStats
	BySemester   []GroupStats

	PerformanceDist map[string]int
	DifficultyDist  map[string]int
}
