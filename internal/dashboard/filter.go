// Package dashboard provides the interactive terminal view over the
// processed dataset. Filtering is a pure request/response cycle: a Query is
// applied to the dataset to produce a View, and the View is rendered. The
// interactive loop is only a thin shell around that cycle, so every display
// can be tested without a terminal.
package dashboard

import (
	"math"
	"strings"

	"academicpulse/internal/models"
)

// Query describes one filter/search request.
type Query struct {
	Course     string
	Instructor string
	Semester   string

	// Search matches case-insensitively against student, course, and
	// instructor identifiers and the free-text comment.
	Search string

	// MinRating and MaxRating bound the overall rating. Zero means
	// unbounded on that side.
	MinRating int
	MaxRating int

	Page     int
	PageSize int
}

// View is the computed response for one Query.
type View struct {
	Query        Query
	Rows         models.Dataset
	TotalMatches int
	Page         int
	Pages        int

	MeanRating       float64
	MeanSatisfaction float64
}

// Apply evaluates the query against the dataset and returns the view for the
// requested page. Page numbers are clamped into range.
func Apply(records models.Dataset, q Query) View {
	var matches models.Dataset

	for _, r := range records {
		if Matches(&r, &q) {
			matches = append(matches, r)
		}
	}

	view := View{Query: q, TotalMatches: len(matches)}

	var rating, satisfaction float64

	for _, r := range matches {
		rating += float64(r.OverallRating)
		satisfaction += r.SatisfactionScore
	}

	if n := len(matches); n > 0 {
		view.MeanRating = round2(rating / float64(n))
		view.MeanSatisfaction = round2(satisfaction / float64(n))
	}

	size := q.PageSize
	if size < 1 {
		size = len(matches)
		if size == 0 {
			size = 1
		}
	}

	view.Pages = (len(matches) + size - 1) / size
	if view.Pages == 0 {
		view.Pages = 1
	}

	view.Page = q.Page
	if view.Page < 1 {
		view.Page = 1
	}

	if view.Page > view.Pages {
		view.Page = view.Pages
	}

	start := (view.Page - 1) * size

	end := start + size
	if end > len(matches) {
		end = len(matches)
	}

	if start < len(matches) {
		view.Rows = matches[start:end]
	}

	return view
}

// Matches reports whether a record satisfies every filter in the query.
func Matches(r *models.FeedbackRecord, q *Query) bool {
	if q.Course != "" && !strings.EqualFold(r.CourseID, q.Course) {
		return false
	}

	if q.Instructor != "" && !strings.EqualFold(r.InstructorID, q.Instructor) {
		return false
	}

	if q.Semester != "" && !strings.Contains(strings.ToLower(r.Semester), strings.ToLower(q.Semester)) {
		return false
	}

	if q.MinRating > 0 && r.OverallRating < q.MinRating {
		return false
	}

	if q.MaxRating > 0 && r.OverallRating > q.MaxRating {
		return false
	}

	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		haystack := strings.ToLower(strings.Join([]string{r.StudentID, r.CourseID, r.InstructorID, r.Comment}, " "))

		if !strings.Contains(haystack, needle) {
			return false
		}
	}

	return true
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
