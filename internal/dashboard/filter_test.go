package dashboard

import (
	"testing"

	"academicpulse/internal/models"
)

func testRecords() models.Dataset {
	return models.Dataset{
		{StudentID: "STU001", CourseID: "COURSE01", InstructorID: "INST01", Semester: "Fall2024", OverallRating: 5, SatisfactionScore: 4.5, Comment: "Loved the labs"},
		{StudentID: "STU002", CourseID: "COURSE01", InstructorID: "INST02", Semester: "Fall2024", OverallRating: 3, SatisfactionScore: 3.0},
		{StudentID: "STU003", CourseID: "COURSE02", InstructorID: "INST01", Semester: "Spring2024", OverallRating: 1, SatisfactionScore: 1.5, Comment: "Too fast"},
		{StudentID: "STU004", CourseID: "COURSE02", InstructorID: "INST02", Semester: "Spring2024", OverallRating: 4, SatisfactionScore: 4.0},
	}
}

func TestApply_Filters(t *testing.T) {
	records := testRecords()

	tests := []struct {
		name  string
		query Query
		want  int
	}{
		{"no filter", Query{}, 4},
		{"by course", Query{Course: "COURSE01"}, 2},
		{"by course case-insensitive", Query{Course: "course01"}, 2},
		{"by instructor", Query{Instructor: "INST01"}, 2},
		{"by semester substring", Query{Semester: "spring"}, 2},
		{"min rating", Query{MinRating: 4}, 2},
		{"max rating", Query{MaxRating: 3}, 2},
		{"rating range", Query{MinRating: 3, MaxRating: 4}, 2},
		{"search comment", Query{Search: "labs"}, 1},
		{"search student id", Query{Search: "stu003"}, 1},
		{"combined", Query{Course: "COURSE02", MinRating: 4}, 1},
		{"no match", Query{Course: "COURSE99"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := Apply(records, tt.query)
			if view.TotalMatches != tt.want {
				t.Errorf("TotalMatches = %d, want %d", view.TotalMatches, tt.want)
			}
		})
	}
}

func TestApply_Stats(t *testing.T) {
	view := Apply(testRecords(), Query{Course: "COURSE01"})

	if view.MeanRating != 4.0 {
		t.Errorf("MeanRating = %v, want 4.0", view.MeanRating)
	}

	if view.MeanSatisfaction != 3.75 {
		t.Errorf("MeanSatisfaction = %v, want 3.75", view.MeanSatisfaction)
	}
}

func TestApply_Pagination(t *testing.T) {
	records := testRecords()

	view := Apply(records, Query{Page: 1, PageSize: 3})
	if view.Pages != 2 || len(view.Rows) != 3 {
		t.Errorf("Page 1: pages=%d rows=%d, want 2/3", view.Pages, len(view.Rows))
	}

	view = Apply(records, Query{Page: 2, PageSize: 3})
	if len(view.Rows) != 1 || view.Rows[0].StudentID != "STU004" {
		t.Errorf("Page 2: %+v", view.Rows)
	}

	// Out-of-range pages are clamped.
	view = Apply(records, Query{Page: 99, PageSize: 3})
	if view.Page != 2 {
		t.Errorf("Clamped page = %d, want 2", view.Page)
	}

	view = Apply(records, Query{Page: 0, PageSize: 3})
	if view.Page != 1 {
		t.Errorf("Clamped page = %d, want 1", view.Page)
	}
}

func TestApply_EmptyDataset(t *testing.T) {
	view := Apply(models.Dataset{}, Query{PageSize: 10})

	if view.TotalMatches != 0 || view.Pages != 1 || len(view.Rows) != 0 {
		t.Errorf("Unexpected view for empty dataset: %+v", view)
	}
}
