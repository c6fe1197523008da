package dashboard

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"academicpulse/internal/analyzer"
	"academicpulse/internal/config"
	"academicpulse/internal/models"
)

// Session runs the synchronous menu loop: read a choice, compute the view,
// render, repeat. It owns no goroutines and reads until EOF or exit.
type Session struct {
	cfg     *config.Config
	records models.Dataset
	in      *bufio.Scanner
	out     io.Writer
}

// NewSession creates a dashboard session over the given dataset.
func NewSession(cfg *config.Config, records models.Dataset, in io.Reader, out io.Writer) *Session {
	return &Session{
		cfg:     cfg,
		records: records,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run drives the menu loop until the user exits or input ends.
func (s *Session) Run() {
	if len(s.records) == 0 {
		fmt.Fprintln(s.out, "No data found. Run the ETL pipeline first.")

		return
	}

	for {
		s.printMenu()

		choice, ok := s.readLine("Select option (0-6): ")
		if !ok {
			return
		}

		switch choice {
		case "0":
			fmt.Fprintln(s.out, "Goodbye!")

			return
		case "1":
			RenderOverview(s.out, s.records, s.cfg.Scale.Max)
		case "2":
			groups := analyzer.GroupBy(s.records, func(r models.FeedbackRecord) string { return r.InstructorID })
			RenderRankings(s.out, "INSTRUCTOR RANKINGS", groups, s.cfg.Scale.Max)
		case "3":
			s.courseAnalysis()
		case "4":
			RenderCharts(s.out, s.records)
		case "5":
			s.customSearch()
		case "6":
			s.browse()
		default:
			fmt.Fprintln(s.out, "Invalid option. Please try again.")
		}
	}
}

func (s *Session) printMenu() {
	fmt.Fprintln(s.out, "\nACADEMIC PULSE DASHBOARD")
	fmt.Fprintln(s.out, strings.Repeat("=", 40))
	fmt.Fprintln(s.out, "1. Quick Overview")
	fmt.Fprintln(s.out, "2. Instructor Rankings")
	fmt.Fprintln(s.out, "3. Course Analysis")
	fmt.Fprintln(s.out, "4. Distribution Charts")
	fmt.Fprintln(s.out, "5. Custom Search")
	fmt.Fprintln(s.out, "6. Browse Records")
	fmt.Fprintln(s.out, "0. Exit")
	fmt.Fprintln(s.out, strings.Repeat("-", 40))
}

func (s *Session) courseAnalysis() {
	courseID, ok := s.readLine("Enter course ID (e.g., COURSE01): ")
	if !ok || courseID == "" {
		return
	}

	q := Query{Course: courseID}

	var matches models.Dataset

	for _, r := range s.records {
		if Matches(&r, &q) {
			matches = append(matches, r)
		}
	}

	RenderCourseDetail(s.out, strings.ToUpper(courseID), matches, s.cfg.Scale.Max)
}

func (s *Session) customSearch() {
	fmt.Fprintln(s.out, "\nCUSTOM SEARCH")
	fmt.Fprintln(s.out, "1. By Instructor")
	fmt.Fprintln(s.out, "2. By Semester")
	fmt.Fprintln(s.out, "3. By Rating Range")
	fmt.Fprintln(s.out, "4. Free Text")

	kind, ok := s.readLine("Select search type (1-4): ")
	if !ok {
		return
	}

	q := Query{PageSize: s.cfg.Dashboard.PageSize, Page: 1}

	switch kind {
	case "1":
		q.Instructor, ok = s.readLine("Enter instructor ID (e.g., INST01): ")
	case "2":
		q.Semester, ok = s.readLine("Enter semester (e.g., Fall2024): ")
	case "3":
		q.MinRating, q.MaxRating, ok = s.readRange()
	case "4":
		q.Search, ok = s.readLine("Enter search text: ")
	default:
		fmt.Fprintln(s.out, "Invalid search type.")

		return
	}

	if !ok {
		return
	}

	RenderView(s.out, Apply(s.records, q), s.cfg.Scale.Max)
}

func (s *Session) readRange() (int, int, bool) {
	minRaw, ok := s.readLine(fmt.Sprintf("Minimum rating (%d-%d): ", s.cfg.Scale.Min, s.cfg.Scale.Max))
	if !ok {
		return 0, 0, false
	}

	maxRaw, ok := s.readLine(fmt.Sprintf("Maximum rating (%d-%d): ", s.cfg.Scale.Min, s.cfg.Scale.Max))
	if !ok {
		return 0, 0, false
	}

	lo, err := strconv.Atoi(minRaw)
	if err != nil {
		lo = 0
	}

	hi, err := strconv.Atoi(maxRaw)
	if err != nil {
		hi = 0
	}

	return lo, hi, true
}

// browse pages through the full dataset: n for next, p for previous, q to quit.
func (s *Session) browse() {
	page := 1

	for {
		view := Apply(s.records, Query{Page: page, PageSize: s.cfg.Dashboard.PageSize})
		RenderView(s.out, view, s.cfg.Scale.Max)

		cmd, ok := s.readLine("[n]ext, [p]revious, [q]uit: ")
		if !ok {
			return
		}

		switch strings.ToLower(cmd) {
		case "n":
			if page < view.Pages {
				page++
			}
		case "p":
			if page > 1 {
				page--
			}
		case "q":
			return
		}
	}
}

func (s *Session) readLine(prompt string) (string, bool) {
	fmt.Fprint(s.out, prompt)

	if !s.in.Scan() {
		return "", false
	}

	return strings.TrimSpace(s.in.Text()), true
}
