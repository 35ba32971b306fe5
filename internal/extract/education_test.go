package extract

import (
	"strings"
	"testing"
)

func TestExtractEducation(t *testing.T) {
	t.Parallel()

	section := `2010 - 2014
Hogeschool Rotterdam
HBO Informatica

2014 - 2016
MSc Computer Science
University of Amsterdam
cum laude
`

	entries := extractEducation(section)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	first := entries[0]
	if first.Organization != "Hogeschool Rotterdam" {
		t.Fatalf("expected institution, got %q", first.Organization)
	}
	if first.Title == "" {
		t.Fatalf("expected a degree title, got %q", first.Title)
	}
	if first.StartDate == nil || first.StartDate.Year != 2010 || first.StartDate.Month != 9 {
		t.Fatalf("expected start September 2010, got %+v", first.StartDate)
	}
	if first.EndDate == nil || first.EndDate.Year != 2014 || first.EndDate.Month != 6 {
		t.Fatalf("expected end June 2014, got %+v", first.EndDate)
	}

	second := entries[1]
	if !strings.Contains(second.Title, "Computer Science") {
		t.Fatalf("expected degree with field, got %q", second.Title)
	}
	if second.Organization != "University of Amsterdam" {
		t.Fatalf("expected university, got %q", second.Organization)
	}
	if second.Description != "cum laude" {
		t.Fatalf("expected grade captured, got %q", second.Description)
	}
}

func TestExtractEducationGraduatedOnly(t *testing.T) {
	t.Parallel()

	entries := extractEducation("afgestudeerd in 2016\nWO Sociologie\nUniversiteit Utrecht\n")
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	entry := entries[0]
	if entry.EndDate == nil || entry.EndDate.Year != 2016 {
		t.Fatalf("expected graduation year 2016, got %+v", entry.EndDate)
	}
	if entry.StartDate == nil || entry.StartDate.Year != 2012 {
		t.Fatalf("expected assumed start 2012, got %+v", entry.StartDate)
	}
}

func TestExtractEducationFallback(t *testing.T) {
	t.Parallel()

	entries := extractEducation("Various courses and self study.")
	if len(entries) != 1 {
		t.Fatalf("expected fallback entry, got %d", len(entries))
	}
	if entries[0].Description != "Various courses and self study." {
		t.Fatalf("fallback must keep the text, got %q", entries[0].Description)
	}
}
