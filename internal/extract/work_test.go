package extract

import (
	"strings"
	"testing"
)

func TestExtractWorkExperience(t *testing.T) {
	t.Parallel()

	section := `Senior Developer
Acme BV
januari 2019 - heden
• Built the payments platform
• Led a team of four

Backend Developer
bij Widgets NV
March 2015 - December 2018
Maintained the order system
`

	entries := extractWorkExperience(section)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	first := entries[0]
	if first.Position != "Senior Developer" || first.Employer != "Acme BV" {
		t.Fatalf("unexpected first entry: %q at %q", first.Position, first.Employer)
	}
	if !first.Current {
		t.Fatal("heden must mark the entry as current")
	}
	if first.EndDate != nil {
		t.Fatal("a current entry must not carry an end date")
	}
	if first.StartDate == nil || first.StartDate.Year != 2019 || first.StartDate.Month != 1 {
		t.Fatalf("expected start januari 2019, got %+v", first.StartDate)
	}
	if !strings.Contains(first.Description, "payments platform") {
		t.Fatalf("description lost, got %q", first.Description)
	}

	second := entries[1]
	if second.Employer != "Widgets NV" {
		t.Fatalf("bij prefix must be stripped from employer, got %q", second.Employer)
	}
	if second.Current {
		t.Fatal("closed entry marked current")
	}
	if second.EndDate == nil || second.EndDate.Year != 2018 || second.EndDate.Month != 12 {
		t.Fatalf("expected end December 2018, got %+v", second.EndDate)
	}
}

func TestExtractWorkExperienceContractor(t *testing.T) {
	t.Parallel()

	section := `Freelance Consultant
Own Company
Jan 2020 - Present
Advised clients on infrastructure
`

	entries := extractWorkExperience(section)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if !strings.HasPrefix(entries[0].Description, "Contractor/Freelance\n") {
		t.Fatalf("contractor marker missing, got %q", entries[0].Description)
	}
}

func TestExtractWorkExperienceContractorWithoutDescription(t *testing.T) {
	t.Parallel()

	section := `Freelance Consultant
Own Company
Jan 2020 - Present
`

	entries := extractWorkExperience(section)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Description != "Contractor/Freelance" {
		t.Fatalf("contractor marker must survive an empty description, got %q", entries[0].Description)
	}
}

func TestExtractWorkExperienceFallback(t *testing.T) {
	t.Parallel()

	section := "Worked on many interesting things over the years without clear dates."

	entries := extractWorkExperience(section)
	if len(entries) != 1 {
		t.Fatalf("expected single fallback entry, got %d", len(entries))
	}
	if entries[0].Description != section {
		t.Fatalf("fallback must keep the raw text, got %q", entries[0].Description)
	}
	if entries[0].Position != "" || entries[0].StartDate != nil {
		t.Fatal("fallback entry must stay unstructured")
	}
}
