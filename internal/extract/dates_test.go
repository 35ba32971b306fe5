package extract

import "testing"

func TestParseMonthYear(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		year  int
		month int
	}{
		{name: "english full", input: "March 2019", year: 2019, month: 3},
		{name: "english abbreviation", input: "Sep 2020", year: 2020, month: 9},
		{name: "dutch full", input: "augustus 2018", year: 2018, month: 8},
		{name: "dutch abbreviation", input: "mrt 2017", year: 2017, month: 3},
		{name: "juni not read as jun prefix", input: "juni 2021", year: 2021, month: 6},
		{name: "year only", input: "2015", year: 2015, month: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := parseMonthYear(tt.input)
			if d == nil {
				t.Fatalf("expected a date for %q", tt.input)
			}
			if d.Year != tt.year || d.Month != tt.month {
				t.Fatalf("expected %d-%d, got %d-%d", tt.year, tt.month, d.Year, d.Month)
			}
		})
	}
}

func TestParseMonthYearNoYear(t *testing.T) {
	t.Parallel()

	if d := parseMonthYear("heden"); d != nil {
		t.Fatalf("expected nil for text without a year, got %+v", d)
	}
}

func TestIsPresent(t *testing.T) {
	t.Parallel()

	for _, token := range []string{"Present", "heden", "Nu", "current"} {
		if !isPresent(token) {
			t.Fatalf("%q must count as ongoing", token)
		}
	}
	if isPresent("December 2020") {
		t.Fatal("a dated end must not count as ongoing")
	}
}
