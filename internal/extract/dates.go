package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/eurocv/eurocv/internal/resume"
)

// monthNumbers maps English and Dutch month names and abbreviations to
// their number. Longer names are matched before their abbreviations.
var monthNumbers = map[string]int{
	"january": 1, "januari": 1, "jan": 1,
	"february": 2, "februari": 2, "feb": 2,
	"march": 3, "maart": 3, "mar": 3, "mrt": 3,
	"april": 4, "apr": 4,
	"may": 5, "mei": 5,
	"june": 6, "juni": 6, "jun": 6,
	"july": 7, "juli": 7, "jul": 7,
	"august": 8, "augustus": 8, "aug": 8,
	"september": 9, "sept": 9, "sep": 9,
	"october": 10, "oktober": 10, "oct": 10, "okt": 10,
	"november": 11, "nov": 11,
	"december": 12, "dec": 12,
}

const (
	monthsEN = `January|February|March|April|May|June|July|August|September|October|November|December|Jan|Feb|Mar|Apr|Jun|Jul|Aug|Sept|Sep|Oct|Nov|Dec`
	monthsNL = `januari|februari|maart|april|mei|juni|juli|augustus|september|oktober|november|december|jan|feb|mrt|apr|jun|jul|aug|sept|sep|okt|nov|dec`

	presentTokens = `Present|Current|Heden|Nu|Now|Ongoing|Today`
)

// dateRangeRe captures "Month Year - Month Year" and "Month Year - Present"
// with English or Dutch month names and any dash variant.
var dateRangeRe = regexp.MustCompile(
	`(?i)((?:` + monthsEN + `|` + monthsNL + `)\s+\d{4})\s*[-–—]\s*((?:` + monthsEN + `|` + monthsNL + `)\s+\d{4}|(?:` + presentTokens + `))`,
)

var yearRe = regexp.MustCompile(`\b(19|20)\d{2}\b`)

var presentRe = regexp.MustCompile(`(?i)\b(?:` + presentTokens + `)\b`)

// isPresent reports whether the token marks an ongoing period.
func isPresent(s string) bool {
	return presentRe.MatchString(s)
}

// parseMonthYear turns "March 2019", "mrt 2019" or a bare "2019" into a
// partial date. Unparseable input yields nil, never an error.
func parseMonthYear(s string) *resume.Date {
	yearMatch := yearRe.FindString(s)
	if yearMatch == "" {
		return nil
	}
	year, err := strconv.Atoi(yearMatch)
	if err != nil {
		return nil
	}

	// Prefer the longest matching name so "juni" is never read as "jun"
	// plus trailing text.
	lower := strings.ToLower(s)
	month, matched := 0, 0
	for name, num := range monthNumbers {
		if len(name) > matched && strings.Contains(lower, name) {
			month, matched = num, len(name)
		}
	}

	if month == 0 {
		return resume.YearOnly(year)
	}
	return &resume.Date{Year: year, Month: month}
}
