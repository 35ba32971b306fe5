package extract

import (
	"regexp"
	"strings"

	"github.com/eurocv/eurocv/internal/resume"
)

// employerPrepositionRe strips the Dutch "bij Bedrijf" / "voor Bedrijf"
// idiom (and English "at Company") from employer lines.
var employerPrepositionRe = regexp.MustCompile(`(?i)\b(?:bij|voor|at)\s+(.+)`)

var contractorKeywords = []string{
	"freelance", "contractor", "consultant", "zelfstandig", "zzp",
}

const (
	workDescScanLines = 20
	workDescMaxLines  = 10
	fallbackDescLimit = 1000
)

// extractWorkExperience parses the work section into entries. Each date
// range anchors one entry: the lines just before it carry the position
// and employer, the text after it is the description.
func extractWorkExperience(text string) []resume.WorkExperience {
	var experiences []resume.WorkExperience

	matches := dateRangeRe.FindAllStringSubmatchIndex(text, -1)
	for i, m := range matches {
		before := text[boundaryStart(matches, i):m[0]]
		afterEnd := len(text)
		if i+1 < len(matches) {
			afterEnd = matches[i+1][0]
		}
		after := text[m[1]:afterEnd]

		startStr := text[m[2]:m[3]]
		endStr := text[m[4]:m[5]]

		if len(strings.TrimSpace(before)) < 5 {
			continue
		}

		var exp resume.WorkExperience
		exp.StartDate = parseMonthYear(startStr)
		if isPresent(endStr) {
			exp.Current = true
		} else {
			exp.EndDate = parseMonthYear(endStr)
		}

		lines := nonEmptyLines(before)
		switch {
		case len(lines) >= 2:
			// Last line before the dates is the employer, the one
			// above it the position.
			exp.Position = lines[len(lines)-2]
			exp.Employer = lines[len(lines)-1]
			if pm := employerPrepositionRe.FindStringSubmatch(exp.Employer); pm != nil {
				exp.Employer = strings.TrimSpace(pm[1])
			}
		case len(lines) == 1:
			exp.Position = lines[0]
		}

		exp.Description = workDescription(after)
		if isContractor(exp.Position, exp.Employer) {
			if exp.Description != "" {
				exp.Description = "Contractor/Freelance\n" + exp.Description
			} else {
				exp.Description = "Contractor/Freelance"
			}
		}

		experiences = append(experiences, exp)
	}

	// Unstructured section: keep the text so nothing is lost.
	if len(experiences) == 0 {
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			if len(trimmed) > fallbackDescLimit {
				trimmed = trimmed[:fallbackDescLimit]
			}
			experiences = append(experiences, resume.WorkExperience{Description: trimmed})
		}
	}

	return experiences
}

// boundaryStart returns where entry i's leading text begins: after the
// previous date range, or at the start of the section for the first one.
func boundaryStart(matches [][]int, i int) int {
	if i == 0 {
		return 0
	}
	return matches[i-1][1]
}

// workDescription collects description lines until the next entry's
// uppercase job header.
func workDescription(after string) string {
	lines := nonEmptyLines(after)
	if len(lines) > workDescScanLines {
		lines = lines[:workDescScanLines]
	}
	var desc []string
	for _, line := range lines {
		if isUpperLine(line) && len(line) > 5 && !strings.HasPrefix(line, "•") {
			break
		}
		desc = append(desc, line)
		if len(desc) == workDescMaxLines {
			break
		}
	}
	return strings.Join(desc, "\n")
}

func isContractor(position, employer string) bool {
	pos := strings.ToLower(position)
	emp := strings.ToLower(employer)
	for _, kw := range contractorKeywords {
		if strings.Contains(pos, kw) || strings.Contains(emp, kw) {
			return true
		}
	}
	return false
}

// isUpperLine reports whether the line has letters and every letter is
// uppercase, like the ALL-CAPS headers LinkedIn exports use.
func isUpperLine(s string) bool {
	hasLetter := false
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			return false
		}
		if r >= 'A' && r <= 'Z' {
			hasLetter = true
		}
	}
	return hasLetter
}

func nonEmptyLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
