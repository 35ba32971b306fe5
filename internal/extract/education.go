package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/eurocv/eurocv/internal/resume"
)

var (
	yearRangeRe = regexp.MustCompile(`(\d{4})\s*[-–—]\s*(\d{4})`)
	// graduatedRe covers "afgestudeerd in 2016" and "graduated 2016".
	graduatedRe = regexp.MustCompile(`(?i)(?:afgestudeerd|graduated)(?:\s+in)?\s+(\d{4})`)

	degreePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(Bachelor|Master|Doctor|PhD|Doctorate)\s+(?:of\s+)?(?:Science|Arts|Engineering|Business|Laws)?\s*(?:in\s+)?(.+)`),
		regexp.MustCompile(`(?i)(BSc|MSc|MBA|PhD|MA|BA|BEng|MEng|LLB|LLM)\s+(?:in\s+)?(.*)`),
		regexp.MustCompile(`(?i)(HBO|WO|MBO|Doctoraal)\s+(.+)`),
	}

	gradePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(summa cum laude|magna cum laude|cum laude)`),
		regexp.MustCompile(`(?i)(?:with|met)\s+(honors?|onderscheiding)`),
		regexp.MustCompile(`(?i)GPA[:\s]*([\d.]+)`),
		regexp.MustCompile(`(?i)(?:Grade|Cijfer)[:\s]*([\d.]+)`),
	}
)

var institutionKeywords = []string{
	"universiteit", "university", "hogeschool", "college",
	"school", "instituut", "institute",
}

var degreeKeywords = []string{
	"bachelor", "master", "phd", "doctorate", "msc", "bsc", "mba",
	"ma", "ba", "hbo", "wo", "mbo", "doctoraal",
	"sociologie", "hrm", "informatica", "computer science",
}

// gradOnlyProgramYears is assumed when only a graduation year is known.
const gradOnlyProgramYears = 4

// extractEducation parses the education section. A year range (or a
// graduation-year phrase) opens an entry; the lines that follow fill in
// the institution, degree title and grade until the next range.
func extractEducation(text string) []resume.Education {
	var list []resume.Education
	var cur *resume.Education

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if start, end, ok := entryYears(line); ok {
			if cur != nil {
				list = append(list, *cur)
			}
			cur = &resume.Education{
				// Academic year convention: programs run September
				// through the end of June.
				StartDate: &resume.Date{Year: start, Month: 9, Day: 1},
				EndDate:   &resume.Date{Year: end, Month: 6, Day: 30},
			}
			continue
		}
		if cur == nil {
			continue
		}

		if cur.Description == "" {
			for _, re := range gradePatterns {
				if m := re.FindString(line); m != "" {
					cur.Description = m
					break
				}
			}
		}

		if cur.Organization == "" && containsAny(strings.ToLower(line), institutionKeywords) {
			cur.Organization = line
			continue
		}

		if cur.Title == "" {
			cur.Title = degreeTitle(line)
		}
	}
	if cur != nil {
		list = append(list, *cur)
	}

	if len(list) == 0 {
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			if len(trimmed) > fallbackDescLimit {
				trimmed = trimmed[:fallbackDescLimit]
			}
			list = append(list, resume.Education{Description: trimmed})
		}
	}
	return list
}

func entryYears(line string) (start, end int, ok bool) {
	if m := yearRangeRe.FindStringSubmatch(line); m != nil {
		start, _ = strconv.Atoi(m[1])
		end, _ = strconv.Atoi(m[2])
		return start, end, true
	}
	if m := graduatedRe.FindStringSubmatch(line); m != nil {
		end, _ = strconv.Atoi(m[1])
		return end - gradOnlyProgramYears, end, true
	}
	return 0, 0, false
}

// degreeTitle recognizes a degree line, combining degree and field when
// both are present ("MSc in Computer Science"). Returns "" for lines
// that do not look like a degree.
func degreeTitle(line string) string {
	for _, re := range degreePatterns {
		m := re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		field := strings.TrimSpace(m[2])
		if field != "" {
			return fmt.Sprintf("%s in %s", m[1], field)
		}
		return m[1]
	}
	if containsAny(strings.ToLower(line), degreeKeywords) || isUpperLine(line) {
		return line
	}
	return ""
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
