package extract

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/eurocv/eurocv/internal/resume"
)

var (
	skillDelimRe     = regexp.MustCompile(`[,•\n·|]`)
	skillWideDelimRe = regexp.MustCompile(`\s{2,}|\n`)
	numericOnlyRe    = regexp.MustCompile(`^[\d\s\-/]+$`)
	pageNumberRe     = regexp.MustCompile(`(?i)^page\s+\d+$`)
	monthYearTokenRe = regexp.MustCompile(`(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\s+\d{4}`)
	skillSectionRe   = regexp.MustCompile(`(?i)^(vaardigheden|skills|competenties|ervaring|experience|opleiding|education|talen|languages|certificaten|certifications?)$`)
)

// skillNoiseWords are resume fluff that surrounds skill lists but is
// not itself a skill.
var skillNoiseWords = map[string]bool{
	"skills": true, "experience": true, "proficient": true,
	"knowledge": true, "familiar": true, "and": true, "or": true,
	"including": true, "such as": true, "etc": true, "years": true,
	"page": true, "vaardigheden": true, "competenties": true,
	"expertise": true, "competencies": true, "technical": true,
	"tools": true, "technologies": true, "software": true,
	"programming": true, "languages": true, "talen": true,
	"strong": true, "working": true, "understanding": true,
}

var skillSentenceMarkers = []string{
	"responsible for", "working with", "experience with",
	"knowledge of", "verantwoordelijk voor", "ervaring met",
}

const (
	skillMinLen   = 2
	skillMaxLen   = 80
	skillMaxWords = 10
)

// extractSkills splits the skills section on list delimiters and keeps
// items that survive the noise filters. Duplicates are collapsed on a
// normalized form so "CI/CD" and "ci cd" count once.
func extractSkills(text string) []resume.Skill {
	items := skillDelimRe.Split(text, -1)
	if len(items) < 3 {
		// Column layouts separate skills with runs of spaces instead.
		items = skillWideDelimRe.Split(text, -1)
	}

	seen := make(map[string]bool)
	var skills []resume.Skill
	for _, item := range items {
		item = strings.TrimSpace(item)
		if !isSkillItem(item) {
			continue
		}
		key := normalizeSkill(item)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		skills = append(skills, resume.Skill{Name: item})
	}
	return skills
}

func isSkillItem(item string) bool {
	if len(item) < skillMinLen || len(item) > skillMaxLen {
		return false
	}
	if numericOnlyRe.MatchString(item) || pageNumberRe.MatchString(item) {
		return false
	}
	if yearRangeRe.MatchString(item) || monthYearTokenRe.MatchString(item) {
		return false
	}
	lower := strings.ToLower(item)
	if skillNoiseWords[lower] || skillSectionRe.MatchString(item) {
		return false
	}
	if len(strings.Fields(item)) > skillMaxWords {
		return false
	}
	for _, marker := range skillSentenceMarkers {
		if strings.Contains(lower, marker) {
			return false
		}
	}
	if digitRatio(item) > 0.5 {
		return false
	}
	return true
}

// normalizeSkill produces the dedup key: NFKC-folded, lowercased, with
// everything but letters and digits stripped.
func normalizeSkill(item string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(norm.NFKC.String(item)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func digitRatio(s string) float64 {
	if s == "" {
		return 0
	}
	digits := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	return float64(digits) / float64(len([]rune(s)))
}
