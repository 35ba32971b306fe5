package extract

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/eurocv/eurocv/internal/resume"
)

var emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

// phonePatterns are tried in order, most specific first. The generic
// pattern at the end matches almost anything digit-shaped, so the
// post-filter in extractPhone does the real work.
var phonePatterns = []*regexp.Regexp{
	// International with (0) trunk notation: +31 (0)6 12345678
	regexp.MustCompile(`\+\d{1,3}\s*\(0\)\s*\d{1,3}\s*\d{6,8}`),
	// International grouped pairs: +31 6 53 75 43 72
	regexp.MustCompile(`\+\d{1,3}\s+\d{1,2}\s+\d{2}\s+\d{2}\s+\d{2}\s+\d{2}`),
	// International standard: +31-6-12345678
	regexp.MustCompile(`\+\d{1,3}[-\s]?\d{1,3}[-\s]?\d{6,8}`),
	// Dutch mobile: 06-12345678
	regexp.MustCompile(`0\d[-\s]?\d{8}`),
	// Dutch landline with area code: (020) 1234567
	regexp.MustCompile(`\(?\d{2,4}\)?[-\s]?\d{6,7}`),
	// US: +1 (555) 123-4567
	regexp.MustCompile(`\+?1?\s*\(?\d{3}\)?[-\s]?\d{3}[-\s]?\d{4}`),
	// UK: +44 20 1234 5678
	regexp.MustCompile(`\+44\s*\d{2,4}\s*\d{4}\s*\d{4}`),
	// Generic international fallback
	regexp.MustCompile(`\+?\(?[0-9]{1,4}\)?[-\s.]?\(?[0-9]{1,4}\)?[-\s.]?[0-9]{1,4}[-\s.]?[0-9]{1,9}`),
}

// phoneSearchWindow limits phone matching to the document header, where
// contact details live; matching the whole document drags in dates.
const phoneSearchWindow = 2000

var nonDigitRe = regexp.MustCompile(`\D`)

// extractPersonalInfo pulls contact details and the candidate name out of
// the document's leading text.
func extractPersonalInfo(text string) resume.PersonalInfo {
	info := resume.PersonalInfo{}

	if m := emailRe.FindString(text); m != "" {
		info.Email = m
	}

	info.Phone = extractPhone(text)
	info.FirstName, info.LastName = extractName(text)

	loc := extractLocation(text)
	info.City = loc.city
	info.Country = loc.country
	info.PostalCode = loc.postalCode

	return info
}

// extractPhone applies the locale patterns to the header window and rejects
// matches that are bare years or implausibly short/long once punctuation is
// stripped.
func extractPhone(text string) string {
	window := text
	if len(window) > phoneSearchWindow {
		window = window[:phoneSearchWindow]
	}

	for _, re := range phonePatterns {
		for _, m := range re.FindAllString(window, -1) {
			digits := nonDigitRe.ReplaceAllString(m, "")
			if len(digits) == 4 {
				// A bare year, not a phone number.
				continue
			}
			if len(digits) >= 6 && len(digits) <= 15 {
				return strings.TrimSpace(m)
			}
		}
	}
	return ""
}

// Scoring weights for name candidates. Kept as named constants so the
// heuristic stays testable and tunable.
const (
	nameScoreTwoWords   = 10 // "First Last" beats "First Middle Last"
	nameScoreThreeWords = 5
	nameScoreWordLength = 5 // every word 3-15 chars
	nameScoreShortLine  = 3 // line under 30 chars
	nameScoreNameBand   = 20 // lines 20-25, where names sit in export layouts
	nameScoreMidSection = 4  // lines 15+
	nameScoreSuffix     = 2  // common given-name endings
	nameScoreCredential = 5  // "Name, MSc" style lines
)

const nameScanLines = 30

// nameSkipPatterns mark lines that cannot be a person name: URLs, emails,
// years, parenthetical text and title separators.
var nameSkipPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)www\.`),
	regexp.MustCompile(`(?i)http`),
	regexp.MustCompile(`(?i)\.com|\.nl|\.org`),
	regexp.MustCompile(`(?i)linkedin`),
	regexp.MustCompile(`\(.*\)`),
	regexp.MustCompile(`@`),
	regexp.MustCompile(`\d{4}`),
	regexp.MustCompile(`(?i)page\s+\d+`),
	regexp.MustCompile(`&`),
	regexp.MustCompile(`\|`),
}

var nameSidebarHeadings = map[string]bool{
	"contact": true, "top skills": true, "skills": true, "languages": true,
	"certifications": true, "certificates": true, "summary": true,
	"profile": true, "experience": true, "education": true,
	"expertise": true, "competencies": true, "about": true, "honors": true,
	"awards": true, "other languages": true, "spoken english": true,
	"native or": true, "limited working": true,
}

var givenNameSuffixes = []string{"el", "an", "en", "on", "er", "le", "ie"}

var credentialTokens = []string{"msc", "bsc", "phd", "ma", "ba", "mba"}

type nameCandidate struct {
	score int
	words []string
	line  int
}

// extractName scans the leading lines for the best-scoring Title-Case
// candidate, falling back to a "Name, MSc" comma format when nothing
// qualifies. Both empty returns mean no name was found.
func extractName(text string) (string, string) {
	lines := strings.Split(text, "\n")
	if len(lines) > nameScanLines {
		lines = lines[:nameScanLines]
	}

	var candidates []nameCandidate
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || nameSidebarHeadings[strings.ToLower(line)] {
			continue
		}
		if matchesAny(nameSkipPatterns, line) {
			continue
		}

		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 3 || !allTitleCaseAlpha(words) {
			continue
		}

		candidates = append(candidates, nameCandidate{
			score: scoreNameCandidate(words, line, i),
			words: words,
			line:  i,
		})
	}

	if len(candidates) == 0 {
		candidates = commaCredentialCandidates(lines)
	}
	if len(candidates) == 0 {
		return "", ""
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.score > best.score {
			best = c
		}
	}
	return best.words[0], strings.Join(best.words[1:], " ")
}

func scoreNameCandidate(words []string, line string, lineNr int) int {
	score := 0

	switch len(words) {
	case 2:
		score += nameScoreTwoWords
	case 3:
		score += nameScoreThreeWords
	}

	lengthsOK := true
	for _, w := range words {
		if len(w) < 3 || len(w) > 15 {
			lengthsOK = false
			break
		}
	}
	if lengthsOK {
		score += nameScoreWordLength
	}

	if len(line) < 30 {
		score += nameScoreShortLine
	}

	switch {
	case lineNr >= 20 && lineNr <= 25:
		score += nameScoreNameBand
	case lineNr >= 15:
		score += nameScoreMidSection
	}

	for _, suffix := range givenNameSuffixes {
		if strings.HasSuffix(strings.ToLower(words[0]), suffix) {
			score += nameScoreSuffix
			break
		}
	}

	lower := strings.ToLower(line)
	if strings.Contains(line, ",") {
		for _, cred := range credentialTokens {
			if strings.Contains(lower, cred) {
				score += nameScoreCredential
				break
			}
		}
	}

	return score
}

// commaCredentialCandidates recognizes "Jane Janssen, MSc" style lines when
// the Title-Case scan found nothing.
func commaCredentialCandidates(lines []string) []nameCandidate {
	var candidates []nameCandidate
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if !strings.Contains(line, ",") {
			continue
		}
		namePart := strings.TrimSpace(strings.SplitN(line, ",", 2)[0])
		words := strings.Fields(namePart)
		if len(words) < 2 || len(words) > 3 {
			continue
		}
		upper := true
		for _, w := range words {
			r := []rune(w)
			if len(r) == 0 || !unicode.IsUpper(r[0]) {
				upper = false
				break
			}
		}
		if upper {
			candidates = append(candidates, nameCandidate{score: nameScoreTwoWords, words: words, line: i})
		}
	}
	return candidates
}

func matchesAny(patterns []*regexp.Regexp, s string) bool {
	for _, re := range patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

// allTitleCaseAlpha reports whether every word starts uppercase and is
// alphabetic once hyphens and apostrophes are removed.
func allTitleCaseAlpha(words []string) bool {
	for _, w := range words {
		stripped := strings.NewReplacer("-", "", "'", "").Replace(w)
		if stripped == "" {
			return false
		}
		runes := []rune(w)
		if !unicode.IsUpper(runes[0]) {
			return false
		}
		for _, r := range stripped {
			if !unicode.IsLetter(r) {
				return false
			}
		}
	}
	return true
}
