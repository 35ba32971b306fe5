package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/eurocv/eurocv/internal/resume"
)

var certKeywords = []string{
	"certified", "certification", "certificate", "foundation",
	"professional", "aws", "azure", "microsoft", "google", "oracle",
	"vertrouwenspersoon", "change", "management", "agile", "scrum",
	"coach", "consultant", "specialist", "diploma", "license",
	"training", "course", "cursus", "opleiding",
}

var certPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b[A-Z]{2,6}\b`),            // acronyms: ISO, ITIL, PMP
	regexp.MustCompile(`\b[A-Z][a-z]+\s+v?\d+`),     // name with version
	regexp.MustCompile(`\b[A-Z]{2,}\s*\d{3,5}\b`),   // ISO 9001, ISO 27001
	regexp.MustCompile(`\b[A-Z][a-z]+\s+[A-Z][a-z]+\s+[A-Z][a-z]+`),
}

var (
	certSkipRe     = regexp.MustCompile(`(?i)^page\s+\d+|^certifications?$|^licenses?$|^certificaten$`)
	credentialIDRe = regexp.MustCompile(`(?i)#\d+|ID:\s*\w+|Credential:\s*\w+`)
)

// extractCertifications keeps lines that look like certifications:
// known vendor or credential keywords, acronym/version patterns,
// multi-word capitalized names, or an explicit credential ID.
func extractCertifications(text string) []resume.Certification {
	var certs []resume.Certification
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) < 5 || certSkipRe.MatchString(line) {
			continue
		}
		if !looksLikeCertification(line) {
			continue
		}

		cert := resume.Certification{Name: line}
		if m := yearRe.FindString(line); m != "" {
			year, _ := strconv.Atoi(m)
			cert.Date = resume.YearOnly(year)
		}
		certs = append(certs, cert)
	}
	return certs
}

func looksLikeCertification(line string) bool {
	if containsAny(strings.ToLower(line), certKeywords) {
		return true
	}
	for _, re := range certPatterns {
		if re.MatchString(line) {
			return true
		}
	}
	if words := strings.Fields(line); len(words) >= 2 && len(line) > 10 {
		first := line[0]
		if first >= 'A' && first <= 'Z' && !isUpperLine(line) {
			return true
		}
	}
	return credentialIDRe.MatchString(line)
}
