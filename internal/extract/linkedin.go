package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/eurocv/eurocv/internal/rawtext"
	"github.com/eurocv/eurocv/internal/resume"
)

// linkedInMarkers identify a LinkedIn profile export. The profile URL
// appears in the contact sidebar of every export; the page footer is the
// backup signal.
var (
	linkedInURLRe    = regexp.MustCompile(`(?i)linkedin\.com/in/`)
	linkedInFooterRe = regexp.MustCompile(`(?i)^page\s+\d+\s+of\s+\d+\s*$`)
	pageFooterLineRe = regexp.MustCompile(`(?im)^[ \t]*page\s+\d+\s+of\s+\d+[ \t]*$`)
)

// LinkedInPDF handles PDF exports of LinkedIn profiles. It runs the same
// heuristic pipeline as the generic extractor but can rely on the export's
// fixed layout: the name is the first line of the main column and page
// footers are known noise.
type LinkedInPDF struct {
	producer *rawtext.Producer
}

func NewLinkedInPDF(producer *rawtext.Producer) *LinkedInPDF {
	return &LinkedInPDF{producer: producer}
}

func (e *LinkedInPDF) Name() string { return "linkedin-pdf" }

// CanHandle sniffs the first page for a LinkedIn export signature.
func (e *LinkedInPDF) CanHandle(path string) bool {
	if !hasExtension(path, ".pdf") {
		return false
	}
	producer, firstPage, err := e.producer.Sniff(path)
	if err != nil {
		return false
	}
	if linkedInURLRe.MatchString(firstPage) {
		return true
	}
	if strings.Contains(strings.ToLower(producer), "linkedin") {
		return true
	}
	for _, line := range strings.Split(firstPage, "\n") {
		if linkedInFooterRe.MatchString(strings.TrimSpace(line)) {
			return true
		}
	}
	return false
}

func (e *LinkedInPDF) Extract(path string) (*resume.Resume, error) {
	doc, err := e.producer.Extract(path)
	if err != nil {
		return nil, fmt.Errorf("linkedin pdf extract: %w", err)
	}

	doc.Text = pageFooterLineRe.ReplaceAllString(doc.Text, "")
	r := parseResume(doc, e.Name())

	if r.PersonalInfo.FirstName == "" {
		first, last := linkedInName(doc.Text)
		r.PersonalInfo.FirstName = first
		r.PersonalInfo.LastName = last
	}
	return r, nil
}

// linkedInName takes the first plausible line of the export as the name.
// Exports open with the profile name above the headline.
func linkedInName(text string) (first, last string) {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.Contains(line, "@") || linkedInURLRe.MatchString(line) {
			continue
		}
		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 4 || len(line) > 40 {
			continue
		}
		return words[0], strings.Join(words[1:], " ")
	}
	return "", ""
}
