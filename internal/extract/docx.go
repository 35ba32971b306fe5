package extract

import (
	"fmt"
	"strings"

	"github.com/eurocv/eurocv/internal/rawtext"
	"github.com/eurocv/eurocv/internal/resume"
)

// Docx handles Word documents. Word files carry an author in their core
// properties, which backs up the name heuristic when the text itself gives
// nothing.
type Docx struct {
	producer *rawtext.Producer
}

func NewDocx(producer *rawtext.Producer) *Docx {
	return &Docx{producer: producer}
}

func (e *Docx) Name() string { return "docx" }

func (e *Docx) CanHandle(path string) bool {
	return hasExtension(path, ".docx", ".doc")
}

func (e *Docx) Extract(path string) (*resume.Resume, error) {
	doc, err := e.producer.Extract(path)
	if err != nil {
		return nil, fmt.Errorf("docx extract: %w", err)
	}

	r := parseResume(doc, e.Name())

	// Metadata author only fills in when the text yielded no name: the
	// document author is often an HR agency, not the candidate.
	if r.PersonalInfo.FirstName == "" {
		if author, ok := doc.Properties["author"].(string); ok {
			parts := strings.Fields(author)
			if len(parts) >= 2 {
				r.PersonalInfo.FirstName = parts[0]
				r.PersonalInfo.LastName = strings.Join(parts[1:], " ")
			}
		}
	}
	return r, nil
}
