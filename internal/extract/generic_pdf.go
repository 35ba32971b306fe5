package extract

import (
	"fmt"

	"github.com/eurocv/eurocv/internal/rawtext"
	"github.com/eurocv/eurocv/internal/resume"
)

// GenericPDF is the fallback extractor for every PDF the layout-specific
// extractors decline.
type GenericPDF struct {
	producer *rawtext.Producer
}

func NewGenericPDF(producer *rawtext.Producer) *GenericPDF {
	return &GenericPDF{producer: producer}
}

func (e *GenericPDF) Name() string { return "generic-pdf" }

func (e *GenericPDF) CanHandle(path string) bool {
	return hasExtension(path, ".pdf")
}

func (e *GenericPDF) Extract(path string) (*resume.Resume, error) {
	doc, err := e.producer.Extract(path)
	if err != nil {
		return nil, fmt.Errorf("generic pdf extract: %w", err)
	}
	return parseResume(doc, e.Name()), nil
}
