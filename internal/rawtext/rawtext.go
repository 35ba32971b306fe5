// Package rawtext turns PDF and DOCX files into plain text plus coarse
// document metadata. It knows nothing about resumes: the extract package
// interprets its output.
//
// PDF parsing is pure Go via pdfcpu (cross-reference table + content
// streams); DOCX is read straight from the ZIP container
// (word/document.xml, docProps/core.xml).
package rawtext

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Format identifies a supported container type.
type Format string

const (
	FormatPDF  Format = "PDF"
	FormatDocx Format = "DOCX"
)

// Document is the producer output for one file.
type Document struct {
	Path   string
	Format Format
	// Text is the concatenated plain text of all pages/paragraphs.
	Text string
	// Pages holds per-page text for PDF input; nil for DOCX.
	Pages []string
	// Properties carries whatever metadata the container exposed
	// (title, author, subject, page_count, producer). Extraction
	// failures leave keys absent, never error.
	Properties map[string]any
	// Quality is populated for PDF input only.
	Quality *Quality
}

// PageOCRFunc renders a page image to text. It is the OCR boundary: the
// producer calls it only for pages with no programmatic text and treats an
// empty result as "no text", never as an error.
type PageOCRFunc func(path string, pageNr int) string

// Producer extracts raw text from resume files.
type Producer struct {
	// UseOCR enables the OCR fallback for empty PDF pages.
	UseOCR bool
	// PageOCR implements the fallback. When nil, empty pages stay empty.
	PageOCR PageOCRFunc

	logger *zap.Logger
}

// NewProducer returns a producer logging through the given logger.
func NewProducer(logger *zap.Logger) *Producer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Producer{logger: logger}
}

// Detect returns the container format based on the file extension.
func Detect(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return FormatPDF, nil
	case ".docx", ".doc":
		return FormatDocx, nil
	default:
		return "", fmt.Errorf("unsupported format: %q", filepath.Ext(path))
	}
}

// Extract parses the file and returns its text and metadata.
func (p *Producer) Extract(path string) (*Document, error) {
	format, err := Detect(path)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("extracting raw text",
		zap.String("path", path),
		zap.String("format", string(format)),
	)

	switch format {
	case FormatPDF:
		return p.extractPDF(path)
	case FormatDocx:
		return p.extractDocx(path)
	default:
		return nil, fmt.Errorf("no parser for format: %s", format)
	}
}
