// Package extract locates and parses resume data out of loosely structured
// free text. It is best-effort pattern matching: a heuristic that finds
// nothing yields empty fields, never an error. The only hard failures are a
// missing file and an unsupported file type.
package extract

import (
	"errors"
	"fmt"

	"github.com/eurocv/eurocv/internal/rawtext"
	"github.com/eurocv/eurocv/internal/resume"
	"go.uber.org/zap"
)

// ErrNoExtractor is returned when no registered extractor accepts the file.
var ErrNoExtractor = errors.New("no suitable extractor found")

// Extractor turns one file into a Resume.
type Extractor interface {
	Name() string

	// CanHandle reports whether this extractor accepts the file. It may
	// inspect content, not just the extension.
	CanHandle(path string) bool

	Extract(path string) (*resume.Resume, error)
}

// Registry holds extractors in priority order: layout-specific extractors
// come before generic fallbacks, because a generic extractor accepts any
// file of its container type. The registry is built once at startup and is
// read-only afterwards.
type Registry struct {
	extractors []Extractor
	logger     *zap.Logger
}

// NewRegistry returns the default priority-ordered registry.
func NewRegistry(useOCR bool, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}

	producer := rawtext.NewProducer(logger)
	producer.UseOCR = useOCR

	return &Registry{
		extractors: []Extractor{
			NewLinkedInPDF(producer),
			NewDocx(producer),
			NewGenericPDF(producer),
		},
		logger: logger,
	}
}

// Select returns the first extractor whose CanHandle accepts the file.
func (r *Registry) Select(path string) (Extractor, error) {
	for _, e := range r.extractors {
		if e.CanHandle(path) {
			r.logger.Info("selected extractor",
				zap.String("extractor", e.Name()),
				zap.String("path", path),
			)
			return e, nil
		}
	}

	return nil, fmt.Errorf("%w for %q (supported formats: PDF, DOCX)", ErrNoExtractor, path)
}
