// Package convert orchestrates the full pipeline: extractor selection,
// heuristic extraction, Europass mapping, serialization and structural
// validation.
package convert

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/eurocv/eurocv/internal/europass"
	"github.com/eurocv/eurocv/internal/extract"
	"github.com/eurocv/eurocv/internal/logger"
	"github.com/eurocv/eurocv/internal/refine"
	"github.com/eurocv/eurocv/internal/resume"
	"github.com/eurocv/eurocv/internal/util"
	"github.com/eurocv/eurocv/internal/validate"
)

// Output format selectors.
const (
	FormatJSON = "json"
	FormatXML  = "xml"
	FormatBoth = "both"
)

// Options control one conversion.
type Options struct {
	Locale       string
	IncludePhoto bool
	// Format selects which serializations to produce: json, xml or both.
	Format string
	UseOCR bool
	// Validate runs the structural validator over the produced output.
	Validate bool
}

// Result is the conversion output. ValidationErrors is empty when
// validation passed or was disabled; it never makes the conversion fail.
type Result struct {
	Resume *resume.Resume
	JSON   []byte
	XML    string

	ValidationErrors []string
}

// Converter runs conversions with a fixed registry and logger.
type Converter struct {
	logger *zap.Logger
}

func New(logger *zap.Logger) *Converter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Converter{logger: logger}
}

// Convert runs the pipeline over one file. Hard errors are a missing
// file, an unsupported format and an unreadable container; extraction
// heuristics that find nothing still succeed with sparse output.
func (c *Converter) Convert(path string, opts Options) (*Result, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("file not found: %w", err)
	}
	if opts.Format == "" {
		opts.Format = FormatJSON
	}

	registry := extract.NewRegistry(opts.UseOCR, c.logger)
	extractor, err := registry.Select(path)
	if err != nil {
		return nil, err
	}

	r, err := extractor.Extract(path)
	if err != nil {
		return nil, fmt.Errorf("extract %q: %w", path, err)
	}

	log := logger.WithFields(c.logger, logger.DocumentFields(extractor.Name(), r.Metadata.Format)...)

	if err := refine.Run(refine.Default(), r, log); err != nil {
		return nil, fmt.Errorf("refine %q: %w", path, err)
	}

	log.Debug("extracted resume",
		zap.String("name", r.PersonalInfo.FirstName+" "+r.PersonalInfo.LastName),
		zap.String("summary", util.TruncateForLog(r.Summary, 120)),
	)

	cv := europass.Map(r, europass.Options{
		Locale:       opts.Locale,
		IncludePhoto: opts.IncludePhoto,
	})

	result := &Result{Resume: r}

	if opts.Format == FormatJSON || opts.Format == FormatBoth {
		result.JSON, err = europass.EncodeJSON(cv)
		if err != nil {
			return nil, err
		}
	}
	if opts.Format == FormatXML || opts.Format == FormatBoth {
		result.XML, err = europass.EncodeXML(cv)
		if err != nil {
			return nil, err
		}
	}

	if opts.Validate {
		if len(result.JSON) > 0 {
			if ok, errs := validate.JSON(result.JSON); !ok {
				result.ValidationErrors = append(result.ValidationErrors, errs...)
			}
		}
		if result.XML != "" {
			if ok, errs := validate.XML(result.XML); !ok {
				result.ValidationErrors = append(result.ValidationErrors, errs...)
			}
		}
		if len(result.ValidationErrors) > 0 {
			c.logger.Warn("structural validation found problems",
				zap.Int("count", len(result.ValidationErrors)),
			)
		}
	}

	return result, nil
}
