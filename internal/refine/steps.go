package refine

import (
	"strings"

	"github.com/eurocv/eurocv/internal/resume"
)

type emptyWorkStep struct{}

// NewEmptyWork creates a step that removes work entries carrying no
// information at all. The date-range splitter can produce such husks
// around decorative date mentions.
func NewEmptyWork() Step {
	return &emptyWorkStep{}
}

func (s *emptyWorkStep) Name() string { return "empty_work" }

func (s *emptyWorkStep) Apply(r *resume.Resume) (Result, error) {
	initial := len(r.WorkExperience)
	kept := r.WorkExperience[:0]
	for _, exp := range r.WorkExperience {
		if exp.Position == "" && exp.Employer == "" && exp.Description == "" &&
			exp.StartDate == nil && exp.EndDate == nil && !exp.Current {
			continue
		}
		kept = append(kept, exp)
	}
	r.WorkExperience = kept

	return Result{Initial: initial, Dropped: initial - len(kept), Left: len(kept)}, nil
}

// languageAliases map native-language spellings to the canonical English
// name, so "Nederlands" and "Dutch" collapse into one entry.
var languageAliases = map[string]string{
	"nederlands": "Dutch",
	"engels":     "English",
	"duits":      "German",
	"frans":      "French",
	"spaans":     "Spanish",
	"italiaans":  "Italian",
}

type languageDedupStep struct{}

// NewLanguageDedup creates a step that merges duplicate language entries.
// The roster scan can match both the English and the Dutch name of the
// same language; the entry with the stronger claim (native, then higher
// CEFR) wins.
func NewLanguageDedup() Step {
	return &languageDedupStep{}
}

func (s *languageDedupStep) Name() string { return "language_dedup" }

func (s *languageDedupStep) Apply(r *resume.Resume) (Result, error) {
	initial := len(r.Languages)

	index := make(map[string]int)
	kept := make([]resume.Language, 0, initial)
	for _, lang := range r.Languages {
		canonical := canonicalLanguage(lang.Language)
		lang.Language = canonical

		at, dup := index[canonical]
		if !dup {
			index[canonical] = len(kept)
			kept = append(kept, lang)
			continue
		}
		if stronger(lang, kept[at]) {
			kept[at] = lang
		}
	}
	r.Languages = kept

	return Result{Initial: initial, Dropped: initial - len(kept), Left: len(kept)}, nil
}

func canonicalLanguage(name string) string {
	if canonical, ok := languageAliases[strings.ToLower(name)]; ok {
		return canonical
	}
	return name
}

func stronger(a, b resume.Language) bool {
	if a.IsNative != b.IsNative {
		return a.IsNative
	}
	return cefrRank(a.Listening) > cefrRank(b.Listening)
}

func cefrRank(level string) int {
	ranks := map[string]int{"A1": 1, "A2": 2, "B1": 3, "B2": 4, "C1": 5, "C2": 6}
	return ranks[strings.ToUpper(level)]
}

type whitespaceStep struct{}

// NewWhitespace creates a step that trims stray whitespace extraction
// left on string fields.
func NewWhitespace() Step {
	return &whitespaceStep{}
}

func (s *whitespaceStep) Name() string { return "whitespace" }

func (s *whitespaceStep) Apply(r *resume.Resume) (Result, error) {
	pi := &r.PersonalInfo
	for _, field := range []*string{
		&pi.FirstName, &pi.LastName, &pi.Email, &pi.Phone,
		&pi.City, &pi.Country, &pi.PostalCode,
	} {
		*field = strings.TrimSpace(*field)
	}

	for i := range r.WorkExperience {
		exp := &r.WorkExperience[i]
		exp.Position = strings.TrimSpace(exp.Position)
		exp.Employer = strings.TrimSpace(exp.Employer)
		exp.Description = strings.TrimSpace(exp.Description)
	}
	for i := range r.Education {
		edu := &r.Education[i]
		edu.Title = strings.TrimSpace(edu.Title)
		edu.Organization = strings.TrimSpace(edu.Organization)
		edu.Description = strings.TrimSpace(edu.Description)
	}
	r.Summary = strings.TrimSpace(r.Summary)

	n := len(r.WorkExperience)
	return Result{Initial: n, Left: n}, nil
}
