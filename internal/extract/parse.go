package extract

import (
	"regexp"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/eurocv/eurocv/internal/rawtext"
	"github.com/eurocv/eurocv/internal/resume"
)

// workInSidebarRe detects job entries that column layouts push into the
// languages section: two uppercase lines followed by a date range.
var workInSidebarRe = regexp.MustCompile(`[A-Z\s]{10,}\n[A-Z\s]{5,}\n(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Sept|Oct|Nov|Dec|Okt)\s+\d{4}\s*[-–—]`)

// parseResume runs the full heuristic pipeline over the producer output.
// Every stage is best-effort: a section that never matches simply leaves
// its slice empty.
func parseResume(doc *rawtext.Document, extractorName string) *resume.Resume {
	text := doc.Text
	r := &resume.Resume{
		PersonalInfo: extractPersonalInfo(text),
		RawText:      text,
	}

	sections := SplitSections(text)

	if work, ok := sections[SectionWork]; ok {
		r.WorkExperience = extractWorkExperience(work)
	}
	if langs, ok := sections[SectionLanguages]; ok && workInSidebarRe.MatchString(langs) {
		// Column layout spilled work entries into the sidebar.
		r.WorkExperience = append(r.WorkExperience, extractWorkExperience(langs)...)
	}

	if edu, ok := sections[SectionEducation]; ok {
		r.Education = extractEducation(edu)
	}

	if langs, ok := sections[SectionLanguages]; ok {
		r.Languages = extractLanguages(langs)
	} else {
		// Sidebar layouts often hide the languages header from the
		// splitter; scan the whole document instead.
		r.Languages = extractLanguages(text)
	}

	if skills, ok := sections[SectionSkills]; ok {
		r.Skills = extractSkills(skills)
	}
	if certs, ok := sections[SectionCertifications]; ok {
		r.Certifications = extractCertifications(certs)
	}
	if summary, ok := sections[SectionSummary]; ok {
		r.Summary = summary
	}

	r.Metadata = documentProperties(doc, extractorName)
	return r
}

// documentProperties decodes the producer's loose metadata map into the
// typed form carried on the resume.
func documentProperties(doc *rawtext.Document, extractorName string) resume.DocumentProperties {
	var props resume.DocumentProperties
	if err := mapstructure.Decode(doc.Properties, &props); err == nil {
		props.Format = string(doc.Format)
		props.Extractor = extractorName
	} else {
		props = resume.DocumentProperties{
			Format:    string(doc.Format),
			Extractor: extractorName,
		}
	}
	return props
}

func hasExtension(path string, exts ...string) bool {
	lower := strings.ToLower(path)
	for _, ext := range exts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
