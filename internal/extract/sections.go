package extract

import (
	"regexp"
	"sort"
	"strings"
)

// Canonical section keys produced by the splitter.
const (
	SectionWork           = "work"
	SectionEducation      = "education"
	SectionSkills         = "skills"
	SectionLanguages      = "languages"
	SectionCertifications = "certifications"
	SectionSummary        = "summary"
	SectionContact        = "contact"
)

// sectionHeaders maps each canonical key to its recognized header keywords,
// English and Dutch.
var sectionHeaders = map[string][]string{
	SectionWork: {
		"work experience", "professional experience", "employment history",
		"work history", "employment", "experience", "career",
		"ervaring", "werkervaring",
	},
	SectionEducation: {
		"education", "academic background", "academic", "qualifications",
		"degrees", "studies", "opleiding", "opleidingen", "onderwijs",
	},
	SectionSkills: {
		"skills", "technical skills", "top skills", "competencies",
		"expertise", "vaardigheden", "competenties", "software kennis",
	},
	SectionLanguages: {
		"languages", "language skills", "talen",
	},
	SectionCertifications: {
		"certifications", "certificates", "licenses", "certificaten",
		"training en certificering",
	},
	SectionSummary: {
		"summary", "profile", "about", "samenvatting", "profiel",
	},
	SectionContact: {
		"contact", "contactgegevens",
	},
}

// sidebarSections interleave with the work section in two-column layouts:
// their headers must not terminate the work section's content. This is a
// deliberate special case for sidebar resume designs.
var sidebarSections = map[string]bool{
	SectionLanguages:      true,
	SectionCertifications: true,
	SectionContact:        true,
}

var sectionPatterns = buildSectionPatterns()

type sectionPattern struct {
	key string
	re  *regexp.Regexp
}

// buildSectionPatterns anchors every keyword to a full line, optionally
// followed by a colon, so a keyword inside prose never starts a section.
func buildSectionPatterns() []sectionPattern {
	patterns := make([]sectionPattern, 0, len(sectionHeaders))
	for key, keywords := range sectionHeaders {
		quoted := make([]string, len(keywords))
		for i, kw := range keywords {
			quoted[i] = regexp.QuoteMeta(kw)
		}
		re := regexp.MustCompile(`(?im)^[ \t]*(` + strings.Join(quoted, "|") + `)[ \t]*:?[ \t]*$`)
		patterns = append(patterns, sectionPattern{key: key, re: re})
	}
	sort.Slice(patterns, func(i, j int) bool { return patterns[i].key < patterns[j].key })
	return patterns
}

type headerPos struct {
	start  int
	end    int // offset just past the matched header text
	key    string
	header string
}

// SplitSections segments raw text into semantic zones keyed by canonical
// section name. A section whose header never appears is absent from the
// result; callers treat absence as "no data".
func SplitSections(text string) map[string]string {
	var positions []headerPos
	seen := make(map[string]bool)

	for _, sp := range sectionPatterns {
		loc := sp.re.FindStringIndex(text)
		if loc == nil || seen[sp.key] {
			continue
		}
		seen[sp.key] = true
		positions = append(positions, headerPos{
			start:  loc[0],
			end:    loc[1],
			key:    sp.key,
			header: text[loc[0]:loc[1]],
		})
	}

	sort.Slice(positions, func(i, j int) bool { return positions[i].start < positions[j].start })

	sections := make(map[string]string, len(positions))
	for i, pos := range positions {
		end := len(text)
		if pos.key == SectionWork {
			// Skip sidebar headers so a two-column layout does not
			// truncate the work history at the first sidebar block.
			for j := i + 1; j < len(positions); j++ {
				if !sidebarSections[positions[j].key] {
					end = positions[j].start
					break
				}
			}
		} else if i+1 < len(positions) {
			end = positions[i+1].start
		}

		sections[pos.key] = strings.TrimSpace(text[pos.end:end])
	}

	return sections
}
