package extract

import (
	"regexp"
	"strings"

	"github.com/eurocv/eurocv/internal/resume"
)

// knownLanguages is the roster scanned for in the languages section:
// English names plus the Dutch names a Dutch-written resume uses. The
// refine step collapses both spellings of one language afterwards.
var knownLanguages = []string{
	"English", "Dutch", "German", "French", "Spanish", "Italian",
	"Portuguese", "Chinese", "Japanese", "Russian", "Arabic",
	"Nederlands", "Engels", "Duits", "Frans", "Spaans", "Italiaans",
}

var cefrRe = regexp.MustCompile(`\b([A-C][1-2])\b`)

var nativeKeywords = []string{
	"native", "moedertaal", "mother tongue", "bilingual", "tweetalig",
}

// proficiencyKeywords maps prose proficiency descriptions to CEFR
// levels, checked in order so native/fluent win over weaker matches.
var proficiencyKeywords = []struct {
	keyword string
	level   string
}{
	{"native", "C2"}, {"moedertaal", "C2"}, {"mother tongue", "C2"},
	{"bilingual", "C2"}, {"tweetalig", "C2"},
	{"fluent", "C2"}, {"vloeiend", "C2"},
	{"excellent", "C2"}, {"uitstekend", "C2"},
	{"advanced", "C1"}, {"gevorderd", "C1"}, {"proficient", "C1"},
	{"intermediate", "B1"}, {"good", "B1"}, {"goed", "B1"},
	{"conversational", "B1"},
	{"basic", "A2"}, {"elementary", "A2"}, {"limited", "A2"},
	{"beperkt", "A2"},
	{"beginner", "A1"},
}

const defaultCEFRLevel = "B1"

// extractLanguages scans for known language names and infers a CEFR
// level from the text around the match. The context is the line the
// language sits on: a wider window would let "Native" from an adjacent
// entry bleed into this one. A language listed without any level gets
// B1.
func extractLanguages(text string) []resume.Language {
	lower := strings.ToLower(text)
	var languages []resume.Language

	for _, name := range knownLanguages {
		pos := wordIndex(lower, strings.ToLower(name))
		if pos < 0 {
			continue
		}

		lang := resume.Language{Language: name}
		line := contextLine(text, pos)
		context := strings.ToLower(line)

		if containsWordAny(context, nativeKeywords) {
			lang.IsNative = true
			setAllLevels(&lang, "C2")
			languages = append(languages, lang)
			continue
		}

		if m := cefrRe.FindStringSubmatch(line); m != nil {
			setAllLevels(&lang, m[1])
			languages = append(languages, lang)
			continue
		}

		level := defaultCEFRLevel
		for _, pk := range proficiencyKeywords {
			if containsWord(context, pk.keyword) {
				level = pk.level
				break
			}
		}
		setAllLevels(&lang, level)
		languages = append(languages, lang)
	}

	return languages
}

// contextLine returns the full line containing byte offset pos.
func contextLine(text string, pos int) string {
	start := strings.LastIndexByte(text[:pos], '\n') + 1
	end := strings.IndexByte(text[pos:], '\n')
	if end < 0 {
		return text[start:]
	}
	return text[start : pos+end]
}

func setAllLevels(lang *resume.Language, level string) {
	lang.Listening = level
	lang.Reading = level
	lang.Speaking = level
	lang.Writing = level
}

// wordIndex finds needle in haystack at a word boundary, or -1.
func wordIndex(haystack, needle string) int {
	from := 0
	for {
		i := strings.Index(haystack[from:], needle)
		if i < 0 {
			return -1
		}
		pos := from + i
		if boundaryBefore(haystack, pos) && boundaryAfter(haystack, pos+len(needle)) {
			return pos
		}
		from = pos + 1
	}
}

func boundaryBefore(s string, pos int) bool {
	return pos == 0 || !isWordByte(s[pos-1])
}

func boundaryAfter(s string, pos int) bool {
	return pos >= len(s) || !isWordByte(s[pos])
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '_'
}

func containsWord(s, word string) bool {
	return wordIndex(s, word) >= 0
}

func containsWordAny(s string, words []string) bool {
	for _, w := range words {
		if containsWord(s, w) {
			return true
		}
	}
	return false
}

