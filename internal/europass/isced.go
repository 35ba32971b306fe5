package europass

import (
	"regexp"
	"strings"
)

// iscedLabels are the ISCED 2011 level names.
var iscedLabels = map[string]string{
	"0": "Early childhood education",
	"1": "Primary education",
	"2": "Lower secondary education",
	"3": "Upper secondary education",
	"4": "Post-secondary non-tertiary education",
	"5": "Short-cycle tertiary education",
	"6": "Bachelor or equivalent",
	"7": "Master or equivalent",
	"8": "Doctoral or equivalent",
}

// ISCEDLabel returns the label for an ISCED 2011 code.
func ISCEDLabel(code string) string {
	if label, ok := iscedLabels[code]; ok {
		return label
	}
	return "Level " + code
}

// Word-boundary matching keeps "ma" from firing inside field names like
// "Mathematics" or "Management".
var (
	doctoralRe   = regexp.MustCompile(`(?i)\b(phd|doctorate|doctoral|doctoraal)\b`)
	masterRe     = regexp.MustCompile(`(?i)\b(master|masters|msc|ma|mba|meng|llm|wo)\b`)
	bachelorRe   = regexp.MustCompile(`(?i)\b(bachelor|bachelors|bsc|ba|bs|beng|llb)\b`)
	shortCycleRe = regexp.MustCompile(`(?i)\b(hbo|associate)\b`)
	secondaryRe  = regexp.MustCompile(`(?i)\b(high school|secondary|diploma|havo|vwo|mbo)\b`)
)

// InferISCED guesses the ISCED 2011 level from a degree title. Checks run
// from highest to lowest; an HBO title that also names a Bachelor degree
// counts as level 6, not short-cycle. Returns nil when nothing matches.
func InferISCED(title string) *Code {
	if strings.TrimSpace(title) == "" {
		return nil
	}

	level := ""
	switch {
	case doctoralRe.MatchString(title):
		level = "8"
	case masterRe.MatchString(title):
		level = "7"
	case bachelorRe.MatchString(title):
		level = "6"
	case shortCycleRe.MatchString(title):
		level = "5"
	case secondaryRe.MatchString(title):
		level = "3"
	default:
		return nil
	}
	return &Code{Code: level, Label: ISCEDLabel(level)}
}
