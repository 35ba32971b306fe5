package europass

import "strings"

// countryCodes maps lowercase country names to ISO 3166-1 alpha-2 codes.
// It covers Europe plus the countries that show up in resumes handled
// here; Dutch spellings are included because extraction may pass them
// through untranslated.
var countryCodes = map[string]string{
	"netherlands":    "NL",
	"the netherlands": "NL",
	"holland":        "NL",
	"nederland":      "NL",
	"germany":        "DE",
	"duitsland":      "DE",
	"belgium":        "BE",
	"belgië":         "BE",
	"belgie":         "BE",
	"france":         "FR",
	"frankrijk":      "FR",
	"united kingdom": "GB",
	"uk":             "GB",
	"great britain":  "GB",
	"england":        "GB",
	"united states":  "US",
	"usa":            "US",
	"spain":          "ES",
	"spanje":         "ES",
	"italy":          "IT",
	"italië":         "IT",
	"portugal":       "PT",
	"poland":         "PL",
	"sweden":         "SE",
	"denmark":        "DK",
	"norway":         "NO",
	"finland":        "FI",
	"iceland":        "IS",
	"austria":        "AT",
	"switzerland":    "CH",
	"ireland":        "IE",
	"greece":         "GR",
	"czech republic": "CZ",
	"czechia":        "CZ",
	"slovakia":       "SK",
	"slovenia":       "SI",
	"hungary":        "HU",
	"romania":        "RO",
	"bulgaria":       "BG",
	"croatia":        "HR",
	"serbia":         "RS",
	"estonia":        "EE",
	"latvia":         "LV",
	"lithuania":      "LT",
	"luxembourg":     "LU",
	"malta":          "MT",
	"cyprus":         "CY",
	"ukraine":        "UA",
	"turkey":         "TR",
	"russia":         "RU",
	"canada":         "CA",
	"australia":      "AU",
	"new zealand":    "NZ",
	"india":          "IN",
	"china":          "CN",
	"japan":          "JP",
	"brazil":         "BR",
	"mexico":         "MX",
	"south africa":   "ZA",
	"morocco":        "MA",
	"suriname":       "SR",
	"indonesia":      "ID",
}

// CountryCode resolves a country name to its ISO code. Names outside the
// table fall back to the first two characters uppercased, which is wrong
// for many countries but stable; callers carry the original name as the
// label so no information is lost.
func CountryCode(name string) string {
	if code, ok := countryCodes[strings.ToLower(strings.TrimSpace(name))]; ok {
		return code
	}
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < 2 {
		return strings.ToUpper(trimmed)
	}
	return strings.ToUpper(trimmed[:2])
}
