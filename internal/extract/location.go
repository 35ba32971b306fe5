package extract

import (
	"regexp"
	"sort"
	"strings"
)

type location struct {
	city       string
	country    string
	postalCode string
}

// dutchAddressRe matches the Dutch address idiom "4702 GK Roosendaal
// (Nederland)": postal code, city, country in parentheses.
var dutchAddressRe = regexp.MustCompile(`(\d{4})\s*([A-Z]{2})\s+([A-Z][a-zë]+(?: [A-Z][a-zë]+)*)\s*\(([^)]+)\)`)

var areaRe = regexp.MustCompile(`(?i)([\p{L} ]+?)\s+(?:Area|Region)\b|(?i:\bGreater\s+([\p{L} ]+))`)

var remoteRe = regexp.MustCompile(`(?i)Remote\s*[-–]\s*([\p{L} ]+)`)

// dutchCountryNames translates the country names that appear in Dutch
// resumes to their English canonical form.
var dutchCountryNames = map[string]string{
	"nederland":   "Netherlands",
	"netherlands": "Netherlands",
	"duitsland":   "Germany",
	"belgië":      "Belgium",
	"belgie":      "Belgium",
	"frankrijk":   "France",
	"spanje":      "Spain",
	"italië":      "Italy",
}

// countryNames is the roster used for generic "City, Country" splitting.
var countryNames = []string{
	"Netherlands", "Holland", "Germany", "Belgium", "France",
	"United Kingdom", "UK", "United States", "USA", "Spain", "Italy",
	"Portugal", "Poland", "Sweden", "Denmark", "Norway", "Finland",
	"Austria", "Switzerland", "Ireland", "Canada", "Australia",
}

// majorCities resolves a bare city mention to its country.
var majorCities = map[string]string{
	"Amsterdam": "Netherlands", "Rotterdam": "Netherlands",
	"Den Haag": "Netherlands", "Utrecht": "Netherlands",
	"Eindhoven": "Netherlands", "Groningen": "Netherlands",
	"Tilburg": "Netherlands", "Almere": "Netherlands",
	"Breda": "Netherlands", "Nijmegen": "Netherlands",
	"Apeldoorn": "Netherlands", "Haarlem": "Netherlands",
	"Arnhem": "Netherlands", "Enschede": "Netherlands",
	"Amersfoort": "Netherlands", "Zwolle": "Netherlands",
	"Leiden": "Netherlands", "Maastricht": "Netherlands",
	"London": "United Kingdom", "Berlin": "Germany", "Paris": "France",
	"Brussels": "Belgium", "New York": "USA", "San Francisco": "USA",
	"Munich": "Germany", "Barcelona": "Spain", "Madrid": "Spain",
	"Dublin": "Ireland", "Vienna": "Austria", "Zurich": "Switzerland",
}

const locationScanLines = 50

// majorCityNames is the sorted scan order for the bare-city fallback, so
// a line naming two cities always resolves the same way.
var majorCityNames = sortedCityNames()

func sortedCityNames() []string {
	names := make([]string, 0, len(majorCities))
	for city := range majorCities {
		names = append(names, city)
	}
	sort.Strings(names)
	return names
}

// extractLocation finds city/country in the document header. Patterns are
// tried from most to least specific; the first hit wins.
func extractLocation(text string) location {
	if m := dutchAddressRe.FindStringSubmatch(text); m != nil {
		return location{
			postalCode: m[1] + " " + m[2],
			city:       m[3],
			country:    translateCountry(m[4]),
		}
	}

	lines := strings.Split(text, "\n")
	if len(lines) > locationScanLines {
		lines = lines[:locationScanLines]
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.Contains(strings.ToLower(line), "http") || strings.Contains(line, "@") {
			continue
		}

		if m := areaRe.FindStringSubmatch(line); m != nil {
			city := strings.TrimSpace(m[1])
			if city == "" {
				city = strings.TrimSpace(m[2])
			}
			if len(city) > 2 && len(city) < 30 {
				return location{city: city}
			}
		}

		if m := remoteRe.FindStringSubmatch(line); m != nil {
			loc := strings.ToLower(m[1])
			for _, country := range countryNames {
				if strings.Contains(loc, strings.ToLower(country)) {
					return location{city: "Remote", country: translateCountry(country)}
				}
			}
		}

		if strings.Contains(line, ",") {
			lower := strings.ToLower(line)
			for _, country := range countryNames {
				if !strings.Contains(lower, strings.ToLower(country)) {
					continue
				}
				parts := strings.Split(line, ",")
				if len(parts) < 2 {
					continue
				}
				city := strings.TrimSpace(parts[0])
				if len(city) > 2 && len(city) < 30 && !isAllDigits(city) {
					return location{city: city, country: translateCountry(country)}
				}
			}
		}
	}

	// Bare city name on a short line; the earliest mention wins.
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) >= 50 {
			continue
		}
		lower := strings.ToLower(line)
		best, bestPos := "", -1
		for _, city := range majorCityNames {
			pos := strings.Index(lower, strings.ToLower(city))
			if pos < 0 {
				continue
			}
			if bestPos < 0 || pos < bestPos {
				best, bestPos = city, pos
			}
		}
		if best != "" {
			return location{city: best, country: majorCities[best]}
		}
	}

	return location{}
}

func translateCountry(name string) string {
	name = strings.TrimSpace(name)
	if english, ok := dutchCountryNames[strings.ToLower(name)]; ok {
		return english
	}
	if strings.EqualFold(name, "UK") || strings.EqualFold(name, "Verenigd Koninkrijk") {
		return "United Kingdom"
	}
	return name
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
