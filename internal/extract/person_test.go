package extract

import "testing"

func TestExtractPersonalInfoDutchHeader(t *testing.T) {
	t.Parallel()

	text := `Jan Jansen
4702 GK Roosendaal (Nederland)
Tel: 06-12345678
jan.jansen@example.nl
`

	info := extractPersonalInfo(text)

	if info.FirstName != "Jan" || info.LastName != "Jansen" {
		t.Fatalf("expected Jan Jansen, got %q %q", info.FirstName, info.LastName)
	}
	if info.City != "Roosendaal" {
		t.Fatalf("expected city Roosendaal, got %q", info.City)
	}
	if info.Country != "Netherlands" {
		t.Fatalf("expected country Netherlands, got %q", info.Country)
	}
	if info.PostalCode != "4702 GK" {
		t.Fatalf("expected postal code 4702 GK, got %q", info.PostalCode)
	}
	if info.Phone != "06-12345678" {
		t.Fatalf("expected phone 06-12345678, got %q", info.Phone)
	}
	if info.Email != "jan.jansen@example.nl" {
		t.Fatalf("expected email, got %q", info.Email)
	}
}

func TestExtractPhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "international with trunk zero",
			input:  "Contact: +31 (0)6 12345678",
			expect: "+31 (0)6 12345678",
		},
		{
			name:   "grouped pairs",
			input:  "Bel mij: +31 6 53 75 43 72",
			expect: "+31 6 53 75 43 72",
		},
		{
			name:   "bare year is not a phone",
			input:  "Graduated 2016",
			expect: "",
		},
		{
			name:   "dutch mobile",
			input:  "Tel 06-12345678",
			expect: "06-12345678",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := extractPhone(tt.input); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestExtractNameSkipsNoise(t *testing.T) {
	t.Parallel()

	text := `www.example.com
Curriculum Vitae 2024
Daniel Bakker
Senior Consultant
`

	first, last := extractName(text)
	if first != "Daniel" || last != "Bakker" {
		t.Fatalf("expected Daniel Bakker, got %q %q", first, last)
	}
}

func TestExtractNameCommaCredential(t *testing.T) {
	t.Parallel()

	// All-caps line fails the Title-Case scan; the comma format is the
	// fallback.
	first, last := extractName("ANNEKE BAKKER, MSc\nVertrouwenspersoon\n")
	if first != "ANNEKE" || last != "BAKKER" {
		t.Fatalf("expected ANNEKE BAKKER, got %q %q", first, last)
	}
}

func TestExtractNameNothingFound(t *testing.T) {
	t.Parallel()

	first, last := extractName("1234\nwww.site.nl\n")
	if first != "" || last != "" {
		t.Fatalf("expected empty name, got %q %q", first, last)
	}
}
