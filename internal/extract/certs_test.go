package extract

import "testing"

func TestExtractCertifications(t *testing.T) {
	t.Parallel()

	section := `Certifications
AWS Certified Solutions Architect 2021
ITIL v4 Foundation
Scrum Master (2019)
Page 2
ok
`

	certs := extractCertifications(section)

	names := make(map[string]*int)
	for i := range certs {
		idx := i
		names[certs[i].Name] = &idx
	}

	if _, ok := names["AWS Certified Solutions Architect 2021"]; !ok {
		t.Fatalf("AWS certification not detected in %v", names)
	}
	if _, ok := names["ITIL v4 Foundation"]; !ok {
		t.Fatal("ITIL certification not detected")
	}
	if _, ok := names["Certifications"]; ok {
		t.Fatal("section header must be excluded")
	}
	if _, ok := names["Page 2"]; ok {
		t.Fatal("page number must be excluded")
	}

	aws := certs[*names["AWS Certified Solutions Architect 2021"]]
	if aws.Date == nil || aws.Date.Year != 2021 {
		t.Fatalf("expected year 2021 attached, got %+v", aws.Date)
	}
	if aws.Date.Month != 0 || aws.Date.Day != 0 {
		t.Fatalf("year-only date must not invent a month or day, got %+v", aws.Date)
	}
}

func TestExtractCertificationsPre2000Year(t *testing.T) {
	t.Parallel()

	certs := extractCertifications("1998 Microsoft Certified Professional\n")
	if len(certs) != 1 {
		t.Fatalf("expected 1 certification, got %d", len(certs))
	}
	if certs[0].Date == nil || certs[0].Date.Year != 1998 {
		t.Fatalf("expected pre-2000 year attached, got %+v", certs[0].Date)
	}
}
