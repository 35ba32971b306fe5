package validate

import (
	"strings"
	"testing"
)

func TestJSONValid(t *testing.T) {
	t.Parallel()

	doc := `{
		"DocumentInfo": {"DocumentType": "Europass CV"},
		"LearnerInfo": {
			"Identification": {"PersonName": {"FirstName": "Jan", "Surname": "Jansen"}},
			"WorkExperience": [{"Period": {"From": {"Year": 2019}}}],
			"Education": [{"Title": "MSc", "Period": {"From": {"Year": 2014}}}]
		}
	}`

	ok, errs := JSON([]byte(doc))
	if !ok {
		t.Fatalf("expected valid document, got errors: %v", errs)
	}
}

func TestJSONMissingSections(t *testing.T) {
	t.Parallel()

	ok, errs := JSON([]byte(`{}`))
	if ok {
		t.Fatal("empty document must not validate")
	}
	if !containsSubstring(errs, "DocumentInfo") || !containsSubstring(errs, "LearnerInfo") {
		t.Fatalf("both missing sections must be reported, got %v", errs)
	}
}

func TestJSONCollectsAllErrors(t *testing.T) {
	t.Parallel()

	doc := `{
		"DocumentInfo": {},
		"LearnerInfo": {
			"Identification": {"PersonName": {}},
			"WorkExperience": [{"Period": {"To": {"Year": 2020}}}],
			"Education": [{"Period": {"To": {"Year": 2016}}}]
		}
	}`

	ok, errs := JSON([]byte(doc))
	if ok {
		t.Fatal("document must not validate")
	}

	for _, want := range []string{
		"PersonName must have at least FirstName or Surname",
		"WorkExperience[0].Period must have a 'From' date",
		"Education[0] must have a Title",
		"Education[0].Period must have a 'From' date",
	} {
		if !containsSubstring(errs, want) {
			t.Fatalf("missing %q in %v", want, errs)
		}
	}
}

func TestJSONMalformed(t *testing.T) {
	t.Parallel()

	ok, errs := JSON([]byte(`{not json`))
	if ok || len(errs) != 1 {
		t.Fatalf("malformed input must yield a single parse error, got %v", errs)
	}
}

func TestXMLValid(t *testing.T) {
	t.Parallel()

	ok, errs := XML(`<?xml version="1.0"?><Europass><LearnerInfo/></Europass>`)
	if !ok {
		t.Fatalf("expected valid XML, got %v", errs)
	}
}

func TestXMLWrongRoot(t *testing.T) {
	t.Parallel()

	ok, errs := XML(`<Resume/>`)
	if ok {
		t.Fatal("wrong root element must not validate")
	}
	if !containsSubstring(errs, "unexpected root element") {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestXMLMalformed(t *testing.T) {
	t.Parallel()

	ok, errs := XML(`<Europass><unclosed></Europass>`)
	if ok {
		t.Fatal("malformed XML must not validate")
	}
	if !containsSubstring(errs, "XML syntax error") {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestXMLEmpty(t *testing.T) {
	t.Parallel()

	if ok, _ := XML("   "); ok {
		t.Fatal("blank input must not validate")
	}
}

func containsSubstring(errs []string, sub string) bool {
	for _, e := range errs {
		if strings.Contains(e, sub) {
			return true
		}
	}
	return false
}
