package convert

import (
	"archive/zip"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const fixtureDocumentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Jan Jansen</w:t></w:r></w:p>
    <w:p><w:r><w:t>jan.jansen@example.nl</w:t></w:r></w:p>
    <w:p><w:r><w:t>06-12345678</w:t></w:r></w:p>
    <w:p><w:r><w:t>TALEN</w:t></w:r></w:p>
    <w:p><w:r><w:t>Nederlands - Moedertaal</w:t></w:r></w:p>
    <w:p><w:r><w:t>English - C1</w:t></w:r></w:p>
  </w:body>
</w:document>`

func writeFixture(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "resume.docx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	entry, err := w.Create("word/document.xml")
	if err != nil {
		t.Fatalf("zip entry: %v", err)
	}
	if _, err := entry.Write([]byte(fixtureDocumentXML)); err != nil {
		t.Fatalf("zip write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}
	return path
}

func TestConvertMissingFile(t *testing.T) {
	t.Parallel()

	_, err := New(nil).Convert(filepath.Join(t.TempDir(), "absent.pdf"), Options{})
	if err == nil {
		t.Fatal("missing input must be a hard error")
	}
	if !strings.Contains(err.Error(), "file not found") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestConvertDocxToJSON(t *testing.T) {
	t.Parallel()

	path := writeFixture(t)

	result, err := New(nil).Convert(path, Options{Validate: true})
	if err != nil {
		t.Fatalf("convert: %v", err)
	}

	if len(result.ValidationErrors) != 0 {
		t.Fatalf("expected clean validation, got %v", result.ValidationErrors)
	}
	if result.XML != "" {
		t.Fatal("default format must not produce XML")
	}

	r := result.Resume
	if r.PersonalInfo.Email != "jan.jansen@example.nl" {
		t.Fatalf("unexpected email %q", r.PersonalInfo.Email)
	}
	if r.PersonalInfo.FirstName != "Jan" || r.PersonalInfo.LastName != "Jansen" {
		t.Fatalf("unexpected name %q %q", r.PersonalInfo.FirstName, r.PersonalInfo.LastName)
	}

	var doc map[string]any
	if err := json.Unmarshal(result.JSON, &doc); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if _, ok := doc["DocumentInfo"]; !ok {
		t.Fatal("serialized output must carry DocumentInfo")
	}
}

func TestConvertBothFormats(t *testing.T) {
	t.Parallel()

	path := writeFixture(t)

	result, err := New(nil).Convert(path, Options{Format: FormatBoth, Validate: true})
	if err != nil {
		t.Fatalf("convert: %v", err)
	}

	if len(result.JSON) == 0 {
		t.Fatal("JSON output missing")
	}
	if !strings.Contains(result.XML, "<Europass") {
		t.Fatalf("XML output must use the Europass root element:\n%s", result.XML)
	}
	if len(result.ValidationErrors) != 0 {
		t.Fatalf("expected clean validation, got %v", result.ValidationErrors)
	}
}

func TestConvertLanguages(t *testing.T) {
	t.Parallel()

	path := writeFixture(t)

	result, err := New(nil).Convert(path, Options{})
	if err != nil {
		t.Fatalf("convert: %v", err)
	}

	langs := result.Resume.Languages
	var native, english bool
	for _, lang := range langs {
		if lang.Language == "Dutch" && lang.IsNative {
			native = true
		}
		if lang.Language == "English" && lang.Listening == "C1" {
			english = true
		}
	}
	if !native || !english {
		t.Fatalf("expected native Dutch and C1 English, got %+v", langs)
	}
}
