package rawtext

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const docxDocumentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Jan Jansen</w:t></w:r></w:p>
    <w:p><w:r><w:t>Software Developer</w:t></w:r><w:r><w:t xml:space="preserve"> at Acme BV</w:t></w:r></w:p>
    <w:p/>
    <w:p><w:r><w:t>jan@example.nl</w:t></w:r></w:p>
  </w:body>
</w:document>`

const docxCoreXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
  xmlns:dc="http://purl.org/dc/elements/1.1/">
  <dc:title>CV</dc:title>
  <dc:creator>Jan Jansen</dc:creator>
  <dc:subject></dc:subject>
</cp:coreProperties>`

func writeDocx(t *testing.T, files map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "resume.docx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for name, content := range files {
		entry, err := w.Create(name)
		if err != nil {
			t.Fatalf("zip entry %s: %v", name, err)
		}
		if _, err := entry.Write([]byte(content)); err != nil {
			t.Fatalf("zip write %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}
	return path
}

func TestExtractDocx(t *testing.T) {
	t.Parallel()

	path := writeDocx(t, map[string]string{
		"word/document.xml": docxDocumentXML,
		"docProps/core.xml": docxCoreXML,
	})

	doc, err := NewProducer(nil).Extract(path)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}

	if doc.Format != FormatDocx {
		t.Fatalf("unexpected format %q", doc.Format)
	}

	lines := strings.Split(doc.Text, "\n")
	if lines[0] != "Jan Jansen" {
		t.Fatalf("unexpected first line %q", lines[0])
	}
	if !strings.Contains(doc.Text, "Software Developer at Acme BV") {
		t.Fatalf("runs within one paragraph must join without a break:\n%s", doc.Text)
	}
	if !strings.Contains(doc.Text, "jan@example.nl") {
		t.Fatalf("missing paragraph after empty one:\n%s", doc.Text)
	}

	if doc.Properties["author"] != "Jan Jansen" {
		t.Fatalf("unexpected author %v", doc.Properties["author"])
	}
	if doc.Properties["title"] != "CV" {
		t.Fatalf("unexpected title %v", doc.Properties["title"])
	}
	if _, ok := doc.Properties["subject"]; ok {
		t.Fatal("blank subject must be left out")
	}
}

func TestExtractDocxMissingDocument(t *testing.T) {
	t.Parallel()

	path := writeDocx(t, map[string]string{
		"docProps/core.xml": docxCoreXML,
	})

	if _, err := NewProducer(nil).Extract(path); err == nil {
		t.Fatal("archive without word/document.xml must fail")
	}
}

func TestExtractDocxMissingProperties(t *testing.T) {
	t.Parallel()

	path := writeDocx(t, map[string]string{
		"word/document.xml": docxDocumentXML,
	})

	doc, err := NewProducer(nil).Extract(path)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if _, ok := doc.Properties["author"]; ok {
		t.Fatal("no core.xml means no author property")
	}
	if doc.Properties["format"] != "DOCX" {
		t.Fatalf("format property must always be present, got %v", doc.Properties)
	}
}

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path   string
		format Format
		err    bool
	}{
		{path: "cv.pdf", format: FormatPDF},
		{path: "CV.PDF", format: FormatPDF},
		{path: "cv.docx", format: FormatDocx},
		{path: "cv.doc", format: FormatDocx},
		{path: "cv.txt", err: true},
		{path: "cv", err: true},
	}

	for _, tt := range tests {
		format, err := Detect(tt.path)
		if tt.err {
			if err == nil {
				t.Fatalf("Detect(%q): expected error", tt.path)
			}
			continue
		}
		if err != nil {
			t.Fatalf("Detect(%q): %v", tt.path, err)
		}
		if format != tt.format {
			t.Fatalf("Detect(%q): expected %q, got %q", tt.path, tt.format, format)
		}
	}
}
