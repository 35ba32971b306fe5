package rawtext

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

func (p *Producer) extractDocx(path string) (*Document, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open zip: %w", err)
	}
	defer r.Close()

	var docFile, propsFile *zip.File
	for _, f := range r.File {
		switch f.Name {
		case "word/document.xml":
			docFile = f
		case "docProps/core.xml":
			propsFile = f
		}
	}
	if docFile == nil {
		return nil, fmt.Errorf("word/document.xml not found in archive")
	}

	text, err := docxParagraphs(docFile)
	if err != nil {
		return nil, fmt.Errorf("parse document.xml: %w", err)
	}

	props := map[string]any{"format": "DOCX"}
	if propsFile != nil {
		// Metadata failures leave properties absent, they never fail
		// the extraction.
		docxCoreProperties(propsFile, props)
	}

	return &Document{
		Path:       path,
		Format:     FormatDocx,
		Text:       text,
		Properties: props,
	}, nil
}

// docxParagraphs streams word/document.xml and joins paragraph text with
// newlines, which is all the downstream heuristics need.
func docxParagraphs(f *zip.File) (string, error) {
	rc, err := f.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	decoder := xml.NewDecoder(rc)
	var sb strings.Builder
	var current strings.Builder
	inParagraph := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "p" {
				inParagraph = true
				current.Reset()
			}
		case xml.CharData:
			if inParagraph {
				current.Write(t)
			}
		case xml.EndElement:
			if t.Name.Local == "p" && inParagraph {
				inParagraph = false
				sb.WriteString(strings.TrimSpace(current.String()))
				sb.WriteByte('\n')
			}
		}
	}

	return strings.TrimRight(sb.String(), "\n"), nil
}

func docxCoreProperties(f *zip.File, props map[string]any) {
	rc, err := f.Open()
	if err != nil {
		return
	}
	defer rc.Close()

	var core struct {
		Title   string `xml:"title"`
		Creator string `xml:"creator"`
		Subject string `xml:"subject"`
	}
	if err := xml.NewDecoder(rc).Decode(&core); err != nil {
		return
	}

	for key, value := range map[string]string{
		"title":   core.Title,
		"author":  core.Creator,
		"subject": core.Subject,
	} {
		if strings.TrimSpace(value) != "" {
			props[key] = strings.TrimSpace(value)
		}
	}
}
