// Package validate checks mapped Europass output against a minimal set
// of structural rules. It is deliberately shallow: required top-level
// sections and a handful of per-entry fields, not XSD conformance. All
// violations are collected and returned together.
package validate

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

const xmlRootElement = "Europass"

// JSON validates a serialized Europass CV. The document is inspected as
// a generic map so the rules stay decoupled from the typed schema.
func JSON(data []byte) (bool, []string) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return false, []string{fmt.Sprintf("invalid JSON: %v", err)}
	}

	var errs []string

	if _, ok := doc["DocumentInfo"]; !ok {
		errs = append(errs, "missing required field: DocumentInfo")
	}

	learner, ok := doc["LearnerInfo"].(map[string]any)
	if !ok {
		errs = append(errs, "missing required field: LearnerInfo")
		return false, errs
	}

	if id, ok := learner["Identification"].(map[string]any); ok {
		errs = append(errs, validateIdentification(id)...)
	}
	if work, ok := learner["WorkExperience"].([]any); ok {
		for i, entry := range work {
			errs = append(errs, validateWorkExperience(entry, i)...)
		}
	}
	if education, ok := learner["Education"].([]any); ok {
		for i, entry := range education {
			errs = append(errs, validateEducation(entry, i)...)
		}
	}

	return len(errs) == 0, errs
}

func validateIdentification(id map[string]any) []string {
	var errs []string

	if raw, present := id["PersonName"]; present {
		name, ok := raw.(map[string]any)
		if !ok {
			errs = append(errs, "Identification.PersonName must be a mapping")
		} else if _, hasFirst := name["FirstName"]; !hasFirst {
			if _, hasSur := name["Surname"]; !hasSur {
				errs = append(errs, "Identification.PersonName must have at least FirstName or Surname")
			}
		}
	}

	if raw, present := id["ContactInfo"]; present {
		if _, ok := raw.(map[string]any); !ok {
			errs = append(errs, "Identification.ContactInfo must be a mapping")
		}
	}

	return errs
}

func validateWorkExperience(entry any, index int) []string {
	exp, ok := entry.(map[string]any)
	if !ok {
		return []string{fmt.Sprintf("WorkExperience[%d] must be a mapping", index)}
	}
	if period, ok := exp["Period"].(map[string]any); ok {
		if _, hasFrom := period["From"]; !hasFrom {
			return []string{fmt.Sprintf("WorkExperience[%d].Period must have a 'From' date", index)}
		}
	}
	return nil
}

func validateEducation(entry any, index int) []string {
	edu, ok := entry.(map[string]any)
	if !ok {
		return []string{fmt.Sprintf("Education[%d] must be a mapping", index)}
	}

	var errs []string
	if _, hasTitle := edu["Title"]; !hasTitle {
		errs = append(errs, fmt.Sprintf("Education[%d] must have a Title", index))
	}
	if period, ok := edu["Period"].(map[string]any); ok {
		if _, hasFrom := period["From"]; !hasFrom {
			errs = append(errs, fmt.Sprintf("Education[%d].Period must have a 'From' date", index))
		}
	}
	return errs
}

// XML checks well-formedness and the root element name. Full XSD
// validation is out of scope; a schema-aware validator would slot in
// here.
func XML(document string) (bool, []string) {
	var errs []string

	dec := xml.NewDecoder(bytes.NewReader([]byte(document)))
	rootChecked := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			errs = append(errs, fmt.Sprintf("XML syntax error: %v", err))
			return false, errs
		}
		if start, ok := tok.(xml.StartElement); ok && !rootChecked {
			rootChecked = true
			if start.Name.Local != xmlRootElement {
				errs = append(errs, fmt.Sprintf("unexpected root element %q, want %q", start.Name.Local, xmlRootElement))
			}
		}
	}

	if !rootChecked && strings.TrimSpace(document) != "" {
		errs = append(errs, "no root element found")
	}
	if strings.TrimSpace(document) == "" {
		errs = append(errs, "empty XML document")
	}

	return len(errs) == 0, errs
}
