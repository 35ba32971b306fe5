package europass

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
)

const xmlNamespace = "http://europass.cedefop.europa.eu/Europass"

// xmlCV wraps CV with the Europass root element and namespace.
type xmlCV struct {
	XMLName      xml.Name     `xml:"Europass"`
	XMLNS        string       `xml:"xmlns,attr"`
	DocumentInfo DocumentInfo `xml:"DocumentInfo"`
	LearnerInfo  LearnerInfo  `xml:"LearnerInfo"`
}

// EncodeJSON renders the CV as indented JSON.
func EncodeJSON(cv *CV) ([]byte, error) {
	data, err := json.MarshalIndent(cv, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode europass json: %w", err)
	}
	return data, nil
}

// EncodeXML renders the CV as an XML document under the Europass
// namespace.
func EncodeXML(cv *CV) (string, error) {
	doc := xmlCV{
		XMLNS:        xmlNamespace,
		DocumentInfo: cv.DocumentInfo,
		LearnerInfo:  cv.LearnerInfo,
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return "", fmt.Errorf("encode europass xml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encode europass xml: %w", err)
	}
	return buf.String(), nil
}
