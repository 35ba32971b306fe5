// Package europass maps the intermediate resume model onto the Europass
// CV schema (v3.4) and renders it as JSON or XML. The structs mirror the
// official shape; optional branches are pointers or omitempty so absent
// source data never produces empty elements.
//
// Reference: https://europa.eu/europass/en/europass-tools/developers
package europass

// Date is a partial Europass date. Month and Day are omitted when the
// source only knew the year.
type Date struct {
	Year  int `json:"Year" xml:"Year"`
	Month int `json:"Month,omitempty" xml:"Month,omitempty"`
	Day   int `json:"Day,omitempty" xml:"Day,omitempty"`
}

// Period spans an engagement. Current replaces To for ongoing entries.
type Period struct {
	From    *Date `json:"From,omitempty" xml:"From,omitempty"`
	To      *Date `json:"To,omitempty" xml:"To,omitempty"`
	Current bool  `json:"Current,omitempty" xml:"Current,omitempty"`
}

// Code is a coded value with an optional human label.
type Code struct {
	Code  string `json:"Code,omitempty" xml:"Code,omitempty"`
	Label string `json:"Label,omitempty" xml:"Label,omitempty"`
}

// Contact wraps a single contact value (email address, phone number).
type Contact struct {
	Contact string `json:"Contact" xml:"Contact"`
}

type AddressContact struct {
	AddressLine  string `json:"AddressLine,omitempty" xml:"AddressLine,omitempty"`
	PostalCode   string `json:"PostalCode,omitempty" xml:"PostalCode,omitempty"`
	Municipality string `json:"Municipality,omitempty" xml:"Municipality,omitempty"`
	Country      *Code  `json:"Country,omitempty" xml:"Country,omitempty"`
}

type Address struct {
	Contact AddressContact `json:"Contact" xml:"Contact"`
}

type ContactInfo struct {
	Address   *Address  `json:"Address,omitempty" xml:"Address,omitempty"`
	Email     *Contact  `json:"Email,omitempty" xml:"Email,omitempty"`
	Telephone []Contact `json:"Telephone,omitempty" xml:"Telephone,omitempty"`
}

type PersonName struct {
	FirstName string `json:"FirstName,omitempty" xml:"FirstName,omitempty"`
	Surname   string `json:"Surname,omitempty" xml:"Surname,omitempty"`
}

type Demographics struct {
	Birthdate   *Date  `json:"Birthdate,omitempty" xml:"Birthdate,omitempty"`
	Nationality []Code `json:"Nationality,omitempty" xml:"Nationality,omitempty"`
}

// Photo carries the base64-encoded portrait. It is only emitted when
// photo inclusion is enabled.
type Photo struct {
	MimeType string `json:"MimeType" xml:"MimeType"`
	Data     string `json:"Data" xml:"Data"`
}

type Identification struct {
	PersonName   *PersonName   `json:"PersonName,omitempty" xml:"PersonName,omitempty"`
	ContactInfo  *ContactInfo  `json:"ContactInfo,omitempty" xml:"ContactInfo,omitempty"`
	Demographics *Demographics `json:"Demographics,omitempty" xml:"Demographics,omitempty"`
	Photo        *Photo        `json:"Photo,omitempty" xml:"Photo,omitempty"`
}

// Position is a job title with an optional ISCO-08 code.
type Position struct {
	Code  string `json:"Code,omitempty" xml:"Code,omitempty"`
	Label string `json:"Label" xml:"Label"`
}

type OrgContactInfo struct {
	Address *Address `json:"Address,omitempty" xml:"Address,omitempty"`
}

type Employer struct {
	Name        string          `json:"Name,omitempty" xml:"Name,omitempty"`
	ContactInfo *OrgContactInfo `json:"ContactInfo,omitempty" xml:"ContactInfo,omitempty"`
}

type WorkExperience struct {
	Period     *Period   `json:"Period,omitempty" xml:"Period,omitempty"`
	Position   *Position `json:"Position,omitempty" xml:"Position,omitempty"`
	Activities string    `json:"Activities,omitempty" xml:"Activities,omitempty"`
	Employer   *Employer `json:"Employer,omitempty" xml:"Employer,omitempty"`
}

type Organisation struct {
	Name        string          `json:"Name,omitempty" xml:"Name,omitempty"`
	ContactInfo *OrgContactInfo `json:"ContactInfo,omitempty" xml:"ContactInfo,omitempty"`
}

type Education struct {
	Period       *Period       `json:"Period,omitempty" xml:"Period,omitempty"`
	Title        string        `json:"Title,omitempty" xml:"Title,omitempty"`
	Skills       string        `json:"Skills,omitempty" xml:"Skills,omitempty"`
	Organisation *Organisation `json:"Organisation,omitempty" xml:"Organisation,omitempty"`
	Level        *Code         `json:"Level,omitempty" xml:"Level,omitempty"`
}

type MotherTongue struct {
	Description Code `json:"Description" xml:"Description"`
}

// ProficiencyLevel holds CEFR levels per axis. Speaking on the source
// side maps to both SpokenInteraction and SpokenProduction.
type ProficiencyLevel struct {
	Listening         string `json:"Listening,omitempty" xml:"Listening,omitempty"`
	Reading           string `json:"Reading,omitempty" xml:"Reading,omitempty"`
	SpokenInteraction string `json:"SpokenInteraction,omitempty" xml:"SpokenInteraction,omitempty"`
	SpokenProduction  string `json:"SpokenProduction,omitempty" xml:"SpokenProduction,omitempty"`
	Writing           string `json:"Writing,omitempty" xml:"Writing,omitempty"`
}

type ForeignLanguage struct {
	Description      Code              `json:"Description" xml:"Description"`
	ProficiencyLevel *ProficiencyLevel `json:"ProficiencyLevel,omitempty" xml:"ProficiencyLevel,omitempty"`
}

type LinguisticSkills struct {
	MotherTongue    []MotherTongue    `json:"MotherTongue,omitempty" xml:"MotherTongue,omitempty"`
	ForeignLanguage []ForeignLanguage `json:"ForeignLanguage,omitempty" xml:"ForeignLanguage,omitempty"`
}

type SkillDescription struct {
	Description string `json:"Description" xml:"Description"`
}

type Skills struct {
	Linguistic *LinguisticSkills `json:"Linguistic,omitempty" xml:"Linguistic,omitempty"`
	Computer   *SkillDescription `json:"Computer,omitempty" xml:"Computer,omitempty"`
	Other      *SkillDescription `json:"Other,omitempty" xml:"Other,omitempty"`
}

type AchievementTitle struct {
	Label string `json:"Label" xml:"Label"`
}

// Achievement is what a certification becomes on the Europass side.
type Achievement struct {
	Title    AchievementTitle `json:"Title" xml:"Title"`
	Date     *Date            `json:"Date,omitempty" xml:"Date,omitempty"`
	IssuedBy string           `json:"IssuedBy,omitempty" xml:"IssuedBy,omitempty"`
}

type Headline struct {
	Type        Code `json:"Type" xml:"Type"`
	Description Code `json:"Description" xml:"Description"`
}

type DocumentInfo struct {
	DocumentType string `json:"DocumentType" xml:"DocumentType"`
	CreationDate string `json:"CreationDate" xml:"CreationDate"`
	Generator    string `json:"Generator" xml:"Generator"`
	XSDVersion   string `json:"XSDVersion" xml:"XSDVersion"`
}

type LearnerInfo struct {
	Identification *Identification  `json:"Identification,omitempty" xml:"Identification,omitempty"`
	Headline       *Headline        `json:"Headline,omitempty" xml:"Headline,omitempty"`
	WorkExperience []WorkExperience `json:"WorkExperience,omitempty" xml:"WorkExperience,omitempty"`
	Education      []Education      `json:"Education,omitempty" xml:"Education,omitempty"`
	Skills         *Skills          `json:"Skills,omitempty" xml:"Skills,omitempty"`
	Achievement    []Achievement    `json:"Achievement,omitempty" xml:"Achievement,omitempty"`
}

// CV is the output aggregate.
type CV struct {
	DocumentInfo DocumentInfo `json:"DocumentInfo" xml:"DocumentInfo"`
	LearnerInfo  LearnerInfo  `json:"LearnerInfo" xml:"LearnerInfo"`
}
