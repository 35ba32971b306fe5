// Package resume defines the intermediate model produced by the extractors
// and consumed by the Europass mapper. A Resume is built fresh for every
// conversion and is never shared between calls.
package resume

// PersonalInfo holds identification and contact data. Every field is
// optional; extractors leave fields empty rather than guessing.
type PersonalInfo struct {
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	City        string `json:"city,omitempty"`
	PostalCode  string `json:"postal_code,omitempty"`
	Country     string `json:"country,omitempty"`
	DateOfBirth *Date  `json:"date_of_birth,omitempty"`
	Nationality string `json:"nationality,omitempty"`
	Photo       []byte `json:"photo,omitempty"`
}

// WorkExperience is one employment entry, ordered by document appearance.
type WorkExperience struct {
	Position    string   `json:"position,omitempty"`
	Employer    string   `json:"employer,omitempty"`
	City        string   `json:"city,omitempty"`
	Country     string   `json:"country,omitempty"`
	StartDate   *Date    `json:"start_date,omitempty"`
	EndDate     *Date    `json:"end_date,omitempty"`
	Current     bool     `json:"current,omitempty"`
	Description string   `json:"description,omitempty"`
	Activities  []string `json:"activities,omitempty"`
}

// Education is one study entry.
type Education struct {
	Title        string `json:"title,omitempty"`
	Organization string `json:"organization,omitempty"`
	City         string `json:"city,omitempty"`
	Country      string `json:"country,omitempty"`
	StartDate    *Date  `json:"start_date,omitempty"`
	EndDate      *Date  `json:"end_date,omitempty"`
	Current      bool   `json:"current,omitempty"`
	Description  string `json:"description,omitempty"`
	// Level is the ISCED 2011 level code when stated in the source.
	Level string `json:"level,omitempty"`
}

// Language is a language skill with independent CEFR axes (A1..C2, empty
// when unknown). A native language carries C2 on all four axes.
type Language struct {
	Language  string `json:"language"`
	Listening string `json:"listening,omitempty"`
	Reading   string `json:"reading,omitempty"`
	Speaking  string `json:"speaking,omitempty"`
	Writing   string `json:"writing,omitempty"`
	IsNative  bool   `json:"is_native,omitempty"`
}

// Skill is a single skill token.
type Skill struct {
	Name     string `json:"name"`
	Level    string `json:"level,omitempty"`
	Category string `json:"category,omitempty"`
}

// Certification is a certificate or license entry. Year precision is
// acceptable for the date.
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Date   *Date  `json:"date,omitempty"`
}

// DocumentProperties are coarse metadata reported by the raw text producer.
type DocumentProperties struct {
	Format    string `json:"format,omitempty" mapstructure:"format"`
	Extractor string `json:"extractor,omitempty" mapstructure:"extractor"`
	Title     string `json:"title,omitempty" mapstructure:"title"`
	Author    string `json:"author,omitempty" mapstructure:"author"`
	Subject   string `json:"subject,omitempty" mapstructure:"subject"`
	PageCount int    `json:"page_count,omitempty" mapstructure:"page_count"`
}

// Resume is the aggregate root for one converted document.
type Resume struct {
	PersonalInfo   PersonalInfo     `json:"personal_info"`
	WorkExperience []WorkExperience `json:"work_experience,omitempty"`
	Education      []Education      `json:"education,omitempty"`
	Languages      []Language       `json:"languages,omitempty"`
	Skills         []Skill          `json:"skills,omitempty"`
	Certifications []Certification  `json:"certifications,omitempty"`
	Summary        string           `json:"summary,omitempty"`

	// RawText keeps the producer output for debugging.
	RawText  string             `json:"raw_text,omitempty"`
	Metadata DocumentProperties `json:"metadata"`
}
