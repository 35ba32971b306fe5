package europass

import (
	"encoding/base64"
	"strings"
	"time"

	"github.com/eurocv/eurocv/internal/resume"
)

const (
	documentType = "Europass CV"
	generator    = "eurocv"
	xsdVersion   = "V3.4"

	headlineMaxLen = 500
)

// Options control locale- and privacy-sensitive mapping behavior.
type Options struct {
	// Locale is an IETF tag like "nl-NL"; it is carried for downstream
	// renderers, mapping itself is locale-independent.
	Locale string
	// IncludePhoto gates photo emission. When false photo bytes are
	// never encoded, regardless of what the resume carries.
	IncludePhoto bool
}

// computerSkillKeywords partition skills into the Computer category.
var computerSkillKeywords = []string{
	"python", "java", "javascript", "sql", "html", "css", "git",
	"docker", "kubernetes", "aws", "azure", "linux", "windows",
}

// iscoSoftwareKeywords trigger the ISCO-08 2512 (software developers)
// position code. A narrow heuristic, not a classification engine.
var iscoSoftwareKeywords = []string{"developer", "programmer", "software", "engineer"}

const iscoSoftwareDevelopers = "2512"

// Map converts a Resume into a Europass CV. DocumentInfo is synthesized
// fresh on every call; everything else is a pure function of the input.
func Map(r *resume.Resume, opts Options) *CV {
	cv := &CV{
		DocumentInfo: DocumentInfo{
			DocumentType: documentType,
			CreationDate: time.Now().UTC().Format(time.RFC3339),
			Generator:    generator,
			XSDVersion:   xsdVersion,
		},
	}

	cv.LearnerInfo.Identification = mapIdentification(r.PersonalInfo, opts.IncludePhoto)

	if r.Summary != "" {
		summary := r.Summary
		if len(summary) > headlineMaxLen {
			summary = summary[:headlineMaxLen]
		}
		cv.LearnerInfo.Headline = &Headline{
			Type:        Code{Code: "preferred", Label: "Headline"},
			Description: Code{Label: summary},
		}
	}

	for _, exp := range r.WorkExperience {
		cv.LearnerInfo.WorkExperience = append(cv.LearnerInfo.WorkExperience, mapWork(exp))
	}
	for _, edu := range r.Education {
		cv.LearnerInfo.Education = append(cv.LearnerInfo.Education, mapEducation(edu))
	}

	cv.LearnerInfo.Skills = mapSkills(r.Languages, r.Skills)

	for _, cert := range r.Certifications {
		cv.LearnerInfo.Achievement = append(cv.LearnerInfo.Achievement, Achievement{
			Title:    AchievementTitle{Label: cert.Name},
			Date:     mapDate(cert.Date),
			IssuedBy: cert.Issuer,
		})
	}

	return cv
}

func mapIdentification(pi resume.PersonalInfo, includePhoto bool) *Identification {
	id := &Identification{}
	empty := true

	if pi.FirstName != "" || pi.LastName != "" {
		id.PersonName = &PersonName{FirstName: pi.FirstName, Surname: pi.LastName}
		empty = false
	}

	contact := &ContactInfo{}
	hasContact := false
	if pi.Address != "" || pi.City != "" || pi.PostalCode != "" || pi.Country != "" {
		addr := AddressContact{
			AddressLine:  pi.Address,
			PostalCode:   pi.PostalCode,
			Municipality: pi.City,
		}
		if pi.Country != "" {
			addr.Country = &Code{Code: CountryCode(pi.Country), Label: pi.Country}
		}
		contact.Address = &Address{Contact: addr}
		hasContact = true
	}
	if pi.Email != "" {
		contact.Email = &Contact{Contact: pi.Email}
		hasContact = true
	}
	if pi.Phone != "" {
		contact.Telephone = []Contact{{Contact: pi.Phone}}
		hasContact = true
	}
	if hasContact {
		id.ContactInfo = contact
		empty = false
	}

	demo := &Demographics{}
	hasDemo := false
	if pi.DateOfBirth != nil {
		demo.Birthdate = mapDate(pi.DateOfBirth)
		hasDemo = true
	}
	if pi.Nationality != "" {
		demo.Nationality = []Code{{Code: pi.Nationality, Label: pi.Nationality}}
		hasDemo = true
	}
	if hasDemo {
		id.Demographics = demo
		empty = false
	}

	if includePhoto && len(pi.Photo) > 0 {
		id.Photo = &Photo{
			MimeType: "image/jpeg",
			Data:     base64.StdEncoding.EncodeToString(pi.Photo),
		}
		empty = false
	}

	if empty {
		return nil
	}
	return id
}

// mapDate converts a partial resume date; Month/Day stay zero (and are
// omitted from output) when the source only knew the year.
func mapDate(d *resume.Date) *Date {
	if d == nil || d.Year == 0 {
		return nil
	}
	return &Date{Year: d.Year, Month: d.Month, Day: d.Day}
}

func mapWork(exp resume.WorkExperience) WorkExperience {
	var w WorkExperience

	period := &Period{From: mapDate(exp.StartDate)}
	if exp.Current {
		period.Current = true
	} else {
		period.To = mapDate(exp.EndDate)
	}
	if period.From != nil || period.To != nil || period.Current {
		w.Period = period
	}

	if exp.Position != "" {
		pos := &Position{Label: exp.Position}
		if containsFold(exp.Position, iscoSoftwareKeywords) {
			pos.Code = iscoSoftwareDevelopers
		}
		w.Position = pos
	}

	if exp.Description != "" {
		w.Activities = exp.Description
	} else if len(exp.Activities) > 0 {
		w.Activities = strings.Join(exp.Activities, "\n")
	}

	employer := &Employer{Name: exp.Employer}
	if exp.City != "" || exp.Country != "" {
		employer.ContactInfo = orgAddress(exp.City, exp.Country)
	}
	if employer.Name != "" || employer.ContactInfo != nil {
		w.Employer = employer
	}

	return w
}

func mapEducation(edu resume.Education) Education {
	var e Education

	period := &Period{From: mapDate(edu.StartDate)}
	if edu.Current {
		period.Current = true
	} else {
		period.To = mapDate(edu.EndDate)
	}
	if period.From != nil || period.To != nil || period.Current {
		e.Period = period
	}

	if edu.Title != "" {
		e.Title = edu.Title
	} else if edu.Description != "" {
		first := strings.SplitN(edu.Description, "\n", 2)[0]
		if len(first) > 100 {
			first = first[:100]
		}
		e.Title = first
	}

	e.Skills = edu.Description

	org := &Organisation{Name: edu.Organization}
	if edu.City != "" || edu.Country != "" {
		org.ContactInfo = orgAddress(edu.City, edu.Country)
	}
	if org.Name != "" || org.ContactInfo != nil {
		e.Organisation = org
	}

	if edu.Level != "" {
		e.Level = &Code{Code: edu.Level, Label: ISCEDLabel(edu.Level)}
	} else {
		e.Level = InferISCED(e.Title)
	}

	return e
}

func orgAddress(city, country string) *OrgContactInfo {
	addr := AddressContact{Municipality: city}
	if country != "" {
		addr.Country = &Code{Code: CountryCode(country), Label: country}
	}
	return &OrgContactInfo{Address: &Address{Contact: addr}}
}

func mapSkills(languages []resume.Language, skills []resume.Skill) *Skills {
	out := &Skills{}
	empty := true

	if len(languages) > 0 {
		linguistic := &LinguisticSkills{}
		for _, lang := range languages {
			if lang.IsNative {
				linguistic.MotherTongue = append(linguistic.MotherTongue, MotherTongue{
					Description: Code{Label: lang.Language},
				})
				continue
			}
			foreign := ForeignLanguage{Description: Code{Label: lang.Language}}
			if lang.Listening != "" || lang.Reading != "" || lang.Speaking != "" || lang.Writing != "" {
				foreign.ProficiencyLevel = &ProficiencyLevel{
					Listening:         lang.Listening,
					Reading:           lang.Reading,
					SpokenInteraction: lang.Speaking,
					SpokenProduction:  lang.Speaking,
					Writing:           lang.Writing,
				}
			}
			linguistic.ForeignLanguage = append(linguistic.ForeignLanguage, foreign)
		}
		out.Linguistic = linguistic
		empty = false
	}

	if len(skills) > 0 {
		var computer, other []string
		for _, skill := range skills {
			if containsFold(skill.Name, computerSkillKeywords) {
				computer = append(computer, skill.Name)
			} else {
				other = append(other, skill.Name)
			}
		}
		if len(computer) > 0 {
			out.Computer = &SkillDescription{Description: strings.Join(computer, ", ")}
			empty = false
		}
		if len(other) > 0 {
			out.Other = &SkillDescription{Description: strings.Join(other, ", ")}
			empty = false
		}
	}

	if empty {
		return nil
	}
	return out
}

func containsFold(s string, keywords []string) bool {
	lower := strings.ToLower(s)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
