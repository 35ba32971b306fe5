package resume

import "fmt"

// Date is a partial calendar date. A zero Month or Day means the component
// is unknown: a date parsed from "2019" carries only a year, one parsed from
// "March 2019" carries year and month.
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month,omitempty"`
	Day   int `json:"day,omitempty"`
}

// NewDate returns a full date.
func NewDate(year, month, day int) *Date {
	return &Date{Year: year, Month: month, Day: day}
}

// YearOnly returns a date with only the year known.
func YearOnly(year int) *Date {
	return &Date{Year: year}
}

// IsZero reports whether no component of the date is known.
func (d *Date) IsZero() bool {
	return d == nil || d.Year == 0
}

func (d *Date) String() string {
	switch {
	case d.IsZero():
		return ""
	case d.Day != 0:
		return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
	case d.Month != 0:
		return fmt.Sprintf("%04d-%02d", d.Year, d.Month)
	default:
		return fmt.Sprintf("%04d", d.Year)
	}
}
