// Package format turns upstream register data into display strings.
//
// Free text is title cased token by token; surnames, registration numbers
// and postal codes are upper cased. Missing values render as "".
package format

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/dustin/go-humanize"
	"github.com/mbolis/confirmation-statement/model"
	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const apiDateLayout = "2006-01-02"

// TitleCase upper cases the first letter of every whitespace delimited token
// and lower cases the rest. Whitespace is kept as is.
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	start := true
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			start = true
		case start:
			r = unicode.ToUpper(r)
			start = false
		default:
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

func Upper(s string) string {
	// a Caser keeps state, so one per call
	return cases.Upper(language.Und).String(s)
}

func FormatAddress(a model.Address) model.Address {
	return model.Address{
		CareOf:       TitleCase(a.CareOf),
		PoBox:        TitleCase(a.PoBox),
		Premises:     TitleCase(a.Premises),
		AddressLine1: TitleCase(a.AddressLine1),
		AddressLine2: TitleCase(a.AddressLine2),
		Locality:     TitleCase(a.Locality),
		Region:       TitleCase(a.Region),
		Country:      TitleCase(a.Country),
		PostalCode:   Upper(a.PostalCode),
	}
}

// JoinAddress formats a and joins its non-empty lines with ", ".
func JoinAddress(a model.Address) string {
	a = FormatAddress(a)
	lines := []string{
		a.CareOf,
		a.PoBox,
		a.Premises,
		a.AddressLine1,
		a.AddressLine2,
		a.Locality,
		a.Region,
		a.Country,
		a.PostalCode,
	}
	parts := lines[:0]
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, ", ")
}

// PersonName renders forenames in title case followed by the upper cased surname.
func PersonName(surname string, forenames ...string) string {
	var parts []string
	for _, f := range forenames {
		if f = strings.TrimSpace(f); f != "" {
			parts = append(parts, TitleCase(f))
		}
	}
	if surname = strings.TrimSpace(surname); surname != "" {
		parts = append(parts, Upper(surname))
	}
	return strings.Join(parts, " ")
}

// Date renders an API date (YYYY-MM-DD) as "2 January 2006".
func Date(value string) (string, error) {
	if value == "" {
		return "", nil
	}
	t, err := time.Parse(apiDateLayout, value)
	if err != nil {
		return "", errors.Wrapf(err, "invalid date %q", value)
	}
	return t.Format("2 January 2006"), nil
}

// MonthYear renders a partial date of birth as "January 2006".
func MonthYear(dob model.DateOfBirth) string {
	if dob.Month < 1 || dob.Month > 12 {
		return strconv.Itoa(dob.Year)
	}
	return time.Month(dob.Month).String() + " " + strconv.Itoa(dob.Year)
}

// Shares renders a whole number of shares with thousands separators.
func Shares(value string) (string, error) {
	if value == "" {
		return "", nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return "", errors.Wrapf(err, "invalid share count %q", value)
	}
	return humanize.Comma(n), nil
}

// Amount renders a monetary value with thousands separators and two decimals.
func Amount(value string) (string, error) {
	if value == "" {
		return "", nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return "", errors.Wrapf(err, "invalid amount %q", value)
	}
	return humanize.FormatFloat("#,###.##", f), nil
}
