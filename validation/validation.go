// Package validation checks the values posted by the wizard's forms.
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	RadioYes           = "yes"
	RadioNo            = "no"
	RadioRecentlyFiled = "recently_filed"
)

// MaxLoggedValue bounds how much of a rejected value is echoed into logs and
// error pages.
const MaxLoggedValue = 50

var (
	reCompanyNumber = regexp.MustCompile(`^[A-Z0-9]{8}$`)
	reEmail         = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// IsValidRadio reports whether value is an acceptable radio answer. An empty
// value is valid: it means nothing was selected, which callers handle by
// redisplaying the form rather than rejecting the request.
func IsValidRadio(value string) bool {
	switch value {
	case "", RadioYes, RadioNo, RadioRecentlyFiled:
		return true
	}
	return false
}

// Truncate shortens value to at most max characters.
func Truncate(value string, max int) string {
	if utf8.RuneCountInString(value) <= max {
		return value
	}
	return string([]rune(value)[:max])
}

func IsValidCompanyNumber(value string) bool {
	return reCompanyNumber.MatchString(value)
}

func IsValidEmail(value string) bool {
	value = strings.TrimSpace(value)
	return len(value) <= 256 && reEmail.MatchString(value)
}
