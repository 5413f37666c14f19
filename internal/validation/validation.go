// Package validation implements request payload validation with field-keyed
// error maps.
package validation

import (
	"net/mail"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"
)

// Errors maps field names to human-readable messages. An empty map means the
// payload passed validation.
type Errors map[string]string

// Valid reports whether no field failed validation.
func (e Errors) Valid() bool {
	return len(e) == 0
}

func isEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

func lengthBetween(s string, min, max int) bool {
	n := utf8.RuneCountInString(s)
	return n >= min && n <= max
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

// validURL accepts absolute http(s) URLs only.
func validURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// validDate accepts YYYY-MM-DD.
func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// checkURL records an error for field unless the value is empty or a valid URL.
func checkURL(errs Errors, field, value string) {
	if !isEmpty(value) && !validURL(value) {
		errs[field] = "Not a valid URL"
	}
}
