// Package validation implements the input checks applied before any
// directory or catalog mutation: email and phone formats, credential
// rules, and free-text sanitization.
package validation

import (
	"regexp"
	"strings"
)

const MinPasswordLength = 6

var (
	// local@domain.tld, no whitespace, single @
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Nigerian mobile: optional +234 or leading 0, then 7/8/9 and nine digits
	phoneRe = regexp.MustCompile(`^(\+234|0)?[789]\d{9}$`)
)

// ValidEmail reports whether email looks like local@domain.tld.
func ValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// ValidPhone reports whether phone is a Nigerian mobile number.
// Spaces are ignored.
func ValidPhone(phone string) bool {
	return phoneRe.MatchString(strings.ReplaceAll(phone, " ", ""))
}

var sanitizer = strings.NewReplacer(
	"<", "",
	">", "",
	"'", "",
	`"`, "",
	";", "",
	"--", "",
	"/*", "",
	"*/", "",
)

// Sanitize strips characters with markup or SQL meaning from free-text
// input and trims surrounding whitespace.
func Sanitize(s string) string {
	return strings.TrimSpace(sanitizer.Replace(s))
}
