package validators

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	passwordMinLength = 8
	passwordMaxLength = 16
	usernameMaxLength = 25
)

// emailPattern is the address pattern used by Android's Patterns.EMAIL_ADDRESS.
var emailPattern = regexp.MustCompile(
	`^[a-zA-Z0-9+._%\-]{1,256}@[a-zA-Z0-9][a-zA-Z0-9\-]{0,64}(\.[a-zA-Z0-9][a-zA-Z0-9\-]{0,25})+$`,
)

// IsEmailValid reports whether s is non-blank and, once trimmed, looks like
// an email address.
func IsEmailValid(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && emailPattern.MatchString(s)
}

// IsPasswordValid reports whether s is non-blank, 8 to 16 characters long
// and contains at least one uppercase ASCII letter. Line breaks are not
// allowed anywhere in the password.
func IsPasswordValid(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}

	n := utf8.RuneCountInString(s)
	if n < passwordMinLength || n > passwordMaxLength {
		return false
	}

	hasUpper := false
	for _, r := range s {
		switch {
		case r == '\n' || r == '\r' || r == '\u0085' || r == '\u2028' || r == '\u2029':
			return false
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		}
	}

	return hasUpper
}

// IsUsernameValid reports whether s is non-blank and at most 25 characters
// after trimming.
func IsUsernameValid(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && utf8.RuneCountInString(s) <= usernameMaxLength
}

// AreFieldsFilled reports whether every supplied string is non-empty after
// trimming. It is true for an empty argument list.
func AreFieldsFilled(fields ...string) bool {
	for _, f := range fields {
		if strings.TrimFunc(f, unicode.IsSpace) == "" {
			return false
		}
	}

	return true
}
