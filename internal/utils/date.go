package utils

import (
	"time"

	"github.com/MKhiriev/go-recipe-keeper/models"
)

// FormatDate renders t with models.DateLayout (DD/MM/YYYY).
func FormatDate(t time.Time) string {
	return t.Format(models.DateLayout)
}

// Today returns the current local date formatted with models.DateLayout.
func Today() string {
	return FormatDate(time.Now())
}

// DateParts splits a DD/MM/YYYY string into its month and year. ok is false
// unless the value is exactly ten characters long with slashes in place.
func DateParts(date string) (month, year string, ok bool) {
	if len(date) != len(models.DateLayout) || date[2] != '/' || date[5] != '/' {
		return "", "", false
	}

	return date[3:5], date[6:], true
}
