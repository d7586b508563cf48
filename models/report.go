package models

// Report summarizes the remote user list for the admin dashboard.
type Report struct {
	MaleCount   int `json:"maleCount"`
	FemaleCount int `json:"femaleCount"`

	// Years lists the distinct registration years in ascending order.
	Years []string `json:"years"`

	// Year is the year Monthly was computed for; empty when no year is known.
	Year string `json:"year"`

	// Monthly maps a two-digit month ("01".."12") to the number of
	// registrations in Year.
	Monthly map[string]int `json:"monthly"`
}
