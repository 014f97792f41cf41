// Package models holds the Country reference aggregate.
package models

import "strings"

// Country is read-mostly reference data seeded by migrations; the services
// look countries up but never create or mutate them.
type Country struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ISO2      string `json:"iso2"`
	ISO3      string `json:"iso3"`
	PhoneCode string `json:"phone_code"`
	Locale    string `json:"locale"`
}

// MatchesCode reports whether code identifies this country by iso2, iso3 or
// locale, case-insensitively.
func (c *Country) MatchesCode(code string) bool {
	return strings.EqualFold(code, c.ISO2) ||
		strings.EqualFold(code, c.ISO3) ||
		strings.EqualFold(code, c.Locale)
}
