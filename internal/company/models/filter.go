package models

// Filter narrows company listings. String fields match partially and
// case-insensitively; PersonType and CountryID match exactly. Zero values
// mean "any".
type Filter struct {
	Name         string
	Email        string
	TaxID        string
	City         string
	State        string
	BusinessArea string
	PersonType   PersonType
	CountryID    int64
}

// IsZero reports whether the filter matches everything.
func (f Filter) IsZero() bool {
	return f == Filter{}
}

// SortableFields is the allowlist for list ordering.
var SortableFields = []string{
	"name", "email", "taxId", "city", "state", "businessArea",
	"personType", "status", "createdAt", "updatedAt",
}

// SelectableFields is the allowlist for response field projection.
var SelectableFields = []string{
	"id", "uuid", "name", "email", "landline", "phone", "address", "city",
	"state", "zip", "countryId", "taxId", "description", "businessArea",
	"personType", "status", "createdAt", "updatedAt",
}
