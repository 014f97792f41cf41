package models

// Filter narrows user listings. Name and Email match partially and
// case-insensitively; the status fields match exactly. Zero values mean
// "any".
type Filter struct {
	Name          string
	Email         string
	Status        UserStatus
	SessionStatus SessionStatus
}

// IsZero reports whether the filter matches everything.
func (f Filter) IsZero() bool {
	return f == Filter{}
}

// SortableFields is the allowlist for list ordering.
var SortableFields = []string{
	"name", "email", "status", "sessionStatus", "createdAt", "updatedAt",
}

// SelectableFields is the allowlist for response field projection.
var SelectableFields = []string{
	"id", "uuid", "name", "email", "phone", "sessionStatus", "status",
	"createdAt", "updatedAt",
}
