package domain

import (
	"strings"

	dErrors "registro/pkg/domain-errors"
)

// Direction orders a sort key ascending or descending.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// SortKey pairs a field name with a direction.
type SortKey struct {
	Field     string
	Direction Direction
}

// Sort is an ordered list of sort keys. Stores apply keys in order, producing
// a stable multi-key comparison; string fields compare case-insensitively.
type Sort []SortKey

// NewSort validates raw sort expressions against an allowlist of sortable
// fields. Each expression is "field" or "field:direction". Field names match
// case-insensitively and are canonicalized to the allowlist spelling. An
// unknown field or direction is a validation error. Expression order is
// preserved, which is what makes the multi-key comparison stable.
func NewSort(exprs []string, allowed []string) (Sort, error) {
	sort := make(Sort, 0, len(exprs))
	for _, expr := range exprs {
		field, dir, _ := strings.Cut(strings.TrimSpace(expr), ":")
		canonical, ok := matchField(field, allowed)
		if !ok {
			return nil, dErrors.Newf(dErrors.CodeValidation, "cannot sort by field %q", field)
		}
		direction, err := parseDirection(dir)
		if err != nil {
			return nil, err
		}
		sort = append(sort, SortKey{Field: canonical, Direction: direction})
	}
	return sort, nil
}

func matchField(field string, allowed []string) (string, bool) {
	for _, candidate := range allowed {
		if strings.EqualFold(field, candidate) {
			return candidate, true
		}
	}
	return "", false
}

func parseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc":
		return Asc, nil
	case "desc":
		return Desc, nil
	default:
		return "", dErrors.Newf(dErrors.CodeValidation, "invalid sort direction %q", s)
	}
}
