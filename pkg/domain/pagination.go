// Package domain provides domain primitives shared across bounded contexts:
// pagination, ordering, and listing parameters. These types validate at
// construction so services and stores never see out-of-range values.
package domain

// Pagination bounds applied to every list operation.
const (
	DefaultPageLimit = 15
	MaxPageLimit     = 70
)

// OffsetPagination is a validated limit/offset window over a result set.
//
// Invariants:
//   - Limit is between 1 and MaxPageLimit (defaults to DefaultPageLimit)
//   - Page is at least 1 (defaults to 1)
type OffsetPagination struct {
	limit int
	page  int
}

// NewOffsetPagination builds a pagination window, applying the default limit
// when limit is not positive and clamping it to MaxPageLimit. Page values
// below 1 are coerced to 1.
func NewOffsetPagination(limit, page int) OffsetPagination {
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	if page < 1 {
		page = 1
	}
	return OffsetPagination{limit: limit, page: page}
}

// Limit returns the clamped page size.
func (p OffsetPagination) Limit() int {
	return p.limit
}

// Page returns the 1-based page number.
func (p OffsetPagination) Page() int {
	return p.page
}

// Offset returns the number of rows to skip: (page-1) * limit.
func (p OffsetPagination) Offset() int {
	return (p.page - 1) * p.limit
}

// IsZero returns true for the uninitialized value.
func (p OffsetPagination) IsZero() bool {
	return p.limit == 0
}
