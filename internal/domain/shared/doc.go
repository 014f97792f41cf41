// Package shared provides the shared kernel for the registration bounded
// contexts. It holds the value objects used by both the Company and User
// aggregates, plus the validator and hasher ports they delegate to.
//
// Value objects validate at construction: New* constructors return
// (VO, error) and never produce an invalid instance. Restore* constructors
// re-wrap values already validated on a previous write, so rehydrating from
// storage does not re-run (and cannot fail) format validation.
//
// Domain purity: this package performs no I/O, never reads the clock, and
// reaches country-specific format rules only through the injected
// TaxIDValidator and ZipCodeValidator ports.
package shared
