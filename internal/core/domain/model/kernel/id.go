package kernel

import (
	"fmt"
	"strconv"

	"github.com/AbdullahAlSalim/skywayexpress/internal/pkg/errs"
)

// ID is the store-assigned identifier shared by all persisted entities.
// Identifiers are assigned by the database on insert; the zero value means
// "not yet persisted". A well-formed external identifier is a non-negative
// integer literal, which ParseID enforces.
//
// Example:
//
//	id, err := kernel.ParseID("42")
//	if err != nil {
//	    // "abc", "-1", "1.5" all fail here with ErrValueIsInvalid
//	}
type ID int64

// ParseID parses an identifier from its external string form.
// Only non-negative integer literals are accepted: any sign, fraction,
// or non-digit character makes the identifier malformed.
func ParseID(s string) (ID, error) {
	if s == "" {
		return 0, errs.NewValueIsRequiredError("id")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, errs.NewValueIsInvalidErrorWithCause("id",
				fmt.Errorf("%q is not a non-negative integer", s))
		}
	}

	value, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("id", err)
	}

	return ID(value), nil
}

// Validate checks that the ID references a persisted record.
// Store-assigned identifiers are always positive.
func (id ID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("id")
	}
	return nil
}

// IsAssigned reports whether the identifier has been assigned by the store.
func (id ID) IsAssigned() bool {
	return id > 0
}

// Int64 returns the raw identifier value for persistence adapters.
func (id ID) Int64() int64 {
	return int64(id)
}

// String returns the external string form of the identifier.
func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
