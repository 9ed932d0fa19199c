package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AbdullahAlSalim/skywayexpress/internal/core/domain/model/party"
	"github.com/AbdullahAlSalim/skywayexpress/internal/pkg/errs"
)

// PartyValidationError carries the field-level validation results for both
// parties of an order-creation request. It is returned before any write, so
// the caller receives the complete picture in one round trip: a map per party,
// empty when that party's fields are valid.
type PartyValidationError struct {
	Consignor party.FieldErrors
	Consignee party.FieldErrors
}

func (e *PartyValidationError) Error() string {
	parts := make([]string, 0, 2)
	if len(e.Consignor) > 0 {
		parts = append(parts, fmt.Sprintf("consignor (%s)", formatFieldErrors(e.Consignor)))
	}
	if len(e.Consignee) > 0 {
		parts = append(parts, fmt.Sprintf("consignee (%s)", formatFieldErrors(e.Consignee)))
	}
	return "order parties are invalid: " + strings.Join(parts, "; ")
}

func (e *PartyValidationError) Unwrap() error {
	return errs.ErrValueIsInvalid
}

func formatFieldErrors(fieldErrors party.FieldErrors) string {
	names := make([]string, 0, len(fieldErrors))
	for name := range fieldErrors {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, fieldErrors[name]))
	}
	return strings.Join(parts, ", ")
}
