package party

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/AbdullahAlSalim/skywayexpress/internal/core/domain/model/kernel"
	"github.com/AbdullahAlSalim/skywayexpress/internal/pkg/errs"
)

var (
	// ErrPartyIsNotConstructed is returned when a Party instance was not created
	// through the NewParty or RestoreParty factory functions.
	ErrPartyIsNotConstructed = errors.New("Party must be created via NewParty or RestoreParty constructor")

	// ErrSenderRequiresOwner is returned when a sender party is created without
	// the requesting account attached.
	ErrSenderRequiresOwner = errors.New("sender party must be linked to the requesting account")

	// ErrReceiverMustNotHaveOwner is returned when a receiver party carries an
	// account link; only the sender is linked to the authenticated account.
	ErrReceiverMustNotHaveOwner = errors.New("receiver party must not be linked to an account")
)

const (
	maxNameLength    = 120
	maxPhoneLength   = 32
	maxAddressLength = 255
	maxCityLength    = 80
	maxPostalLength  = 16
)

// Fields is the raw field set submitted for one party of an order.
// It is validated as a whole by NewParty, which reports every violation
// at once through FieldErrors.
type Fields struct {
	Name        string
	Phone       string
	AddressLine string
	City        string
	PostalCode  string
}

// FieldErrors maps a field name to its validation message.
// An empty map means the field set is valid.
type FieldErrors map[string]string

// ValidationError carries the per-field validation messages for one party.
// It is returned by NewParty before anything is written, so the caller can
// correct the input.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return "party fields are invalid: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return errs.ErrValueIsInvalid
}

// Party is one of the two parties attached to an order, distinguished by Role.
// Parties are created fresh per order and never mutated afterwards; the order
// references them by id and they carry no back-reference.
//
// Invariants:
//   - name, phone, address line and city are required and length-bounded
//   - a sender is always linked to the requesting account
//   - a receiver is never linked to an account
type Party struct {
	id             kernel.ID
	name           string
	phone          string
	addressLine    string
	city           string
	postalCode     string
	role           Role
	ownerAccountID *kernel.ID

	isConstructed bool
}

// NewParty validates the submitted field set and creates a party for the given
// role. For Sender the requesting account must be supplied; for Receiver it
// must be nil.
//
// Field violations are reported all at once as *ValidationError so the caller
// receives the complete set of messages, not just the first failure.
func NewParty(fields Fields, role Role, ownerAccountID *kernel.ID) (*Party, error) {
	if err := role.Validate(); err != nil {
		return nil, err
	}

	switch role {
	case Sender:
		if ownerAccountID == nil {
			return nil, ErrSenderRequiresOwner
		}
		if err := ownerAccountID.Validate(); err != nil {
			return nil, err
		}
	case Receiver:
		if ownerAccountID != nil {
			return nil, ErrReceiverMustNotHaveOwner
		}
	}

	if fieldErrors := validateFields(fields); len(fieldErrors) > 0 {
		return nil, &ValidationError{Fields: fieldErrors}
	}

	return &Party{
		name:           strings.TrimSpace(fields.Name),
		phone:          strings.TrimSpace(fields.Phone),
		addressLine:    strings.TrimSpace(fields.AddressLine),
		city:           strings.TrimSpace(fields.City),
		postalCode:     strings.TrimSpace(fields.PostalCode),
		role:           role,
		ownerAccountID: ownerAccountID,
		isConstructed:  true,
	}, nil
}

// RestoreParty reconstructs a persisted party with its store-assigned identifier.
// Used by persistence adapters when reading parties back from storage.
func RestoreParty(id kernel.ID, fields Fields, role Role, ownerAccountID *kernel.ID) (*Party, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	p, err := NewParty(fields, role, ownerAccountID)
	if err != nil {
		return nil, err
	}

	p.id = id
	return p, nil
}

// validateFields collects every field violation in one pass.
func validateFields(fields Fields) FieldErrors {
	fieldErrors := make(FieldErrors)

	checkRequired := func(field, value string, maxLength int) {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			fieldErrors[field] = "is required"
			return
		}
		if utf8.RuneCountInString(trimmed) > maxLength {
			fieldErrors[field] = fmt.Sprintf("must be at most %d characters", maxLength)
		}
	}

	checkRequired("name", fields.Name, maxNameLength)
	checkRequired("phone", fields.Phone, maxPhoneLength)
	checkRequired("addressLine", fields.AddressLine, maxAddressLength)
	checkRequired("city", fields.City, maxCityLength)

	if postal := strings.TrimSpace(fields.PostalCode); postal != "" &&
		utf8.RuneCountInString(postal) > maxPostalLength {
		fieldErrors["postalCode"] = fmt.Sprintf("must be at most %d characters", maxPostalLength)
	}

	return fieldErrors
}

// Validate ensures the Party was created through one of its constructors.
func (p *Party) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPartyIsNotConstructed
	}
	return nil
}

// IsEqual compares two parties by their store-assigned identifiers.
func (p *Party) IsEqual(other *Party) bool {
	return other != nil && p.id.IsAssigned() && p.id == other.id
}

// ID returns the party's store-assigned identifier (zero until persisted).
func (p *Party) ID() kernel.ID {
	return p.id
}

// Name returns the party's contact name.
func (p *Party) Name() string {
	return p.name
}

// Phone returns the party's contact phone number.
func (p *Party) Phone() string {
	return p.phone
}

// AddressLine returns the party's street address.
func (p *Party) AddressLine() string {
	return p.addressLine
}

// City returns the party's city.
func (p *Party) City() string {
	return p.city
}

// PostalCode returns the party's postal code (may be empty).
func (p *Party) PostalCode() string {
	return p.postalCode
}

// Role returns whether the party is the sender or the receiver.
func (p *Party) Role() Role {
	return p.role
}

// OwnerAccountID returns the linked account for sender parties, nil otherwise.
func (p *Party) OwnerAccountID() *kernel.ID {
	return p.ownerAccountID
}
