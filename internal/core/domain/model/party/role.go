package party

import (
	"fmt"

	"github.com/AbdullahAlSalim/skywayexpress/internal/pkg/errs"
)

// Role distinguishes the two parties attached to an order.
// Every order has exactly one Sender (the consignor, linked to the requesting
// account) and one Receiver (the consignee, unlinked).
type Role int

const (
	// Unknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	Unknown Role = iota

	// Sender is the consignor: the party shipping the goods.
	// Only the sender is linked to the authenticated account.
	Sender

	// Receiver is the consignee: the party the shipment is addressed to.
	Receiver
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		Unknown:  "Unknown",
		Sender:   "sender",
		Receiver: "receiver",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Role]string{
		Sender:   "sender",
		Receiver: "receiver",
	}
}

// RoleFromString parses a role from its persisted string form.
// Accepts "sender" and "receiver"; anything else is invalid.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks that the Role is one of the defined values.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the persisted string form of the role.
// Implements fmt.Stringer; safe to call on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}
