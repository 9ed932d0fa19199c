// Package party models the consignor and consignee attached to every order.
//
// The package includes:
//   - Party: an immutable record of one party's contact and address fields
//   - Role: sender/receiver tag distinguishing the two parties of an order
//   - FieldErrors / ValidationError: per-field validation results reported
//     before any write happens
//
// Key business rules:
//   - both parties are created fresh for each order and never shared
//   - only the sender is linked to the authenticated account
//   - validation reports every invalid field at once, not just the first
package party
