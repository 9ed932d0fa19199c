// Package order provides the domain entities of the order-creation workflow.
//
// The package includes:
//   - Order: the aggregate root referencing its sender and receiver parties
//     by id and carrying payment, distance and pricing details
//   - LineItem: a single product entry attached to an order, with strict
//     integer price coercion from the raw submitted value
//
// Key business rules:
//   - orders reference two distinct, successfully created parties
//   - an order and its full line-item set are created atomically; a partial
//     line-item set must never become visible
//   - orders are immutable after creation in this workflow's scope
package order
