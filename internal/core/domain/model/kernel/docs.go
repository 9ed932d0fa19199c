// Package kernel contains shared value objects used across the domain model.
//
// It provides:
//   - ID: store-assigned entity identifier with strict external parsing
//   - Distance: validated shipment distance in kilometers
//
// Value objects here are immutable and validate themselves on construction,
// so aggregates can accept them without re-checking invariants.
package kernel
