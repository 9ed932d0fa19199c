// Package rate models the distance-tiered shipping rate table.
//
// A Tier maps a half-open distance interval [lower, upper) to a flat price.
// Tiers are reference data maintained outside the order workflow; the quote
// query matches a requested distance against them, and by construction at
// most one tier covers any distance when the table is well-formed.
package rate
