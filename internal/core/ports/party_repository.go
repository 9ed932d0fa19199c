// Package ports defines repository and transaction interfaces for the domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"github.com/AbdullahAlSalim/skywayexpress/internal/core/domain/model/kernel"
	"github.com/AbdullahAlSalim/skywayexpress/internal/core/domain/model/party"
)

// PartyRepository defines the persistence contract for order parties.
// Each order creates two fresh parties (sender and receiver); the store
// assigns their identifiers atomically.
type PartyRepository interface {
	// Add persists a new party and returns its store-assigned identifier.
	// The party must be valid and not yet persisted.
	Add(ctx context.Context, p *party.Party) (kernel.ID, error)

	// Get retrieves a party by its identifier.
	// Returns errs.ObjectNotFoundError when no such party exists.
	Get(ctx context.Context, id kernel.ID) (*party.Party, error)
}
