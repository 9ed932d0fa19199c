// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"github.com/AbdullahAlSalim/skywayexpress/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// PartyRepoFactory provides access to the party repository within a transaction.
	PartyRepoFactory interface {
		PartyRepository() ports.PartyRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// LineItemRepoFactory provides access to the line-item repository within a transaction.
	LineItemRepoFactory interface {
		LineItemRepository() ports.LineItemRepository
	}

	// OrderUoW manages the order-creation transaction. Creating an order
	// writes two parties, the order record and its full line-item set, so
	// the unit of work spans all three repositories.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   partyRepo := uow.PartyRepository()
	//   orderRepo := uow.OrderRepository()
	//   itemRepo := uow.LineItemRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		PartyRepoFactory
		OrderRepoFactory
		LineItemRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
