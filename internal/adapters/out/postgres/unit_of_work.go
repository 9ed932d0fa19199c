// Package postgres provides the GORM-based implementation of the Unit of Work pattern.
// The Unit of Work maintains the set of aggregates touched by a business
// transaction and coordinates writing out changes atomically.
//
// Order creation is the main consumer: it writes two parties, the order row
// and the full line-item set through repositories bound to one transaction,
// so that everything commits together or nothing does.
//
// Basic usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	senderID, err := uow.PartyRepository().Add(ctx, sender)
//	if err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"

	"github.com/AbdullahAlSalim/skywayexpress/internal/adapters/out/postgres/lineitemrepo"
	"github.com/AbdullahAlSalim/skywayexpress/internal/adapters/out/postgres/orderrepo"
	"github.com/AbdullahAlSalim/skywayexpress/internal/adapters/out/postgres/partyrepo"
	"github.com/AbdullahAlSalim/skywayexpress/internal/core/domain/model/kernel"
	"github.com/AbdullahAlSalim/skywayexpress/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate records an aggregate modified during the unit of work.
// Useful for patterns like event publishing after a successful commit.
type trackedAggregate struct {
	ID        kernel.ID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Each business operation gets a fresh unit of work with its own transaction
// state, isolated from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a database transaction across the party, order
// and line item repositories. Repositories obtained from it run against the
// active transaction, so a rollback discards all of their writes at once.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Calling Begin again on an instance with an open transaction is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns error if no active transaction exists or if the commit fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns error if no active transaction exists or if the rollback fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// PartyRepository returns a party repository bound to the current transaction,
// or to the main connection when no transaction is active.
func (uow *GormUnitOfWork) PartyRepository() ports.PartyRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return partyrepo.NewGormPartyRepository(db, uow)
}

// OrderRepository returns an order repository bound to the current transaction,
// or to the main connection when no transaction is active.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return orderrepo.NewGormOrderRepository(db, uow)
}

// LineItemRepository returns a line item repository bound to the current
// transaction, or to the main connection when no transaction is active.
func (uow *GormUnitOfWork) LineItemRepository() ports.LineItemRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return lineitemrepo.NewGormLineItemRepository(db, uow)
}

// TrackAggregate registers an aggregate as modified within this unit of work.
// Repository implementations call it when aggregates are added or updated.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.ID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
