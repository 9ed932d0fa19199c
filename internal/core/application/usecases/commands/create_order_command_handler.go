package commands

import (
	"context"
	"errors"

	"github.com/AbdullahAlSalim/skywayexpress/internal/core/domain/model/kernel"
	"github.com/AbdullahAlSalim/skywayexpress/internal/core/domain/model/order"
	"github.com/AbdullahAlSalim/skywayexpress/internal/core/domain/model/party"

	"github.com/google/uuid"
)

// CreateOrderResult reports the outcome of a successful order creation.
type CreateOrderResult struct {
	OrderID      kernel.ID
	TrackingCode uuid.UUID
}

// CreateOrderCommandHandler handles the business logic for order creation.
// Both party field sets are validated before anything is written; the two
// parties, the order record and the full line-item set are then persisted in
// a single transaction, so any failure leaves no trace of the attempt.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    var partyErr *commands.PartyValidationError
//	    if errors.As(err, &partyErr) {
//	        // report partyErr.Consignor / partyErr.Consignee to the caller
//	    }
//	    return err
//	}
//	fmt.Printf("order %s created", result.OrderID)
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
//
// The steps mirror the order-creation contract:
//  1. build the sender party (linked to the requesting account) and the
//     receiver party from the submitted field sets; if either is invalid,
//     abort with both field-error sets and write nothing
//  2. inside one transaction: persist both parties, create the order record
//     referencing their new ids, then persist every line item
//  3. commit; any failure along the way rolls the whole transaction back
func (h *CreateOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateOrderCommand,
) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	ownerID := cmd.RequestingAccountID()
	sender, senderErr := party.NewParty(cmd.Consignor(), party.Sender, &ownerID)
	receiver, receiverErr := party.NewParty(cmd.Consignee(), party.Receiver, nil)
	if senderErr != nil || receiverErr != nil {
		return CreateOrderResult{}, combinePartyErrors(senderErr, receiverErr)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	senderID, err := uow.PartyRepository().Add(ctx, sender)
	if err != nil {
		return CreateOrderResult{}, err
	}

	receiverID, err := uow.PartyRepository().Add(ctx, receiver)
	if err != nil {
		return CreateOrderResult{}, err
	}

	ord, err := order.NewOrder(
		senderID,
		receiverID,
		cmd.PaymentMethod(),
		cmd.ProductPreview(),
		cmd.Note(),
		cmd.EstimateDistance(),
		cmd.ShippingPrice(),
	)
	if err != nil {
		return CreateOrderResult{}, err
	}

	orderID, err := uow.OrderRepository().Add(ctx, ord)
	if err != nil {
		return CreateOrderResult{}, err
	}

	items := make([]*order.LineItem, 0, len(cmd.Products()))
	for _, product := range cmd.Products() {
		item, itemErr := order.NewLineItem(product.Name, product.RawPrice)
		if itemErr != nil {
			return CreateOrderResult{}, itemErr
		}
		items = append(items, item)
	}

	if err = uow.LineItemRepository().AddBatch(ctx, orderID, items); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	return CreateOrderResult{
		OrderID:      orderID,
		TrackingCode: ord.TrackingCode(),
	}, nil
}

// combinePartyErrors merges the two parties' construction failures.
// Field-level problems from both parties are reported together as one
// PartyValidationError; anything else (bad role, broken account link)
// propagates as-is.
func combinePartyErrors(senderErr, receiverErr error) error {
	partyErr := &PartyValidationError{}

	var validationErr *party.ValidationError
	if errors.As(senderErr, &validationErr) {
		partyErr.Consignor = validationErr.Fields
		senderErr = nil
	}
	if errors.As(receiverErr, &validationErr) {
		partyErr.Consignee = validationErr.Fields
		receiverErr = nil
	}

	if remaining := errors.Join(senderErr, receiverErr); remaining != nil {
		return remaining
	}
	return partyErr
}
