package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AbdullahAlSalim/skywayexpress/internal/core/domain/model/kernel"
	"github.com/AbdullahAlSalim/skywayexpress/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrPartiesMustDiffer is returned when the sender and receiver references
	// point at the same party record.
	ErrPartiesMustDiffer = errors.New("sender and receiver must reference different parties")
)

const maxPaymentMethodLength = 40

// Order is the aggregate root of the order-creation workflow. It references
// its sender and receiver parties by id and owns the set of line items created
// with it.
//
// Order follows these invariants:
//   - sender and receiver reference distinct, successfully created parties
//   - the payment method is required
//   - the shipping price is never negative
//   - immutable after creation; updates and cancellation are out of scope
type Order struct {
	id               kernel.ID
	senderID         kernel.ID
	receiverID       kernel.ID
	paymentMethod    string
	productPreview   string
	note             string
	estimateDistance kernel.Distance
	shippingPrice    decimal.Decimal
	trackingCode     uuid.UUID
	dateCreated      time.Time

	isConstructed bool
}

// NewOrder creates an order referencing two already-persisted parties.
// A fresh tracking code is generated and the creation timestamp is taken
// from the clock at call time, in UTC.
//
// Example:
//
//	ord, err := order.NewOrder(senderID, receiverID, "cod", "2 boxes of books",
//	    "leave at reception", distance, decimal.NewFromFloat(25.0))
//	if err != nil {
//	    // handle validation error
//	}
func NewOrder(
	senderID kernel.ID,
	receiverID kernel.ID,
	paymentMethod string,
	productPreview string,
	note string,
	estimateDistance kernel.Distance,
	shippingPrice decimal.Decimal,
) (*Order, error) {
	ord := &Order{
		trackingCode:  uuid.New(),
		dateCreated:   time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		ord.setParties(senderID, receiverID),
		ord.setPaymentMethod(paymentMethod),
		ord.setEstimateDistance(estimateDistance),
		ord.setShippingPrice(shippingPrice),
	); err != nil {
		return nil, err
	}

	ord.productPreview = strings.TrimSpace(productPreview)
	ord.note = strings.TrimSpace(note)
	return ord, nil
}

// RestoreOrder reconstructs a persisted order with its store-assigned identifier,
// tracking code and original creation time. Used by persistence adapters.
func RestoreOrder(
	id kernel.ID,
	senderID kernel.ID,
	receiverID kernel.ID,
	paymentMethod string,
	productPreview string,
	note string,
	estimateDistance kernel.Distance,
	shippingPrice decimal.Decimal,
	trackingCode uuid.UUID,
	dateCreated time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	ord, err := NewOrder(senderID, receiverID, paymentMethod, productPreview, note,
		estimateDistance, shippingPrice)
	if err != nil {
		return nil, err
	}

	ord.id = id
	ord.trackingCode = trackingCode
	ord.dateCreated = dateCreated
	return ord, nil
}

// Validate ensures the Order was created through one of its constructors.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their store-assigned identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsAssigned() && o.id == other.id
}

// ID returns the order's store-assigned identifier (zero until persisted).
func (o *Order) ID() kernel.ID {
	return o.id
}

// SenderID returns the id of the consignor party.
func (o *Order) SenderID() kernel.ID {
	return o.senderID
}

// ReceiverID returns the id of the consignee party.
func (o *Order) ReceiverID() kernel.ID {
	return o.receiverID
}

// PaymentMethod returns how the shipment is paid for.
func (o *Order) PaymentMethod() string {
	return o.paymentMethod
}

// ProductPreview returns the free-form summary of the shipped goods.
func (o *Order) ProductPreview() string {
	return o.productPreview
}

// Note returns the free-form delivery note (may be empty).
func (o *Order) Note() string {
	return o.note
}

// EstimateDistance returns the estimated shipping distance.
func (o *Order) EstimateDistance() kernel.Distance {
	return o.estimateDistance
}

// ShippingPrice returns the quoted shipping price for the order.
func (o *Order) ShippingPrice() decimal.Decimal {
	return o.shippingPrice
}

// TrackingCode returns the externally shareable tracking code.
func (o *Order) TrackingCode() uuid.UUID {
	return o.trackingCode
}

// DateCreated returns the creation timestamp in UTC.
func (o *Order) DateCreated() time.Time {
	return o.dateCreated
}

func (o *Order) setParties(senderID, receiverID kernel.ID) error {
	if err := senderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("senderID", err)
	}
	if err := receiverID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("receiverID", err)
	}
	if senderID == receiverID {
		return ErrPartiesMustDiffer
	}

	o.senderID = senderID
	o.receiverID = receiverID
	return nil
}

func (o *Order) setPaymentMethod(paymentMethod string) error {
	paymentMethod = strings.TrimSpace(paymentMethod)
	if paymentMethod == "" {
		return errs.NewValueIsRequiredError("paymentMethod")
	}
	if len(paymentMethod) > maxPaymentMethodLength {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod",
			fmt.Errorf("%q is longer than %d characters", paymentMethod, maxPaymentMethodLength))
	}

	o.paymentMethod = paymentMethod
	return nil
}

func (o *Order) setEstimateDistance(estimateDistance kernel.Distance) error {
	if err := estimateDistance.Validate(); err != nil {
		return err
	}
	o.estimateDistance = estimateDistance
	return nil
}

func (o *Order) setShippingPrice(shippingPrice decimal.Decimal) error {
	if shippingPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("shippingPrice",
			fmt.Errorf("%s is negative", shippingPrice))
	}
	o.shippingPrice = shippingPrice
	return nil
}
