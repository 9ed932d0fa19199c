package commands

import (
	"errors"
	"fmt"

	"github.com/AbdullahAlSalim/skywayexpress/internal/core/domain/model/kernel"
	"github.com/AbdullahAlSalim/skywayexpress/internal/core/domain/model/party"
	"github.com/AbdullahAlSalim/skywayexpress/internal/pkg/errs"
	"github.com/AbdullahAlSalim/skywayexpress/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// ProductInput is one submitted product line. The price is kept in its raw
// string form; coercion to an integer happens in the domain so that a bad
// price aborts the whole creation transaction.
type ProductInput struct {
	Name     string
	RawPrice string
}

// CreateOrderCommand represents a request to create a shipment order with its
// consignor, consignee and product line items. The command captures the raw
// party field sets; field-level validation happens in the handler before any
// write so both parties' errors can be reported together.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(accountID, consignorFields, consigneeFields,
//	    "cod", "2 boxes of books", "", distance, decimal.NewFromFloat(25.0), products)
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	requestingAccountID kernel.ID
	consignor           party.Fields
	consignee           party.Fields
	paymentMethod       string
	productPreview      string
	note                string
	estimateDistance    kernel.Distance
	shippingPrice       decimal.Decimal
	products            []ProductInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to record a new order on behalf of
// the authenticated account. The account id and distance are validated here;
// party fields, payment details and product prices are validated by the
// handler and the domain so that every violation is reported in full.
func NewCreateOrderCommand(
	requestingAccountID kernel.ID,
	consignor party.Fields,
	consignee party.Fields,
	paymentMethod string,
	productPreview string,
	note string,
	estimateDistance kernel.Distance,
	shippingPrice decimal.Decimal,
	products []ProductInput,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestingAccountID(requestingAccountID),
		cmd.setEstimateDistance(estimateDistance),
		cmd.setShippingPrice(shippingPrice),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.consignor = consignor
	cmd.consignee = consignee
	cmd.paymentMethod = paymentMethod
	cmd.productPreview = productPreview
	cmd.note = note
	cmd.products = products
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// RequestingAccountID returns the authenticated account creating the order.
func (c CreateOrderCommand) RequestingAccountID() kernel.ID {
	return c.requestingAccountID
}

// Consignor returns the raw field set submitted for the sending party.
func (c CreateOrderCommand) Consignor() party.Fields {
	return c.consignor
}

// Consignee returns the raw field set submitted for the receiving party.
func (c CreateOrderCommand) Consignee() party.Fields {
	return c.consignee
}

// PaymentMethod returns how the shipment is paid for.
func (c CreateOrderCommand) PaymentMethod() string {
	return c.paymentMethod
}

// ProductPreview returns the free-form summary of the shipped goods.
func (c CreateOrderCommand) ProductPreview() string {
	return c.productPreview
}

// Note returns the free-form delivery note.
func (c CreateOrderCommand) Note() string {
	return c.note
}

// EstimateDistance returns the estimated shipping distance.
func (c CreateOrderCommand) EstimateDistance() kernel.Distance {
	return c.estimateDistance
}

// ShippingPrice returns the quoted shipping price.
func (c CreateOrderCommand) ShippingPrice() decimal.Decimal {
	return c.shippingPrice
}

// Products returns the submitted product lines.
func (c CreateOrderCommand) Products() []ProductInput {
	return c.products
}

func (c *CreateOrderCommand) setRequestingAccountID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("requestingAccountID", err)
	}
	c.requestingAccountID = id
	return nil
}

func (c *CreateOrderCommand) setEstimateDistance(estimateDistance kernel.Distance) error {
	if err := estimateDistance.Validate(); err != nil {
		return err
	}
	c.estimateDistance = estimateDistance
	return nil
}

func (c *CreateOrderCommand) setShippingPrice(shippingPrice decimal.Decimal) error {
	if shippingPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("shippingPrice",
			fmt.Errorf("%s is negative", shippingPrice))
	}
	c.shippingPrice = shippingPrice
	return nil
}
