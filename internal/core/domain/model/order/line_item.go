package order

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/AbdullahAlSalim/skywayexpress/internal/core/domain/model/kernel"
	"github.com/AbdullahAlSalim/skywayexpress/internal/pkg/errs"
)

// ErrLineItemIsNotConstructed is returned when a LineItem instance was not
// created through the NewLineItem or RestoreLineItem factory functions.
var ErrLineItemIsNotConstructed = errors.New(
	"LineItem must be created via NewLineItem or RestoreLineItem constructor")

const maxLineItemNameLength = 255

// LineItem is a single product entry attached to an order.
// Prices are integral monetary units; the submitted raw price must be
// coercible to an integer or the whole order creation fails.
type LineItem struct {
	id      kernel.ID
	orderID kernel.ID
	name    string
	price   int64

	isConstructed bool
}

// NewLineItem creates a line item from the submitted product fields.
// The raw price is coerced to an integer: integer literals are accepted
// directly, and decimal literals only when the fraction is zero ("12.0" is
// 12, "12.5" is rejected). The coerced price must be non-negative.
func NewLineItem(name string, rawPrice string) (*LineItem, error) {
	item := &LineItem{isConstructed: true}

	if err := errors.Join(
		item.setName(name),
		item.setPrice(rawPrice),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreLineItem reconstructs a persisted line item with its identifiers.
// Used by persistence adapters when reading line items back from storage.
func RestoreLineItem(id kernel.ID, orderID kernel.ID, name string, price int64) (*LineItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if price < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%d is negative", price))
	}

	item := &LineItem{isConstructed: true}
	if err := item.setName(name); err != nil {
		return nil, err
	}

	item.id = id
	item.orderID = orderID
	item.price = price
	return item, nil
}

// Validate ensures the LineItem was created through one of its constructors.
func (li *LineItem) Validate() error {
	if li == nil || !li.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

// ID returns the line item's store-assigned identifier (zero until persisted).
func (li *LineItem) ID() kernel.ID {
	return li.id
}

// OrderID returns the owning order's identifier (zero until the batch is persisted).
func (li *LineItem) OrderID() kernel.ID {
	return li.orderID
}

// Name returns the product name.
func (li *LineItem) Name() string {
	return li.name
}

// Price returns the coerced integer price.
func (li *LineItem) Price() int64 {
	return li.price
}

func (li *LineItem) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if utf8.RuneCountInString(name) > maxLineItemNameLength {
		return errs.NewValueIsInvalidErrorWithCause("name",
			fmt.Errorf("%q is longer than %d characters", name, maxLineItemNameLength))
	}

	li.name = name
	return nil
}

func (li *LineItem) setPrice(rawPrice string) error {
	rawPrice = strings.TrimSpace(rawPrice)
	if rawPrice == "" {
		return errs.NewValueIsRequiredError("price")
	}

	price, err := coercePrice(rawPrice)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("price", err)
	}
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%d is negative", price))
	}

	li.price = price
	return nil
}

// coercePrice converts the raw submitted price to an integer.
// Integer literals pass through; decimal literals are accepted only when the
// fractional part is zero, so "12" and "12.0" coerce to 12 while "12.5" fails.
func coercePrice(raw string) (int64, error) {
	if price, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return price, nil
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not numeric", raw)
	}
	if f != float64(int64(f)) {
		return 0, fmt.Errorf("%q is not an integer amount", raw)
	}

	return int64(f), nil
}
