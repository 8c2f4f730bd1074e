package order

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// LineItem is one product row of an order. The unit price is captured at
// checkout and never follows later product price changes.
type LineItem struct {
	productID kernel.UUID
	quantity  int
	unitPrice decimal.Decimal
}

func NewLineItem(productID kernel.UUID, quantity int, unitPrice decimal.Decimal) (LineItem, error) {
	var quantityErr, priceErr error
	if quantity < 1 {
		quantityErr = errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is less than 1", quantity))
	}
	if unitPrice.IsNegative() {
		priceErr = errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%s is negative", unitPrice))
	}
	if err := errors.Join(productID.Validate(), quantityErr, priceErr); err != nil {
		return LineItem{}, err
	}
	return LineItem{productID: productID, quantity: quantity, unitPrice: unitPrice}, nil
}

func (li LineItem) ProductID() kernel.UUID {
	return li.productID
}

func (li LineItem) Quantity() int {
	return li.quantity
}

func (li LineItem) UnitPrice() decimal.Decimal {
	return li.unitPrice
}

// Subtotal returns quantity × unit price.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.unitPrice.Mul(decimal.NewFromInt(int64(li.quantity)))
}
