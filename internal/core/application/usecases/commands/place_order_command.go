package commands

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

type PlaceOrderItem struct {
	ProductID kernel.UUID
	Quantity  int
}

// PlaceOrderCommand records a paid checkout as a new Processing order.
// Repeated products are merged into one line with the summed quantity.
// The customer name is optional and only feeds staff order search.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	userID        kernel.UUID
	customerName  string
	items         []PlaceOrderItem
	paymentMethod order.PaymentMethod

	guard guard.ConstructorGuard
}

func NewPlaceOrderCommand(
	userID kernel.UUID,
	customerName string,
	items []PlaceOrderItem,
	paymentMethod string,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{guard: guard.NewConstructorGuard()}

	pm, pmErr := order.ParsePaymentMethod(paymentMethod)
	if err := errors.Join(
		userID.Validate(),
		cmd.setCustomerName(customerName),
		cmd.setItems(items),
		pmErr,
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	cmd.userID = userID
	cmd.paymentMethod = pm
	return cmd, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) UserID() kernel.UUID {
	return c.userID
}

func (c PlaceOrderCommand) CustomerName() string {
	return c.customerName
}

func (c PlaceOrderCommand) Items() []PlaceOrderItem {
	return append([]PlaceOrderItem(nil), c.items...)
}

func (c PlaceOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

func (c *PlaceOrderCommand) setCustomerName(name string) error {
	name = strings.TrimSpace(name)
	if n := utf8.RuneCountInString(name); n > order.MaxCustomerNameLength {
		return errs.NewValueIsOutOfRangeError("customerName length", n, 0, order.MaxCustomerNameLength)
	}
	c.customerName = name
	return nil
}

func (c *PlaceOrderCommand) setItems(items []PlaceOrderItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	index := make(map[string]int, len(items))
	merged := make([]PlaceOrderItem, 0, len(items))
	for i, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("items", fmt.Errorf("item %d: %w", i, err))
		}
		if item.Quantity < 1 {
			return errs.NewValueIsInvalidErrorWithCause("items", fmt.Errorf("item %d: quantity %d is less than 1", i, item.Quantity))
		}
		if at, ok := index[item.ProductID.String()]; ok {
			merged[at].Quantity += item.Quantity
			continue
		}
		index[item.ProductID.String()] = len(merged)
		merged = append(merged, item)
	}

	c.items = merged
	return nil
}
