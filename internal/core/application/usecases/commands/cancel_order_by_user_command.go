package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrCancelOrderByUserCommandIsNotConstructed = errors.New(
	"CancelOrderByUserCommand must be created via NewCancelOrderByUserCommand constructor",
)

// CancelOrderByUserCommand is a buyer canceling their own Processing order.
type CancelOrderByUserCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	userID  kernel.UUID

	guard guard.ConstructorGuard
}

func NewCancelOrderByUserCommand(orderID, userID kernel.UUID) (CancelOrderByUserCommand, error) {
	if err := errors.Join(orderID.Validate(), userID.Validate()); err != nil {
		return CancelOrderByUserCommand{}, err
	}
	return CancelOrderByUserCommand{
		orderID: orderID,
		userID:  userID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CancelOrderByUserCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderByUserCommandIsNotConstructed)
}

func (c CancelOrderByUserCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CancelOrderByUserCommand) UserID() kernel.UUID {
	return c.userID
}
