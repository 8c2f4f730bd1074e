package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrConfirmOrderDeliveredCommandIsNotConstructed = errors.New(
	"ConfirmOrderDeliveredCommand must be created via NewConfirmOrderDeliveredCommand constructor",
)

// ConfirmOrderDeliveredCommand is a buyer confirming their Shipping order arrived.
type ConfirmOrderDeliveredCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	userID  kernel.UUID

	guard guard.ConstructorGuard
}

func NewConfirmOrderDeliveredCommand(orderID, userID kernel.UUID) (ConfirmOrderDeliveredCommand, error) {
	if err := errors.Join(orderID.Validate(), userID.Validate()); err != nil {
		return ConfirmOrderDeliveredCommand{}, err
	}
	return ConfirmOrderDeliveredCommand{
		orderID: orderID,
		userID:  userID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ConfirmOrderDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderDeliveredCommandIsNotConstructed)
}

func (c ConfirmOrderDeliveredCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ConfirmOrderDeliveredCommand) UserID() kernel.UUID {
	return c.userID
}
