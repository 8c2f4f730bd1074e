package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand moves one order to a target status on behalf of a
// staff member. The target is kept as the raw status name: it is validated by
// the handler after the order is loaded, so an unknown order is reported
// before an unknown status.
//
// Example:
//
//	cmd, err := NewChangeOrderStatusCommand(orderID, "Shipping", order.UserActor(staffID))
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	statusName string
	actor      order.Actor

	guard guard.ConstructorGuard
}

func NewChangeOrderStatusCommand(orderID kernel.UUID, statusName string, actor order.Actor) (ChangeOrderStatusCommand, error) {
	if err := errors.Join(orderID.Validate(), actor.Validate()); err != nil {
		return ChangeOrderStatusCommand{}, err
	}
	return ChangeOrderStatusCommand{
		orderID:    orderID,
		statusName: statusName,
		actor:      actor,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ChangeOrderStatusCommand) StatusName() string {
	return c.statusName
}

func (c ChangeOrderStatusCommand) Actor() order.Actor {
	return c.actor
}
