package commands

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrBulkChangeOrderStatusCommandIsNotConstructed = errors.New(
	"BulkChangeOrderStatusCommand must be created via NewBulkChangeOrderStatusCommand constructor",
)

// BulkChangeOrderStatusCommand dispatches a batch of Processing orders.
// Shipping is the only accepted target. Duplicate ids are collapsed, keeping
// first-seen order.
type BulkChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderIDs []kernel.UUID
	target   order.Status
	actor    order.Actor

	guard guard.ConstructorGuard
}

func NewBulkChangeOrderStatusCommand(
	orderIDs []kernel.UUID,
	statusName string,
	actor order.Actor,
) (BulkChangeOrderStatusCommand, error) {
	cmd := BulkChangeOrderStatusCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setOrderIDs(orderIDs),
		cmd.setTarget(statusName),
		actor.Validate(),
	); err != nil {
		return BulkChangeOrderStatusCommand{}, err
	}

	cmd.actor = actor
	return cmd, nil
}

func (c BulkChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrBulkChangeOrderStatusCommandIsNotConstructed)
}

// OrderIDs returns the de-duplicated ids.
func (c BulkChangeOrderStatusCommand) OrderIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), c.orderIDs...)
}

func (c BulkChangeOrderStatusCommand) Target() order.Status {
	return c.target
}

func (c BulkChangeOrderStatusCommand) Actor() order.Actor {
	return c.actor
}

func (c *BulkChangeOrderStatusCommand) setOrderIDs(ids []kernel.UUID) error {
	if len(ids) == 0 {
		return errs.NewValueIsRequiredError("ids")
	}

	seen := make(map[string]struct{}, len(ids))
	unique := make([]kernel.UUID, 0, len(ids))
	for i, id := range ids {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("ids", fmt.Errorf("id %d: %w", i, err))
		}
		if _, dup := seen[id.String()]; dup {
			continue
		}
		seen[id.String()] = struct{}{}
		unique = append(unique, id)
	}

	c.orderIDs = unique
	return nil
}

func (c *BulkChangeOrderStatusCommand) setTarget(statusName string) error {
	target, err := order.ParseStatus(statusName)
	if err != nil {
		return err
	}
	if target != order.Shipping {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("bulk updates only support %s, got %s", order.Shipping, target),
		)
	}
	c.target = target
	return nil
}
