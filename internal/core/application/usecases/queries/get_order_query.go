package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery reads one order. Staff may read any order; other users only their own.
type GetOrderQuery struct {
	orderID kernel.UUID
	userID  kernel.UUID
	isStaff bool

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID, userID kernel.UUID, isStaff bool) (GetOrderQuery, error) {
	if err := errors.Join(orderID.Validate(), userID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{
		orderID: orderID,
		userID:  userID,
		isStaff: isStaff,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}
