package queries

import (
	"context"

	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	reader orderReader
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{reader: orderReader{db: db}}
}

// Handle returns errs.ObjectNotFoundError for an unknown order and
// errs.ForbiddenError when a non-staff user asks for someone else's order.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	var filter orderFilter
	filter.add("id = ?", query.orderID.Bytes())

	views, err := h.reader.find(ctx, filter, 1, 0)
	if err != nil {
		return OrderView{}, err
	}
	if len(views) == 0 {
		return OrderView{}, errs.NewObjectNotFoundError("order", query.orderID.String())
	}

	view := views[0]
	if !query.isStaff && !view.UserID.IsEqual(query.userID) {
		return OrderView{}, errs.NewForbiddenError("view order")
	}
	return view, nil
}
