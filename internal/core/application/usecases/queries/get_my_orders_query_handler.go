package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetMyOrdersQueryHandler struct {
	reader orderReader
}

func NewGetMyOrdersQueryHandler(db *gorm.DB) GetMyOrdersQueryHandler {
	return GetMyOrdersQueryHandler{reader: orderReader{db: db}}
}

func (h GetMyOrdersQueryHandler) Handle(ctx context.Context, query GetMyOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var filter orderFilter
	filter.add("user_id = ?", query.userID.Bytes())
	return h.reader.find(ctx, filter, 0, 0)
}
