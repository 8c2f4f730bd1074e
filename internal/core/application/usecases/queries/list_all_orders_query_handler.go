package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListAllOrdersQueryHandler struct {
	reader orderReader
}

func NewListAllOrdersQueryHandler(db *gorm.DB) ListAllOrdersQueryHandler {
	return ListAllOrdersQueryHandler{reader: orderReader{db: db}}
}

func (h ListAllOrdersQueryHandler) Handle(ctx context.Context, query ListAllOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.reader.find(ctx, orderFilter{}, 0, 0)
}
