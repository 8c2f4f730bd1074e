package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListOrdersQueryHandler struct {
	reader orderReader
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{reader: orderReader{db: db}}
}

// Handle returns the requested page. A page past the end yields no orders
// but still reports the real TotalPages.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	filter := query.filter()
	total, err := h.reader.count(ctx, filter)
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}

	orders := make([]OrderView, 0)
	offset := int64(query.page-1) * int64(query.limit)
	if offset < total {
		orders, err = h.reader.find(ctx, filter, query.limit, int(offset))
		if err != nil {
			return ListOrdersQueryResponse{}, err
		}
	}

	return ListOrdersQueryResponse{
		Orders:      orders,
		CurrentPage: query.page,
		TotalPages:  int((total + int64(query.limit) - 1) / int64(query.limit)),
		Total:       total,
	}, nil
}
