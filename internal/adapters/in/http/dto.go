package http

import (
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// changedBySystem marks status log entries written by the stale-shipment sweep.
const changedBySystem = "system"

func toOrderResponse(v queries.OrderView) servers.Order {
	items := make([]servers.OrderItem, len(v.Items))
	for i, item := range v.Items {
		items[i] = servers.OrderItem{
			ProductId:   item.ProductID.Bytes(),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.StringFixed(2),
		}
	}

	log := make([]servers.StatusLogEntry, len(v.StatusLog))
	for i, entry := range v.StatusLog {
		changedBy := changedBySystem
		if entry.ChangedBy != nil {
			changedBy = entry.ChangedBy.String()
		}
		log[i] = servers.StatusLogEntry{
			Status:    servers.OrderStatus(entry.Status),
			ChangedAt: entry.ChangedAt,
			ChangedBy: changedBy,
		}
	}

	return servers.Order{
		Id:            v.ID.Bytes(),
		UserId:        v.UserID.Bytes(),
		CustomerName:  v.CustomerName,
		OrderCode:     v.OrderCode,
		Items:         items,
		TotalAmount:   v.TotalAmount.StringFixed(2),
		PaymentMethod: servers.PaymentMethod(v.PaymentMethod),
		Status:        servers.OrderStatus(v.Status),
		StatusLog:     log,
		DeliveredAt:   v.DeliveredAt,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func toOrderResponses(views []queries.OrderView) []servers.Order {
	out := make([]servers.Order, len(views))
	for i, v := range views {
		out[i] = toOrderResponse(v)
	}
	return out
}

func toReviewResponse(v queries.ReviewView) servers.Review {
	review := servers.Review{
		Id:        v.ID.Bytes(),
		ProductId: v.ProductID.Bytes(),
		UserId:    v.UserID.Bytes(),
		OrderId:   v.OrderID.Bytes(),
		Rating:    v.Rating,
		Comment:   v.Comment,
		IsHidden:  v.Hidden,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
	if v.Reply != nil {
		review.Reply = &servers.ReviewReply{
			Content:   v.Reply.Content,
			StaffId:   v.Reply.StaffID.Bytes(),
			RepliedAt: v.Reply.RepliedAt,
		}
	}
	return review
}

func apiIDs(ids []kernel.UUID) []openapi_types.UUID {
	out := make([]openapi_types.UUID, len(ids))
	for i, id := range ids {
		out[i] = id.Bytes()
	}
	return out
}
