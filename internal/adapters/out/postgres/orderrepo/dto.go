// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// An order is stored as one row in "orders" plus its line items in "order_items" and its
// audit trail in "order_status_log", both keyed by (order_id, position).
package orderrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	CustomerName  string          `gorm:"type:varchar(255);not null;default:''"`
	OrderCode     string          `gorm:"type:varchar(32);not null;uniqueIndex"`
	PaymentMethod string          `gorm:"type:varchar(16);not null"`
	TotalAmount   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status        int             `gorm:"not null;index"`
	DeliveredAt   *time.Time
	CreatedAt     time.Time      `gorm:"autoCreateTime:false;not null;index"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime:false;not null"`
	Items         []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	StatusLog     []StatusLogDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default "order_dtos".
func (OrderDTO) TableName() string {
	return "orders"
}

type OrderItemDTO struct {
	OrderID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position  int             `gorm:"primaryKey;autoIncrement:false"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

// StatusLogDTO is one audit entry. A NULL ChangedBy means the system made the change.
type StatusLogDTO struct {
	OrderID   uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Position  int        `gorm:"primaryKey;autoIncrement:false"`
	Status    int        `gorm:"not null"`
	ChangedAt time.Time  `gorm:"not null"`
	ChangedBy *uuid.UUID `gorm:"type:uuid"`
}

func (StatusLogDTO) TableName() string {
	return "order_status_log"
}

func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()

	items := make([]OrderItemDTO, 0, len(o.Items()))
	for i, item := range o.Items() {
		items = append(items, OrderItemDTO{
			OrderID:   orderID,
			Position:  i,
			ProductID: item.ProductID().Bytes(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
		})
	}

	return OrderDTO{
		ID:            orderID,
		UserID:        o.UserID().Bytes(),
		CustomerName:  o.CustomerName(),
		OrderCode:     o.OrderCode(),
		PaymentMethod: o.PaymentMethod().String(),
		TotalAmount:   o.TotalAmount(),
		Status:        int(o.Status()),
		DeliveredAt:   o.DeliveredAt(),
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
		Items:         items,
		StatusLog:     logFromDomain(orderID, o.StatusLog(), 0),
	}
}

// logFromDomain maps entries starting at position from.
func logFromDomain(orderID uuid.UUID, entries []order.StatusLogEntry, from int) []StatusLogDTO {
	dtos := make([]StatusLogDTO, 0, len(entries))
	for i := from; i < len(entries); i++ {
		e := entries[i]
		var changedBy *uuid.UUID
		if id, ok := e.ChangedBy().UserID(); ok {
			raw := id.Bytes()
			changedBy = &raw
		}
		dtos = append(dtos, StatusLogDTO{
			OrderID:   orderID,
			Position:  i,
			Status:    int(e.Status()),
			ChangedAt: e.ChangedAt(),
			ChangedBy: changedBy,
		})
	}
	return dtos
}

// toDomain expects Items and StatusLog to be loaded in position order.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, idErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if idErr != nil {
			return nil, idErr
		}
		item, itemErr := order.NewLineItem(productID, itemDTO.Quantity, itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	log := make([]order.StatusLogEntry, 0, len(dto.StatusLog))
	for _, logDTO := range dto.StatusLog {
		actor := order.SystemActor()
		if logDTO.ChangedBy != nil {
			by, byErr := kernel.UUIDFromBytes(logDTO.ChangedBy[:])
			if byErr != nil {
				return nil, byErr
			}
			actor = order.UserActor(by)
		}
		entry, entryErr := order.NewStatusLogEntry(order.Status(logDTO.Status), logDTO.ChangedAt, actor)
		if entryErr != nil {
			return nil, entryErr
		}
		log = append(log, entry)
	}

	return order.RestoreOrder(order.State{
		ID:            id,
		UserID:        userID,
		CustomerName:  dto.CustomerName,
		OrderCode:     dto.OrderCode,
		Items:         items,
		TotalAmount:   dto.TotalAmount,
		PaymentMethod: order.PaymentMethod(dto.PaymentMethod),
		Status:        order.Status(dto.Status),
		StatusLog:     log,
		DeliveredAt:   dto.DeliveredAt,
		CreatedAt:     dto.CreatedAt,
		UpdatedAt:     dto.UpdatedAt,
	})
}
