package orderrepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add inserts the order row together with its items and status log.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update writes the mutable columns and appends log entries beyond those
// already stored. Items and persisted log rows are immutable.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"status":       dto.Status,
		"delivered_at": dto.DeliveredAt,
		"updated_at":   dto.UpdatedAt,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	var persisted int64
	if err := db.Model(&StatusLogDTO{}).Where("order_id = ?", dto.ID).Count(&persisted).Error; err != nil {
		return err
	}

	pending := logFromDomain(dto.ID, aggregate.StatusLog(), int(persisted))
	if len(pending) == 0 {
		return nil
	}
	return db.Create(&pending).Error
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.withChildren(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllInShippingStatus retrieves all orders with Shipping status.
func (r *GormOrderRepository) GetAllInShippingStatus(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.withChildren(ctx).Order("created_at").Find(&dtos, "status = ?", int(order.Shipping)).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// Delete removes the order; items and log rows go with it through ON DELETE CASCADE.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}
	return nil
}

func (r *GormOrderRepository) withChildren(ctx context.Context) *gorm.DB {
	byPosition := func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	}
	return r.db.WithContext(ctx).
		Preload("Items", byPosition).
		Preload("StatusLog", byPosition)
}
