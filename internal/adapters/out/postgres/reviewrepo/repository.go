package reviewrepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/review"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormReviewRepository implements ports.ReviewRepository using GORM.
type GormReviewRepository struct {
	db *gorm.DB
}

func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

// Add inserts a review. A second review for the same user, product and order
// is reported as errs.ObjectAlreadyExistsError when the connection translates errors.
func (r *GormReviewRepository) Add(ctx context.Context, aggregate *review.Review) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsError("review", aggregate.ID().String())
		}
		return err
	}
	return nil
}

func (r *GormReviewRepository) Update(ctx context.Context, aggregate *review.Review) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ReviewDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"rating":         dto.Rating,
		"comment":        dto.Comment,
		"hidden":         dto.Hidden,
		"reply_content":  dto.ReplyContent,
		"reply_staff_id": dto.ReplyStaffID,
		"replied_at":     dto.RepliedAt,
		"updated_at":     dto.UpdatedAt,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("review", aggregate.ID().String())
	}
	return nil
}

func (r *GormReviewRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ReviewDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("review", id.String())
	}
	return nil
}

func (r *GormReviewRepository) Get(ctx context.Context, id kernel.UUID) (*review.Review, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ReviewDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("review", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormReviewRepository) Exists(ctx context.Context, userID, productID, orderID kernel.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&ReviewDTO{}).
		Where("user_id = ? AND product_id = ? AND order_id = ?", userID.Bytes(), productID.Bytes(), orderID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormReviewRepository) GetVisibleRatings(ctx context.Context, productID kernel.UUID) ([]int, error) {
	ratings := make([]int, 0)
	err := r.db.WithContext(ctx).Model(&ReviewDTO{}).
		Where("product_id = ? AND hidden = ?", productID.Bytes(), false).
		Order("created_at").
		Pluck("rating", &ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}
