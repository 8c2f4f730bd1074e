// Package reviewrepo persists product reviews in the "reviews" table.
package reviewrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/review"

	"github.com/google/uuid"
)

// ReviewDTO is the row shape of a review. A user reviews a product at most once per order.
// The reply columns are all NULL when staff have not replied.
type ReviewDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ProductID    uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_reviews_author_order"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_author_order"`
	OrderID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_author_order"`
	Rating       int        `gorm:"type:smallint;not null"`
	Comment      string     `gorm:"type:text;not null;default:''"`
	Hidden       bool       `gorm:"not null;default:false"`
	ReplyContent *string    `gorm:"type:text"`
	ReplyStaffID *uuid.UUID `gorm:"type:uuid"`
	RepliedAt    *time.Time
	CreatedAt    time.Time `gorm:"autoCreateTime:false;not null"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime:false;not null"`
}

func (ReviewDTO) TableName() string {
	return "reviews"
}

func fromDomain(r *review.Review) ReviewDTO {
	dto := ReviewDTO{
		ID:        r.ID().Bytes(),
		ProductID: r.ProductID().Bytes(),
		UserID:    r.UserID().Bytes(),
		OrderID:   r.OrderID().Bytes(),
		Rating:    r.Rating(),
		Comment:   r.Comment(),
		Hidden:    r.Hidden(),
		CreatedAt: r.CreatedAt(),
		UpdatedAt: r.UpdatedAt(),
	}
	if reply, ok := r.Reply(); ok {
		content := reply.Content()
		staffID := reply.StaffID().Bytes()
		repliedAt := reply.RepliedAt()
		dto.ReplyContent = &content
		dto.ReplyStaffID = &staffID
		dto.RepliedAt = &repliedAt
	}
	return dto
}

func toDomain(dto ReviewDTO) (*review.Review, error) {
	ids := make([]kernel.UUID, 0, 4)
	for _, raw := range []uuid.UUID{dto.ID, dto.ProductID, dto.UserID, dto.OrderID} {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	var reply *review.Reply
	if dto.ReplyContent != nil && dto.ReplyStaffID != nil && dto.RepliedAt != nil {
		staffID, err := kernel.UUIDFromBytes(dto.ReplyStaffID[:])
		if err != nil {
			return nil, err
		}
		restored, err := review.NewReply(staffID, *dto.ReplyContent, *dto.RepliedAt)
		if err != nil {
			return nil, err
		}
		reply = &restored
	}

	return review.RestoreReview(review.State{
		ID:        ids[0],
		ProductID: ids[1],
		UserID:    ids[2],
		OrderID:   ids[3],
		Rating:    dto.Rating,
		Comment:   dto.Comment,
		Hidden:    dto.Hidden,
		Reply:     reply,
		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
	})
}
