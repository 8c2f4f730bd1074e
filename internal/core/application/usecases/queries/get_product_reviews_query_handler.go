package queries

import (
	"context"
	"database/sql"

	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetProductReviewsQueryHandler struct {
	db *gorm.DB
}

func NewGetProductReviewsQueryHandler(db *gorm.DB) GetProductReviewsQueryHandler {
	return GetProductReviewsQueryHandler{db: db}
}

// Handle returns reviews newest first.
func (h GetProductReviewsQueryHandler) Handle(ctx context.Context, query GetProductReviewsQuery) ([]ReviewView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	visibility := "hidden = FALSE"
	args := []any{query.productID.Bytes()}
	if query.viewerID != nil {
		visibility = "(hidden = FALSE OR user_id = ?)"
		args = append(args, query.viewerID.Bytes())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			user_id,
			order_id,
			rating,
			comment,
			hidden,
			reply_content,
			reply_staff_id,
			replied_at,
			created_at,
			updated_at
		FROM reviews
		WHERE product_id = ? AND `+visibility+`
		ORDER BY created_at DESC, id
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]ReviewView, 0)
	for rows.Next() {
		var (
			view                           ReviewView
			id, productID, userID, orderID uuid.UUID
			replyContent                   sql.NullString
			replyStaffID                   uuid.NullUUID
			repliedAt                      sql.NullTime
		)
		err = rows.Scan(
			&id,
			&productID,
			&userID,
			&orderID,
			&view.Rating,
			&view.Comment,
			&view.Hidden,
			&replyContent,
			&replyStaffID,
			&repliedAt,
			&view.CreatedAt,
			&view.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		for _, pair := range []struct {
			dst *kernel.UUID
			raw uuid.UUID
		}{{&view.ID, id}, {&view.ProductID, productID}, {&view.UserID, userID}, {&view.OrderID, orderID}} {
			converted, idErr := kernel.UUIDFromBytes(pair.raw[:])
			if idErr != nil {
				return nil, idErr
			}
			*pair.dst = converted
		}

		if replyContent.Valid && replyStaffID.Valid && repliedAt.Valid {
			staffID, idErr := kernel.UUIDFromBytes(replyStaffID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			view.Reply = &ReplyView{Content: replyContent.String, StaffID: staffID, RepliedAt: repliedAt.Time}
		}

		reviews = append(reviews, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reviews, nil
}
