package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrGetProductReviewsQueryIsNotConstructed = errors.New(
	"GetProductReviewsQuery must be created via NewGetProductReviewsQuery constructor",
)

// GetProductReviewsQuery lists the visible reviews of a product. When a viewer
// is given, their own hidden reviews are included too.
type GetProductReviewsQuery struct {
	productID kernel.UUID
	viewerID  *kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetProductReviewsQuery(productID kernel.UUID, viewerID *kernel.UUID) (GetProductReviewsQuery, error) {
	if err := productID.Validate(); err != nil {
		return GetProductReviewsQuery{}, err
	}
	if viewerID != nil {
		if err := viewerID.Validate(); err != nil {
			return GetProductReviewsQuery{}, err
		}
	}
	return GetProductReviewsQuery{
		productID: productID,
		viewerID:  viewerID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetProductReviewsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductReviewsQueryIsNotConstructed)
}

func (q GetProductReviewsQuery) ProductID() kernel.UUID {
	return q.productID
}

// ViewerID is nil for anonymous readers.
func (q GetProductReviewsQuery) ViewerID() *kernel.UUID {
	return q.viewerID
}

type ReviewView struct {
	ID        kernel.UUID
	ProductID kernel.UUID
	UserID    kernel.UUID
	OrderID   kernel.UUID
	Rating    int
	Comment   string
	Hidden    bool
	Reply     *ReplyView
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ReplyView struct {
	Content   string
	StaffID   kernel.UUID
	RepliedAt time.Time
}
