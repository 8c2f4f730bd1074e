package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/review"
)

// ReviewRepository defines the persistence contract for review aggregates.
type ReviewRepository interface {
	Add(ctx context.Context, aggregate *review.Review) error
	Update(ctx context.Context, aggregate *review.Review) error
	Delete(ctx context.Context, id kernel.UUID) error

	// Get returns an errs.ObjectNotFoundError if the review does not exist.
	Get(ctx context.Context, id kernel.UUID) (*review.Review, error)

	// Exists reports whether the user already reviewed the product for that order.
	Exists(ctx context.Context, userID, productID, orderID kernel.UUID) (bool, error)

	// GetVisibleRatings returns the ratings of all non-hidden reviews of a product.
	GetVisibleRatings(ctx context.Context, productID kernel.UUID) ([]int, error)
}
