package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/review"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrCreateReviewCommandIsNotConstructed = errors.New(
	"CreateReviewCommand must be created via NewCreateReviewCommand constructor",
)

// CreateReviewCommand is a buyer reviewing a product from one of their orders.
type CreateReviewCommand struct { //nolint:recvcheck //using for validation
	userID    kernel.UUID
	productID kernel.UUID
	orderID   kernel.UUID
	rating    int
	comment   string

	guard guard.ConstructorGuard
}

func NewCreateReviewCommand(
	userID, productID, orderID kernel.UUID,
	rating int,
	comment string,
) (CreateReviewCommand, error) {
	if err := errors.Join(
		userID.Validate(),
		productID.Validate(),
		orderID.Validate(),
		validateReviewRating(rating),
	); err != nil {
		return CreateReviewCommand{}, err
	}
	return CreateReviewCommand{
		userID:    userID,
		productID: productID,
		orderID:   orderID,
		rating:    rating,
		comment:   comment,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CreateReviewCommand) Validate() error {
	return c.guard.Validate(ErrCreateReviewCommandIsNotConstructed)
}

func (c CreateReviewCommand) UserID() kernel.UUID    { return c.userID }
func (c CreateReviewCommand) ProductID() kernel.UUID { return c.productID }
func (c CreateReviewCommand) OrderID() kernel.UUID   { return c.orderID }
func (c CreateReviewCommand) Rating() int            { return c.rating }
func (c CreateReviewCommand) Comment() string        { return c.comment }

func validateReviewRating(rating int) error {
	if rating < review.MinRating || rating > review.MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, review.MinRating, review.MaxRating)
	}
	return nil
}
