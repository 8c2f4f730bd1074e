package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrUpdateReviewCommandIsNotConstructed = errors.New(
	"UpdateReviewCommand must be created via NewUpdateReviewCommand constructor",
)

type UpdateReviewCommand struct { //nolint:recvcheck //using for validation
	reviewID kernel.UUID
	userID   kernel.UUID
	rating   int
	comment  string

	guard guard.ConstructorGuard
}

func NewUpdateReviewCommand(reviewID, userID kernel.UUID, rating int, comment string) (UpdateReviewCommand, error) {
	if err := errors.Join(reviewID.Validate(), userID.Validate(), validateReviewRating(rating)); err != nil {
		return UpdateReviewCommand{}, err
	}
	return UpdateReviewCommand{
		reviewID: reviewID,
		userID:   userID,
		rating:   rating,
		comment:  comment,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateReviewCommand) Validate() error {
	return c.guard.Validate(ErrUpdateReviewCommandIsNotConstructed)
}

func (c UpdateReviewCommand) ReviewID() kernel.UUID { return c.reviewID }
func (c UpdateReviewCommand) UserID() kernel.UUID   { return c.userID }
func (c UpdateReviewCommand) Rating() int           { return c.rating }
func (c UpdateReviewCommand) Comment() string       { return c.comment }
