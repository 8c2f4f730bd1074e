package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrSetReviewVisibilityCommandIsNotConstructed = errors.New(
	"SetReviewVisibilityCommand must be created via NewSetReviewVisibilityCommand constructor",
)

// SetReviewVisibilityCommand is staff moderation: hide or show a review.
type SetReviewVisibilityCommand struct { //nolint:recvcheck //using for validation
	reviewID kernel.UUID
	hidden   bool

	guard guard.ConstructorGuard
}

func NewSetReviewVisibilityCommand(reviewID kernel.UUID, hidden bool) (SetReviewVisibilityCommand, error) {
	if err := reviewID.Validate(); err != nil {
		return SetReviewVisibilityCommand{}, err
	}
	return SetReviewVisibilityCommand{reviewID: reviewID, hidden: hidden, guard: guard.NewConstructorGuard()}, nil
}

func (c SetReviewVisibilityCommand) Validate() error {
	return c.guard.Validate(ErrSetReviewVisibilityCommandIsNotConstructed)
}

func (c SetReviewVisibilityCommand) ReviewID() kernel.UUID {
	return c.reviewID
}

func (c SetReviewVisibilityCommand) Hidden() bool {
	return c.hidden
}
