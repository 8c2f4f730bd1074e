package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrDeleteReviewCommandIsNotConstructed = errors.New(
	"DeleteReviewCommand must be created via NewDeleteReviewCommand constructor",
)

type DeleteReviewCommand struct { //nolint:recvcheck //using for validation
	reviewID kernel.UUID
	userID   kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteReviewCommand(reviewID, userID kernel.UUID) (DeleteReviewCommand, error) {
	if err := errors.Join(reviewID.Validate(), userID.Validate()); err != nil {
		return DeleteReviewCommand{}, err
	}
	return DeleteReviewCommand{reviewID: reviewID, userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteReviewCommand) Validate() error {
	return c.guard.Validate(ErrDeleteReviewCommandIsNotConstructed)
}

func (c DeleteReviewCommand) ReviewID() kernel.UUID {
	return c.reviewID
}

func (c DeleteReviewCommand) UserID() kernel.UUID {
	return c.userID
}
