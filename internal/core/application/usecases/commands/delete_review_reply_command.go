package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrDeleteReviewReplyCommandIsNotConstructed = errors.New(
	"DeleteReviewReplyCommand must be created via NewDeleteReviewReplyCommand constructor",
)

type DeleteReviewReplyCommand struct { //nolint:recvcheck //using for validation
	reviewID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteReviewReplyCommand(reviewID kernel.UUID) (DeleteReviewReplyCommand, error) {
	if err := reviewID.Validate(); err != nil {
		return DeleteReviewReplyCommand{}, err
	}
	return DeleteReviewReplyCommand{reviewID: reviewID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteReviewReplyCommand) Validate() error {
	return c.guard.Validate(ErrDeleteReviewReplyCommandIsNotConstructed)
}

func (c DeleteReviewReplyCommand) ReviewID() kernel.UUID {
	return c.reviewID
}
