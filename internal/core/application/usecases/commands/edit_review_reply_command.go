package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrEditReviewReplyCommandIsNotConstructed = errors.New(
	"EditReviewReplyCommand must be created via NewEditReviewReplyCommand constructor",
)

// EditReviewReplyCommand rewrites an existing staff reply. The editor becomes its author.
type EditReviewReplyCommand struct { //nolint:recvcheck //using for validation
	reviewID kernel.UUID
	staffID  kernel.UUID
	content  string

	guard guard.ConstructorGuard
}

func NewEditReviewReplyCommand(reviewID, staffID kernel.UUID, content string) (EditReviewReplyCommand, error) {
	content, err := replyFields(reviewID, staffID, content)
	if err != nil {
		return EditReviewReplyCommand{}, err
	}
	return EditReviewReplyCommand{
		reviewID: reviewID,
		staffID:  staffID,
		content:  content,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c EditReviewReplyCommand) Validate() error {
	return c.guard.Validate(ErrEditReviewReplyCommandIsNotConstructed)
}

func (c EditReviewReplyCommand) ReviewID() kernel.UUID {
	return c.reviewID
}

func (c EditReviewReplyCommand) StaffID() kernel.UUID {
	return c.staffID
}

func (c EditReviewReplyCommand) Content() string {
	return c.content
}
