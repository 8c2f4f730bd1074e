package commands

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrReplyToReviewCommandIsNotConstructed = errors.New(
	"ReplyToReviewCommand must be created via NewReplyToReviewCommand constructor",
)

// ReplyToReviewCommand posts the shop's answer under a review, replacing any earlier one.
type ReplyToReviewCommand struct { //nolint:recvcheck //using for validation
	reviewID kernel.UUID
	staffID  kernel.UUID
	content  string

	guard guard.ConstructorGuard
}

func NewReplyToReviewCommand(reviewID, staffID kernel.UUID, content string) (ReplyToReviewCommand, error) {
	content, err := replyFields(reviewID, staffID, content)
	if err != nil {
		return ReplyToReviewCommand{}, err
	}
	return ReplyToReviewCommand{
		reviewID: reviewID,
		staffID:  staffID,
		content:  content,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c ReplyToReviewCommand) Validate() error {
	return c.guard.Validate(ErrReplyToReviewCommandIsNotConstructed)
}

func (c ReplyToReviewCommand) ReviewID() kernel.UUID {
	return c.reviewID
}

func (c ReplyToReviewCommand) StaffID() kernel.UUID {
	return c.staffID
}

func (c ReplyToReviewCommand) Content() string {
	return c.content
}

func replyFields(reviewID, staffID kernel.UUID, content string) (string, error) {
	content = strings.TrimSpace(content)
	var contentErr error
	if content == "" {
		contentErr = errs.NewValueIsRequiredError("content")
	}
	if err := errors.Join(reviewID.Validate(), staffID.Validate(), contentErr); err != nil {
		return "", err
	}
	return content, nil
}
