package commands

import (
	"context"
)

type DeleteReviewReplyCommandHandler struct {
	uowFactory UoWFactory
}

func NewDeleteReviewReplyCommandHandler(uowFactory UoWFactory) DeleteReviewReplyCommandHandler {
	return DeleteReviewReplyCommandHandler{uowFactory: uowFactory}
}

// Handle succeeds on a review without a reply; only a missing review is an error.
func (h *DeleteReviewReplyCommandHandler) Handle(ctx context.Context, cmd DeleteReviewReplyCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	reviewRepo := uow.ReviewRepository()
	r, err := reviewRepo.Get(ctx, cmd.ReviewID())
	if err != nil {
		return err
	}

	r.RemoveReply()
	if err = reviewRepo.Update(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
