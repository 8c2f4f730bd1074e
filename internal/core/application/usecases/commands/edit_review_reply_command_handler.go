package commands

import (
	"context"
	"time"
)

type EditReviewReplyCommandHandler struct {
	uowFactory UoWFactory
}

func NewEditReviewReplyCommandHandler(uowFactory UoWFactory) EditReviewReplyCommandHandler {
	return EditReviewReplyCommandHandler{uowFactory: uowFactory}
}

// Handle fails with ObjectNotFound when the review has no reply yet.
func (h *EditReviewReplyCommandHandler) Handle(ctx context.Context, cmd EditReviewReplyCommand) error {
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

	if err = r.EditReply(cmd.StaffID(), cmd.Content(), time.Now().UTC()); err != nil {
		return err
	}
	if err = reviewRepo.Update(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
