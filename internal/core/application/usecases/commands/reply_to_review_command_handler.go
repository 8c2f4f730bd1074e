package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/review"
)

type ReplyToReviewCommandHandler struct {
	uowFactory UoWFactory
}

func NewReplyToReviewCommandHandler(uowFactory UoWFactory) ReplyToReviewCommandHandler {
	return ReplyToReviewCommandHandler{uowFactory: uowFactory}
}

func (h *ReplyToReviewCommandHandler) Handle(ctx context.Context, cmd ReplyToReviewCommand) error {
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

	reply, err := review.NewReply(cmd.StaffID(), cmd.Content(), time.Now().UTC())
	if err != nil {
		return err
	}
	if err = r.SetReply(reply); err != nil {
		return err
	}
	if err = reviewRepo.Update(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
