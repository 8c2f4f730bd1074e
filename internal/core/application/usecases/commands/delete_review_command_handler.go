package commands

import (
	"context"

	"storefront/internal/core/domain/services"
)

// DeleteReviewCommandHandler removes the author's review and refreshes the
// product rating.
type DeleteReviewCommandHandler struct {
	uowFactory UoWFactory
	calc       services.RatingCalculator
}

func NewDeleteReviewCommandHandler(uowFactory UoWFactory, calc services.RatingCalculator) DeleteReviewCommandHandler {
	return DeleteReviewCommandHandler{
		uowFactory: uowFactory,
		calc:       calc,
	}
}

func (h *DeleteReviewCommandHandler) Handle(ctx context.Context, cmd DeleteReviewCommand) error {
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
	r, err := getAuthoredReview(ctx, reviewRepo, cmd.ReviewID(), cmd.UserID())
	if err != nil {
		return err
	}

	if err = reviewRepo.Delete(ctx, r.ID()); err != nil {
		return err
	}

	if err = recomputeProductRating(ctx, uow, h.calc, r.ProductID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
