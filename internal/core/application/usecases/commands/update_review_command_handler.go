package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/review"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"
)

// UpdateReviewCommandHandler lets the author edit rating and comment.
// Reviews of other users are reported as not found.
type UpdateReviewCommandHandler struct {
	uowFactory UoWFactory
	calc       services.RatingCalculator
}

func NewUpdateReviewCommandHandler(uowFactory UoWFactory, calc services.RatingCalculator) UpdateReviewCommandHandler {
	return UpdateReviewCommandHandler{
		uowFactory: uowFactory,
		calc:       calc,
	}
}

func (h *UpdateReviewCommandHandler) Handle(ctx context.Context, cmd UpdateReviewCommand) error {
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

	if err = r.Edit(cmd.Rating(), cmd.Comment(), time.Now().UTC()); err != nil {
		return err
	}

	if err = reviewRepo.Update(ctx, r); err != nil {
		return err
	}

	if err = recomputeProductRating(ctx, uow, h.calc, r.ProductID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

type reviewGetter interface {
	Get(ctx context.Context, id kernel.UUID) (*review.Review, error)
}

func getAuthoredReview(ctx context.Context, repo reviewGetter, reviewID, userID kernel.UUID) (*review.Review, error) {
	r, err := repo.Get(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if !r.IsAuthoredBy(userID) {
		return nil, errs.NewObjectNotFoundError("review", reviewID.String())
	}
	return r, nil
}
