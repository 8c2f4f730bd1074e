package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/services"
)

type SetReviewVisibilityCommandHandler struct {
	uowFactory UoWFactory
	calc       services.RatingCalculator
}

func NewSetReviewVisibilityCommandHandler(
	uowFactory UoWFactory,
	calc services.RatingCalculator,
) SetReviewVisibilityCommandHandler {
	return SetReviewVisibilityCommandHandler{
		uowFactory: uowFactory,
		calc:       calc,
	}
}

// Handle toggles visibility and refreshes the product rating, since hidden
// reviews do not count towards it.
func (h *SetReviewVisibilityCommandHandler) Handle(ctx context.Context, cmd SetReviewVisibilityCommand) error {
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

	r.SetHidden(cmd.Hidden(), time.Now().UTC())
	if err = reviewRepo.Update(ctx, r); err != nil {
		return err
	}

	if err = recomputeProductRating(ctx, uow, h.calc, r.ProductID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
