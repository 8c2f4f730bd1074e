package commands

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"
)

// recomputeProductRating rewrites the product's rating summary from its
// visible reviews inside the caller's transaction. A product that no longer
// exists is left alone.
//
// The product row is locked before the ratings are read, so a concurrent
// review mutation on the same product reads only after this one commits.
func recomputeProductRating(
	ctx context.Context,
	uow UoW,
	calc services.RatingCalculator,
	productID kernel.UUID,
) error {
	productRepo := uow.ProductRepository()
	p, err := productRepo.Get(ctx, productID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	ratings, err := uow.ReviewRepository().GetVisibleRatings(ctx, productID)
	if err != nil {
		return err
	}

	summary, err := calc.Summarize(ratings)
	if err != nil {
		return err
	}

	if err = p.UpdateRating(summary.Average, summary.Count); err != nil {
		return err
	}
	return productRepo.Update(ctx, p)
}
