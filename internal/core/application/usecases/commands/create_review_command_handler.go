package commands

import (
	"context"
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/review"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"
)

// CreateReviewCommandHandler stores a review and refreshes the product rating.
//
// Only the owner of a Delivered order that contains the product may review it
// (Forbidden otherwise, including when the order does not exist), and only
// once per (user, product, order) (AlreadyExists).
type CreateReviewCommandHandler struct {
	uowFactory UoWFactory
	calc       services.RatingCalculator
}

func NewCreateReviewCommandHandler(uowFactory UoWFactory, calc services.RatingCalculator) CreateReviewCommandHandler {
	return CreateReviewCommandHandler{
		uowFactory: uowFactory,
		calc:       calc,
	}
}

func (h *CreateReviewCommandHandler) Handle(ctx context.Context, cmd CreateReviewCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := h.checkPurchase(ctx, uow, cmd); err != nil {
		return kernel.UUID{}, err
	}

	reviewRepo := uow.ReviewRepository()
	exists, err := reviewRepo.Exists(ctx, cmd.UserID(), cmd.ProductID(), cmd.OrderID())
	if err != nil {
		return kernel.UUID{}, err
	}
	if exists {
		return kernel.UUID{}, errs.NewObjectAlreadyExistsError("review", cmd.OrderID().String()+"/"+cmd.ProductID().String())
	}

	r, err := review.NewReview(
		kernel.NewUUID(),
		cmd.ProductID(),
		cmd.UserID(),
		cmd.OrderID(),
		cmd.Rating(),
		cmd.Comment(),
		time.Now().UTC(),
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = reviewRepo.Add(ctx, r); err != nil {
		return kernel.UUID{}, err
	}

	if err = recomputeProductRating(ctx, uow, h.calc, cmd.ProductID()); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return r.ID(), nil
}

func (h *CreateReviewCommandHandler) checkPurchase(ctx context.Context, uow UoW, cmd CreateReviewCommand) error {
	notPurchased := errs.NewForbiddenError("review a product not purchased in this order")

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return notPurchased
	}
	if err != nil {
		return err
	}

	if !o.IsOwnedBy(cmd.UserID()) || o.Status() != order.Delivered || !o.ContainsProduct(cmd.ProductID()) {
		return notPurchased
	}
	return nil
}
