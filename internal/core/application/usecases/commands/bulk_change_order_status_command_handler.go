package commands

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/metrics"
)

// BulkChangeOrderStatusResult lists what a bulk run did. Skipped orders were
// already in the target status when their turn came, e.g. on a retry.
type BulkChangeOrderStatusResult struct {
	Updated []kernel.UUID
	Skipped []kernel.UUID
}

// BulkChangeOrderStatusCommandHandler runs a batch dispatch in two stages.
//
// Validation loads every order and rejects the whole batch if one is missing
// (NotFound) or not Processing (InvalidTransition); nothing is written.
//
// Mutation re-fetches each order in its own unit of work and transitions it.
// The batch is not one transaction: an error mid-way leaves the orders before
// it updated, and re-running the same batch finishes the rest.
type BulkChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	notify     orderNotifier
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

func NewBulkChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
	m *metrics.Metrics,
) BulkChangeOrderStatusCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return BulkChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notify:     newOrderNotifier(notifier, logger),
		logger:     logger,
		metrics:    m,
	}
}

func (h *BulkChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd BulkChangeOrderStatusCommand,
) (BulkChangeOrderStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return BulkChangeOrderStatusResult{}, err
	}

	if err := h.validateBatch(ctx, cmd.OrderIDs(), cmd.Target()); err != nil {
		return BulkChangeOrderStatusResult{}, err
	}

	var result BulkChangeOrderStatusResult
	for _, id := range cmd.OrderIDs() {
		applied, err := h.applyOne(ctx, id, cmd.Target(), cmd.Actor())
		if err != nil {
			h.logger.ErrorContext(ctx, "bulk status change stopped",
				"order_id", id.String(), "updated", len(result.Updated), "error", err)
			return result, err
		}
		if applied {
			result.Updated = append(result.Updated, id)
		} else {
			result.Skipped = append(result.Skipped, id)
		}
	}

	return result, nil
}

// validateBatch is read-only; its transaction is always rolled back.
func (h *BulkChangeOrderStatusCommandHandler) validateBatch(
	ctx context.Context,
	ids []kernel.UUID,
	target order.Status,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	for _, id := range ids {
		o, err := orderRepo.Get(ctx, id)
		if err != nil {
			return err
		}
		if o.Status() != order.Processing {
			return errs.NewInvalidTransitionError(o.Status().String(), target.String())
		}
	}
	return nil
}

// applyOne reports false when the order already reached target.
func (h *BulkChangeOrderStatusCommandHandler) applyOne(
	ctx context.Context,
	id kernel.UUID,
	target order.Status,
	actor order.Actor,
) (bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, id)
	if err != nil {
		return false, err
	}

	if o.Status() == target {
		return false, nil
	}

	from := o.Status()
	if err = o.ChangeStatus(target, actor, time.Now().UTC()); err != nil {
		return false, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	h.metrics.ObserveTransition(from.String(), target.String(), metrics.SourceBulk)
	h.notify.statusUpdated(ctx, o)
	return true, nil
}
