package commands

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/metrics"
)

// CancelOrderByUserCommandHandler cancels an order for its owner and notifies
// both the staff audience and the owner.
//
// Errors, in the order they are checked: NotFound, Forbidden (not the owner),
// InvalidTransition (not Processing).
type CancelOrderByUserCommandHandler struct {
	uowFactory OrderUoWFactory
	notify     orderNotifier
	metrics    *metrics.Metrics
}

func NewCancelOrderByUserCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
	m *metrics.Metrics,
) CancelOrderByUserCommandHandler {
	return CancelOrderByUserCommandHandler{
		uowFactory: uowFactory,
		notify:     newOrderNotifier(notifier, logger),
		metrics:    m,
	}
}

func (h *CancelOrderByUserCommandHandler) Handle(ctx context.Context, cmd CancelOrderByUserCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.CancelByOwner(cmd.UserID(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.metrics.ObserveTransition(order.Processing.String(), order.Canceled.String(), metrics.SourceOwner)
	h.notify.canceledByOwner(ctx, o)
	return nil
}
