package commands

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/metrics"
)

// ConfirmOrderDeliveredCommandHandler marks a Shipping order Delivered for its
// owner, stamps deliveredAt and notifies staff and owner.
type ConfirmOrderDeliveredCommandHandler struct {
	uowFactory OrderUoWFactory
	notify     orderNotifier
	metrics    *metrics.Metrics
}

func NewConfirmOrderDeliveredCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
	m *metrics.Metrics,
) ConfirmOrderDeliveredCommandHandler {
	return ConfirmOrderDeliveredCommandHandler{
		uowFactory: uowFactory,
		notify:     newOrderNotifier(notifier, logger),
		metrics:    m,
	}
}

func (h *ConfirmOrderDeliveredCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderDeliveredCommand) error {
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

	if err = o.ConfirmDelivered(cmd.UserID(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.metrics.ObserveTransition(order.Shipping.String(), order.Delivered.String(), metrics.SourceOwner)
	h.notify.deliveryConfirmed(ctx, o)
	return nil
}
