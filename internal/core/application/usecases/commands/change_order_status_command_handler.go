package commands

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/metrics"
)

// ChangeOrderStatusCommandHandler applies a single status change through the
// transition table and notifies the owner once the change is committed.
// Role checks happen in the HTTP layer; the handler only enforces the graph.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	notify     orderNotifier
	metrics    *metrics.Metrics
}

func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
	m *metrics.Metrics,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notify:     newOrderNotifier(notifier, logger),
		metrics:    m,
	}
}

// Handle loads the order (NotFound), parses the target (InvalidInput), checks
// the table (InvalidTransition) and persists status and log entry together.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	target, err := order.ParseStatus(cmd.StatusName())
	if err != nil {
		return err
	}

	from := o.Status()
	if err = o.ChangeStatus(target, cmd.Actor(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.metrics.ObserveTransition(from.String(), target.String(), metrics.SourceStaff)
	h.notify.statusUpdated(ctx, o)
	return nil
}
