package commands

import (
	"context"
	"errors"
	"log/slog"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/metrics"
)

type SweepStaleShipmentsResult struct {
	Delivered []kernel.UUID
}

// SweepStaleShipmentsCommandHandler applies the stale-shipment policy.
//
// Candidates are listed once, then every stale order is re-fetched and
// delivered in its own unit of work, attributed to the system. A failure on
// one order is logged and does not stop the others; all failures are
// returned joined.
type SweepStaleShipmentsCommandHandler struct {
	uowFactory OrderUoWFactory
	aging      services.ShipmentAging
	notify     orderNotifier
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

func NewSweepStaleShipmentsCommandHandler(
	uowFactory OrderUoWFactory,
	aging services.ShipmentAging,
	notifier ports.Notifier,
	logger *slog.Logger,
	m *metrics.Metrics,
) SweepStaleShipmentsCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return SweepStaleShipmentsCommandHandler{
		uowFactory: uowFactory,
		aging:      aging,
		notify:     newOrderNotifier(notifier, logger),
		logger:     logger.With("component", "stale-shipment-sweep"),
		metrics:    m,
	}
}

func (h *SweepStaleShipmentsCommandHandler) Handle(
	ctx context.Context,
	cmd SweepStaleShipmentsCommand,
) (SweepStaleShipmentsResult, error) {
	if err := cmd.Validate(); err != nil {
		return SweepStaleShipmentsResult{}, err
	}

	result, err := h.sweep(ctx, cmd)
	h.metrics.ObserveSweep(cmd.Trigger(), len(result.Delivered), err)
	if len(result.Delivered) > 0 {
		h.logger.InfoContext(ctx, "stale shipments delivered",
			"trigger", cmd.Trigger(), "count", len(result.Delivered))
	}
	return result, err
}

func (h *SweepStaleShipmentsCommandHandler) sweep(
	ctx context.Context,
	cmd SweepStaleShipmentsCommand,
) (SweepStaleShipmentsResult, error) {
	candidates, err := h.staleCandidates(ctx, cmd)
	if err != nil {
		return SweepStaleShipmentsResult{}, err
	}

	var (
		result   SweepStaleShipmentsResult
		failures []error
	)
	for _, id := range candidates {
		delivered, deliverErr := h.deliverOne(ctx, id, cmd)
		if deliverErr != nil {
			h.logger.ErrorContext(ctx, "failed to deliver stale shipment", "order_id", id.String(), "error", deliverErr)
			failures = append(failures, deliverErr)
			continue
		}
		if delivered {
			result.Delivered = append(result.Delivered, id)
		}
	}

	return result, errors.Join(failures...)
}

func (h *SweepStaleShipmentsCommandHandler) staleCandidates(
	ctx context.Context,
	cmd SweepStaleShipmentsCommand,
) ([]kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := uow.OrderRepository().GetAllInShippingStatus(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(orders))
	for _, o := range orders {
		if h.aging.IsStale(o, cmd.Now()) {
			ids = append(ids, o.ID())
		}
	}
	return ids, nil
}

// deliverOne re-checks staleness on fresh state so a concurrent change wins.
func (h *SweepStaleShipmentsCommandHandler) deliverOne(
	ctx context.Context,
	id kernel.UUID,
	cmd SweepStaleShipmentsCommand,
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

	if !h.aging.IsStale(o, cmd.Now()) {
		return false, nil
	}

	if err = o.MarkDeliveredBySystem(cmd.Now()); err != nil {
		return false, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	h.metrics.ObserveTransition("Shipping", "Delivered", metrics.SourceSystem)
	h.notify.statusUpdated(ctx, o)
	return true, nil
}
