package commands

import (
	"context"
	"fmt"
	"log/slog"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
)

// orderNotifier sends order notifications best effort: failures are logged
// at warn level and never fail the command that produced them.
type orderNotifier struct {
	notifier ports.Notifier
	logger   *slog.Logger
}

func newOrderNotifier(notifier ports.Notifier, logger *slog.Logger) orderNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return orderNotifier{notifier: notifier, logger: logger}
}

func orderNotification(o *order.Order, message string) ports.Notification {
	return ports.Notification{
		Message:  message,
		Category: ports.NotificationCategoryOrder,
		Link:     fmt.Sprintf("/orders/%s", o.ID()),
	}
}

func (n orderNotifier) owner(ctx context.Context, o *order.Order, message string) {
	if n.notifier == nil {
		return
	}
	if err := n.notifier.NotifyUser(ctx, o.UserID(), orderNotification(o, message)); err != nil {
		n.logger.WarnContext(ctx, "failed to notify order owner",
			"order_id", o.ID().String(), "user_id", o.UserID().String(), "error", err)
	}
}

func (n orderNotifier) staff(ctx context.Context, o *order.Order, message string) {
	if n.notifier == nil {
		return
	}
	if err := n.notifier.NotifyAdminsAndStaffs(ctx, orderNotification(o, message)); err != nil {
		n.logger.WarnContext(ctx, "failed to notify staff", "order_id", o.ID().String(), "error", err)
	}
}

func (n orderNotifier) statusUpdated(ctx context.Context, o *order.Order) {
	n.owner(ctx, o, fmt.Sprintf("📦 [#%s] Status updated: %q", o.OrderCode(), o.Status().String()))
}

func (n orderNotifier) canceledByOwner(ctx context.Context, o *order.Order) {
	n.staff(ctx, o, fmt.Sprintf("❌ Order [#%s] has been canceled by the user", o.OrderCode()))
	n.owner(ctx, o, fmt.Sprintf("❌ You have successfully canceled order [#%s]", o.OrderCode()))
}

func (n orderNotifier) deliveryConfirmed(ctx context.Context, o *order.Order) {
	n.staff(ctx, o, fmt.Sprintf("📬 Order [#%s] has been confirmed as delivered by the user", o.OrderCode()))
	n.owner(ctx, o, fmt.Sprintf("✅ You have confirmed that order [#%s] was delivered", o.OrderCode()))
}
