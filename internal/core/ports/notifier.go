package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
)

// NotificationCategoryOrder tags every notification about an order lifecycle event.
const NotificationCategoryOrder = "order"

// Notification is an in-app message delivered to a user or to the staff audience.
type Notification struct {
	Message  string
	Category string
	Link     string
}

// Notifier sends notifications one way. Implementations must not block on
// delivery; callers treat a returned error as a warning, never as a failure
// of the operation that produced the notification.
type Notifier interface {
	NotifyUser(ctx context.Context, userID kernel.UUID, n Notification) error
	NotifyAdminsAndStaffs(ctx context.Context, n Notification) error
}
