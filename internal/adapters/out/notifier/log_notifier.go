package notifier

import (
	"context"
	"log/slog"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"
)

// LogNotifier writes notifications to the log instead of a broker.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger.With("component", "log-notifier")}
}

func (n *LogNotifier) NotifyUser(ctx context.Context, userID kernel.UUID, notification ports.Notification) error {
	n.logger.InfoContext(ctx, "notification",
		"audience", AudienceUser,
		"user_id", userID.String(),
		"message", notification.Message,
		"link", notification.Link,
	)
	return nil
}

func (n *LogNotifier) NotifyAdminsAndStaffs(ctx context.Context, notification ports.Notification) error {
	n.logger.InfoContext(ctx, "notification",
		"audience", AudienceStaff,
		"message", notification.Message,
		"link", notification.Link,
	)
	return nil
}
