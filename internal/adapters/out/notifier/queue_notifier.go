package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/metrics"

	"github.com/segmentio/kafka-go"
)

const (
	AudienceUser  = "user"
	AudienceStaff = "staff"

	// StaffKey is the message key of notifications addressed to admins and staff.
	StaffKey = "staff"

	DefaultQueueSize = 256
	publishTimeout   = 5 * time.Second

	// DefaultDrainTimeout bounds how long Close waits for queued notifications.
	DefaultDrainTimeout = 30 * time.Second
)

var ErrNotifierClosed = errors.New("notifier is closed")

// Publisher is the subset of *kafka.Writer the queue needs.
type Publisher interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Payload is the JSON value of a notification message.
type Payload struct {
	Audience  string    `json:"audience"`
	UserID    string    `json:"userId,omitempty"`
	Message   string    `json:"message"`
	Category  string    `json:"category"`
	Link      string    `json:"link,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// QueueNotifier implements ports.Notifier over a bounded in-memory queue.
// A full queue drops the notification with a warning.
type QueueNotifier struct {
	publisher Publisher
	logger    *slog.Logger
	metrics   *metrics.Metrics
	now       func() time.Time

	// ctx outlives the request and signal contexts; Close cancels it once the
	// queue is drained or the drain timeout expires.
	ctx          context.Context
	cancel       context.CancelFunc
	drainTimeout time.Duration

	mu      sync.Mutex
	queue   chan kafka.Message
	closed  bool
	started bool
	done    chan struct{}
}

func NewQueueNotifier(publisher Publisher, size int, logger *slog.Logger, m *metrics.Metrics) *QueueNotifier {
	if size <= 0 {
		size = DefaultQueueSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &QueueNotifier{
		publisher:    publisher,
		logger:       logger.With("component", "notification-queue"),
		metrics:      m,
		now:          func() time.Time { return time.Now().UTC() },
		ctx:          ctx,
		cancel:       cancel,
		drainTimeout: DefaultDrainTimeout,
		queue:        make(chan kafka.Message, size),
		done:         make(chan struct{}),
	}
}

func (n *QueueNotifier) NotifyUser(_ context.Context, userID kernel.UUID, notification ports.Notification) error {
	return n.enqueue(userID.String(), Payload{
		Audience:  AudienceUser,
		UserID:    userID.String(),
		Message:   notification.Message,
		Category:  notification.Category,
		Link:      notification.Link,
		CreatedAt: n.now(),
	})
}

func (n *QueueNotifier) NotifyAdminsAndStaffs(_ context.Context, notification ports.Notification) error {
	return n.enqueue(StaffKey, Payload{
		Audience:  AudienceStaff,
		Message:   notification.Message,
		Category:  notification.Category,
		Link:      notification.Link,
		CreatedAt: n.now(),
	})
}

func (n *QueueNotifier) enqueue(key string, payload Payload) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	msg := kafka.Message{Key: []byte(key), Value: value, Time: payload.CreatedAt}

	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return ErrNotifierClosed
	}

	select {
	case n.queue <- msg:
	default:
		n.logger.Warn("notification queue is full, dropping notification",
			"key", key,
			"audience", payload.Audience,
		)
		n.metrics.ObserveDroppedNotification()
	}
	return nil
}

// Start launches the publishing goroutine. It keeps publishing until Close
// has drained the queue, independently of any request or shutdown signal.
func (n *QueueNotifier) Start() {
	n.mu.Lock()
	if n.started {
		n.mu.Unlock()
		return
	}
	n.started = true
	n.mu.Unlock()

	go n.run()
}

func (n *QueueNotifier) run() {
	defer close(n.done)
	for msg := range n.queue {
		if n.ctx.Err() != nil {
			n.logger.Warn("notifier stopped before publishing, dropping notification",
				"key", string(msg.Key),
			)
			n.metrics.ObserveDroppedNotification()
			continue
		}
		n.publish(msg)
	}
}

func (n *QueueNotifier) publish(msg kafka.Message) {
	publishCtx, cancel := context.WithTimeout(n.ctx, publishTimeout)
	defer cancel()

	if err := n.publisher.WriteMessages(publishCtx, msg); err != nil {
		n.logger.Warn("failed to publish notification",
			"key", string(msg.Key),
			"error", err,
		)
	}
}

// Close stops accepting notifications, waits up to the drain timeout for the
// queued ones to be published and closes the publisher. Whatever is still
// queued when the timeout expires is dropped. It is safe to call more than once.
func (n *QueueNotifier) Close() error {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return nil
	}
	n.closed = true
	close(n.queue)
	started := n.started
	n.mu.Unlock()

	if started {
		timer := time.NewTimer(n.drainTimeout)
		select {
		case <-n.done:
		case <-timer.C:
			n.logger.Warn("notification queue drain timed out", "timeout", n.drainTimeout)
			n.cancel()
			<-n.done
		}
		timer.Stop()
	}
	n.cancel()
	return n.publisher.Close()
}
