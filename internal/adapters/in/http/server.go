// Package http exposes the storefront order service over REST using echo.
//
// Server implements the ServerInterface generated from api/openapi.yml.
// Callers are identified by the X-User-ID and X-User-Role headers set by the
// gateway, and every API request is validated against the OpenAPI document
// before its handler runs. Handlers return domain errors unchanged; the error
// handler installed by NewEcho maps them to status codes.
package http

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

type (
	PlaceOrderHandler interface {
		Handle(ctx context.Context, cmd commands.PlaceOrderCommand) (commands.PlaceOrderResult, error)
	}
	ChangeOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) error
	}
	BulkChangeOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.BulkChangeOrderStatusCommand) (commands.BulkChangeOrderStatusResult, error)
	}
	CancelOrderByUserHandler interface {
		Handle(ctx context.Context, cmd commands.CancelOrderByUserCommand) error
	}
	ConfirmOrderDeliveredHandler interface {
		Handle(ctx context.Context, cmd commands.ConfirmOrderDeliveredCommand) error
	}
	DeleteOrderHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error
	}
	SweepStaleShipmentsHandler interface {
		Handle(ctx context.Context, cmd commands.SweepStaleShipmentsCommand) (commands.SweepStaleShipmentsResult, error)
	}
	CreateReviewHandler interface {
		Handle(ctx context.Context, cmd commands.CreateReviewCommand) (kernel.UUID, error)
	}
	UpdateReviewHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateReviewCommand) error
	}
	DeleteReviewHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteReviewCommand) error
	}
	SetReviewVisibilityHandler interface {
		Handle(ctx context.Context, cmd commands.SetReviewVisibilityCommand) error
	}
	ReplyToReviewHandler interface {
		Handle(ctx context.Context, cmd commands.ReplyToReviewCommand) error
	}
	EditReviewReplyHandler interface {
		Handle(ctx context.Context, cmd commands.EditReviewReplyCommand) error
	}
	DeleteReviewReplyHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteReviewReplyCommand) error
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error)
	}
	GetMyOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetMyOrdersQuery) ([]queries.OrderView, error)
	}
	ListOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) (queries.ListOrdersQueryResponse, error)
	}
	ListAllOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListAllOrdersQuery) ([]queries.OrderView, error)
	}
	GetProductReviewsHandler interface {
		Handle(ctx context.Context, query queries.GetProductReviewsQuery) ([]queries.ReviewView, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	PlaceOrder            PlaceOrderHandler
	ChangeOrderStatus     ChangeOrderStatusHandler
	BulkChangeOrderStatus BulkChangeOrderStatusHandler
	CancelOrderByUser     CancelOrderByUserHandler
	ConfirmOrderDelivered ConfirmOrderDeliveredHandler
	DeleteOrder           DeleteOrderHandler
	SweepStaleShipments   SweepStaleShipmentsHandler

	CreateReview        CreateReviewHandler
	UpdateReview        UpdateReviewHandler
	DeleteReview        DeleteReviewHandler
	SetReviewVisibility SetReviewVisibilityHandler
	ReplyToReview       ReplyToReviewHandler
	EditReviewReply     EditReviewReplyHandler
	DeleteReviewReply   DeleteReviewReplyHandler

	GetOrder          GetOrderHandler
	GetMyOrders       GetMyOrdersHandler
	ListOrders        ListOrdersHandler
	ListAllOrders     ListAllOrdersHandler
	GetProductReviews GetProductReviewsHandler
}

var _ servers.ServerInterface = (*Server)(nil)

// Server holds the HTTP handlers of the storefront order service.
type Server struct {
	handlers    Handlers
	sweepOnRead bool
	logger      *slog.Logger
	now         func() time.Time
}

// NewServer creates a server. With sweepOnRead the staff order lists first run
// the stale-shipment sweep; a failing sweep never fails the read.
func NewServer(handlers Handlers, sweepOnRead bool, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		handlers:    handlers,
		sweepOnRead: sweepOnRead,
		logger:      logger.With("component", "http"),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *Server) sweepBeforeRead(ctx context.Context) {
	if !s.sweepOnRead || s.handlers.SweepStaleShipments == nil {
		return
	}

	cmd, err := commands.NewSweepStaleShipmentsCommand(s.now(), commands.SweepTriggerRead)
	if err == nil {
		_, err = s.handlers.SweepStaleShipments.Handle(ctx, cmd)
	}
	if err != nil {
		s.logger.WarnContext(ctx, "stale shipment sweep before read failed", "error", err)
	}
}

// domainID converts an identifier bound by the generated wrappers.
func domainID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}
