package cmd

import (
	"log/slog"

	api "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
	"storefront/internal/jobs"
	"storefront/internal/pkg/metrics"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers.
type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	notifier   ports.Notifier
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

func NewCompositionRoot(
	cfg Config,
	gormDB *gorm.DB,
	notifier ports.Notifier,
	logger *slog.Logger,
	m *metrics.Metrics,
) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notifier,
		logger:     logger,
		metrics:    m,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uowFactoryForAll() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() *commands.PlaceOrderCommandHandler {
	h := commands.NewPlaceOrderCommandHandler(c.uowFactoryForAll())
	return &h
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() *commands.ChangeOrderStatusCommandHandler {
	h := commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory(), c.notifier, c.logger, c.metrics)
	return &h
}

func (c *CompositionRoot) CreateBulkChangeOrderStatusCommandHandler() *commands.BulkChangeOrderStatusCommandHandler {
	h := commands.NewBulkChangeOrderStatusCommandHandler(c.orderUoWFactory(), c.notifier, c.logger, c.metrics)
	return &h
}

func (c *CompositionRoot) CreateCancelOrderByUserCommandHandler() *commands.CancelOrderByUserCommandHandler {
	h := commands.NewCancelOrderByUserCommandHandler(c.orderUoWFactory(), c.notifier, c.logger, c.metrics)
	return &h
}

func (c *CompositionRoot) CreateConfirmOrderDeliveredCommandHandler() *commands.ConfirmOrderDeliveredCommandHandler {
	h := commands.NewConfirmOrderDeliveredCommandHandler(c.orderUoWFactory(), c.notifier, c.logger, c.metrics)
	return &h
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() *commands.DeleteOrderCommandHandler {
	h := commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateSweepStaleShipmentsCommandHandler() *commands.SweepStaleShipmentsCommandHandler {
	h := commands.NewSweepStaleShipmentsCommandHandler(
		c.orderUoWFactory(),
		services.NewShipmentAging(c.cfg.SweepStaleAfterDays),
		c.notifier,
		c.logger,
		c.metrics,
	)
	return &h
}

func (c *CompositionRoot) CreateCreateReviewCommandHandler() *commands.CreateReviewCommandHandler {
	h := commands.NewCreateReviewCommandHandler(c.uowFactoryForAll(), services.NewRatingCalculator())
	return &h
}

func (c *CompositionRoot) CreateUpdateReviewCommandHandler() *commands.UpdateReviewCommandHandler {
	h := commands.NewUpdateReviewCommandHandler(c.uowFactoryForAll(), services.NewRatingCalculator())
	return &h
}

func (c *CompositionRoot) CreateDeleteReviewCommandHandler() *commands.DeleteReviewCommandHandler {
	h := commands.NewDeleteReviewCommandHandler(c.uowFactoryForAll(), services.NewRatingCalculator())
	return &h
}

func (c *CompositionRoot) CreateSetReviewVisibilityCommandHandler() *commands.SetReviewVisibilityCommandHandler {
	h := commands.NewSetReviewVisibilityCommandHandler(c.uowFactoryForAll(), services.NewRatingCalculator())
	return &h
}

func (c *CompositionRoot) CreateReplyToReviewCommandHandler() *commands.ReplyToReviewCommandHandler {
	h := commands.NewReplyToReviewCommandHandler(c.uowFactoryForAll())
	return &h
}

func (c *CompositionRoot) CreateEditReviewReplyCommandHandler() *commands.EditReviewReplyCommandHandler {
	h := commands.NewEditReviewReplyCommandHandler(c.uowFactoryForAll())
	return &h
}

func (c *CompositionRoot) CreateDeleteReviewReplyCommandHandler() *commands.DeleteReviewReplyCommandHandler {
	h := commands.NewDeleteReviewReplyCommandHandler(c.uowFactoryForAll())
	return &h
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMyOrdersQueryHandler() queries.GetMyOrdersQueryHandler {
	return queries.NewGetMyOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListAllOrdersQueryHandler() queries.ListAllOrdersQueryHandler {
	return queries.NewListAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductReviewsQueryHandler() queries.GetProductReviewsQueryHandler {
	return queries.NewGetProductReviewsQueryHandler(c.gormDB)
}

// HTTPHandlers returns every use case served by the HTTP adapter.
func (c *CompositionRoot) HTTPHandlers() api.Handlers {
	return api.Handlers{
		PlaceOrder:            c.CreatePlaceOrderCommandHandler(),
		ChangeOrderStatus:     c.CreateChangeOrderStatusCommandHandler(),
		BulkChangeOrderStatus: c.CreateBulkChangeOrderStatusCommandHandler(),
		CancelOrderByUser:     c.CreateCancelOrderByUserCommandHandler(),
		ConfirmOrderDelivered: c.CreateConfirmOrderDeliveredCommandHandler(),
		DeleteOrder:           c.CreateDeleteOrderCommandHandler(),
		SweepStaleShipments:   c.CreateSweepStaleShipmentsCommandHandler(),

		CreateReview:        c.CreateCreateReviewCommandHandler(),
		UpdateReview:        c.CreateUpdateReviewCommandHandler(),
		DeleteReview:        c.CreateDeleteReviewCommandHandler(),
		SetReviewVisibility: c.CreateSetReviewVisibilityCommandHandler(),
		ReplyToReview:       c.CreateReplyToReviewCommandHandler(),
		EditReviewReply:     c.CreateEditReviewReplyCommandHandler(),
		DeleteReviewReply:   c.CreateDeleteReviewReplyCommandHandler(),

		GetOrder:          c.CreateGetOrderQueryHandler(),
		GetMyOrders:       c.CreateGetMyOrdersQueryHandler(),
		ListOrders:        c.CreateListOrdersQueryHandler(),
		ListAllOrders:     c.CreateListAllOrdersQueryHandler(),
		GetProductReviews: c.CreateGetProductReviewsQueryHandler(),
	}
}

// CreateJobManager schedules the stale-shipment sweep on cfg.SweepSchedule.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	sweep := jobs.NewStaleShipmentSweepJob(c.CreateSweepStaleShipmentsCommandHandler(), c.cfg.SweepSchedule, c.logger)
	return jobs.NewJobManager(sweep)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
