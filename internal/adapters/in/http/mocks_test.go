package http_test

import (
	"context"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/mock"
)

type MockChangeOrderStatusHandler struct{ mock.Mock }

func (m *MockChangeOrderStatusHandler) Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockBulkChangeOrderStatusHandler struct{ mock.Mock }

func (m *MockBulkChangeOrderStatusHandler) Handle(
	ctx context.Context,
	cmd commands.BulkChangeOrderStatusCommand,
) (commands.BulkChangeOrderStatusResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.BulkChangeOrderStatusResult), args.Error(1)
}

type MockPlaceOrderHandler struct{ mock.Mock }

func (m *MockPlaceOrderHandler) Handle(ctx context.Context, cmd commands.PlaceOrderCommand) (commands.PlaceOrderResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.PlaceOrderResult), args.Error(1)
}

type MockSweepHandler struct{ mock.Mock }

func (m *MockSweepHandler) Handle(
	ctx context.Context,
	cmd commands.SweepStaleShipmentsCommand,
) (commands.SweepStaleShipmentsResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.SweepStaleShipmentsResult), args.Error(1)
}

type MockSetReviewVisibilityHandler struct{ mock.Mock }

func (m *MockSetReviewVisibilityHandler) Handle(ctx context.Context, cmd commands.SetReviewVisibilityCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockListOrdersHandler struct{ mock.Mock }

func (m *MockListOrdersHandler) Handle(ctx context.Context, query queries.ListOrdersQuery) (queries.ListOrdersQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.ListOrdersQueryResponse), args.Error(1)
}

type MockGetMyOrdersHandler struct{ mock.Mock }

func (m *MockGetMyOrdersHandler) Handle(ctx context.Context, query queries.GetMyOrdersQuery) ([]queries.OrderView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]queries.OrderView), args.Error(1)
}

type MockGetProductReviewsHandler struct{ mock.Mock }

func (m *MockGetProductReviewsHandler) Handle(
	ctx context.Context,
	query queries.GetProductReviewsQuery,
) ([]queries.ReviewView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]queries.ReviewView), args.Error(1)
}

type MockReplyToReviewHandler struct{ mock.Mock }

func (m *MockReplyToReviewHandler) Handle(ctx context.Context, cmd commands.ReplyToReviewCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockEditReviewReplyHandler struct{ mock.Mock }

func (m *MockEditReviewReplyHandler) Handle(ctx context.Context, cmd commands.EditReviewReplyCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockDeleteReviewReplyHandler struct{ mock.Mock }

func (m *MockDeleteReviewReplyHandler) Handle(ctx context.Context, cmd commands.DeleteReviewReplyCommand) error {
	return m.Called(ctx, cmd).Error(0)
}
