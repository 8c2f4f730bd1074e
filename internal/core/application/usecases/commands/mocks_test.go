package commands_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/model/review"
	"storefront/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetAllInShippingStatus(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockReviewRepository struct{ mock.Mock }

func (m *MockReviewRepository) Add(ctx context.Context, r *review.Review) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReviewRepository) Update(ctx context.Context, r *review.Review) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReviewRepository) Get(ctx context.Context, id kernel.UUID) (*review.Review, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*review.Review)
	return r, args.Error(1)
}

func (m *MockReviewRepository) Exists(ctx context.Context, userID, productID, orderID kernel.UUID) (bool, error) {
	args := m.Called(ctx, userID, productID, orderID)
	return args.Bool(0), args.Error(1)
}

func (m *MockReviewRepository) GetVisibleRatings(ctx context.Context, productID kernel.UUID) ([]int, error) {
	args := m.Called(ctx, productID)
	ratings, _ := args.Get(0).([]int)
	return ratings, args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*product.Product)
	return p, args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ReviewRepository() ports.ReviewRepository {
	args := m.Called()
	return args.Get(0).(ports.ReviewRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) NotifyUser(ctx context.Context, userID kernel.UUID, n ports.Notification) error {
	args := m.Called(ctx, userID, n)
	return args.Error(0)
}

func (m *MockNotifier) NotifyAdminsAndStaffs(ctx context.Context, n ports.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

// orderUoWWith wires a factory that hands out one transactional order unit of work.
func orderUoWWith(repo *MockOrderRepository) (*MockOrderUoWFactory, *MockOrderUoW) {
	uow := new(MockOrderUoW)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("OrderRepository").Return(repo)
	uow.On("Commit", mock.Anything).Return(nil).Maybe()
	uow.On("Rollback", mock.Anything).Return(nil)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)
	return factory, uow
}

func uowWith(orders *MockOrderRepository, reviews *MockReviewRepository, products *MockProductRepository) (*MockUoWFactory, *MockUoW) {
	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("OrderRepository").Return(orders).Maybe()
	uow.On("ReviewRepository").Return(reviews).Maybe()
	uow.On("ProductRepository").Return(products).Maybe()
	uow.On("Commit", mock.Anything).Return(nil).Maybe()
	uow.On("Rollback", mock.Anything).Return(nil)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow)
	return factory, uow
}

func notification(message string) interface{} {
	return mock.MatchedBy(func(n ports.Notification) bool {
		return n.Message == message && n.Category == "order"
	})
}

// newOrderIn builds an order owned by owner and walks it to status through
// legal transitions, starting at placedAt.
func newOrderIn(t *testing.T, owner kernel.UUID, status order.Status, placedAt time.Time, productIDs ...kernel.UUID) *order.Order {
	t.Helper()

	if len(productIDs) == 0 {
		productIDs = []kernel.UUID{kernel.NewUUID()}
	}
	items := make([]order.LineItem, 0, len(productIDs))
	for _, pid := range productIDs {
		item, err := order.NewLineItem(pid, 1, decimal.NewFromInt(25))
		require.NoError(t, err)
		items = append(items, item)
	}

	o, err := order.NewOrder(kernel.NewUUID(), owner, "Char Aznable", "ORD-CMDTEST1", items, order.PaymentOnline, placedAt)
	require.NoError(t, err)

	path := map[order.Status][]order.Status{
		order.Processing: nil,
		order.Shipping:   {order.Shipping},
		order.Delivered:  {order.Shipping, order.Delivered},
		order.Canceled:   {order.Canceled},
		order.Returned:   {order.Shipping, order.Returned},
		order.Refunded:   {order.Shipping, order.Returned, order.Refunded},
	}
	for i, s := range path[status] {
		require.NoError(t, o.ChangeStatus(s, order.SystemActor(), placedAt.Add(time.Duration(i+1)*time.Hour)))
	}
	return o
}
