package commands_test

import (
	"strings"
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewPlaceOrderCommand(t *testing.T) {
	buyer := kernel.NewUUID()
	kit := kernel.NewUUID()

	t.Run("should merge repeated products", func(t *testing.T) {
		cmd, err := commands.NewPlaceOrderCommand(buyer, "", []commands.PlaceOrderItem{
			{ProductID: kit, Quantity: 1},
			{ProductID: kernel.NewUUID(), Quantity: 1},
			{ProductID: kit, Quantity: 2},
		}, "online")

		require.NoError(t, err)
		require.Len(t, cmd.Items(), 2)
		assert.Equal(t, 3, cmd.Items()[0].Quantity)
		assert.Equal(t, order.PaymentOnline, cmd.PaymentMethod())
	})

	t.Run("should join validation errors", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(kernel.UUID{}, "", nil, "bitcoin")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject zero quantities", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(buyer, "", []commands.PlaceOrderItem{{ProductID: kit}}, "offline")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should trim the customer name", func(t *testing.T) {
		cmd, err := commands.NewPlaceOrderCommand(buyer, "  Quattro Bajeena ", []commands.PlaceOrderItem{{ProductID: kit, Quantity: 1}}, "offline")

		require.NoError(t, err)
		assert.Equal(t, "Quattro Bajeena", cmd.CustomerName())
	})

	t.Run("should reject an overlong customer name", func(t *testing.T) {
		name := strings.Repeat("x", order.MaxCustomerNameLength+1)
		_, err := commands.NewPlaceOrderCommand(buyer, name, []commands.PlaceOrderItem{{ProductID: kit, Quantity: 1}}, "offline")

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestPlaceOrderCommandHandler_Handle(t *testing.T) {
	buyer := kernel.NewUUID()

	t.Run("should price items from the catalog and count sales", func(t *testing.T) {
		ctx := t.Context()
		kit, err := product.NewProduct(kernel.NewUUID(), "PG Unicorn", decimal.RequireFromString("199.99"))
		require.NoError(t, err)
		cmd, _ := commands.NewPlaceOrderCommand(buyer, "Mineva Zabi", []commands.PlaceOrderItem{{ProductID: kit.ID(), Quantity: 2}}, "online")

		orders := new(MockOrderRepository)
		products := new(MockProductRepository)
		factory, uow := uowWith(orders, new(MockReviewRepository), products)
		products.On("Get", ctx, kit.ID()).Return(kit, nil).Once()
		products.On("Update", ctx, kit).Return(nil).Once()

		var placed *order.Order
		orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) { placed = args.Get(1).(*order.Order) }).
			Return(nil).Once()

		h := commands.NewPlaceOrderCommandHandler(factory)
		result, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		require.NotNil(t, placed)
		assert.Equal(t, placed.ID(), result.OrderID)
		assert.Regexp(t, `^ORD-[0-9A-F]{8}$`, result.OrderCode)
		assert.True(t, placed.TotalAmount().Equal(decimal.RequireFromString("399.98")))
		assert.Equal(t, order.Processing, placed.Status())
		assert.True(t, placed.IsOwnedBy(buyer))
		assert.Equal(t, "Mineva Zabi", placed.CustomerName())
		assert.Equal(t, 2, kit.Sold())
		uow.AssertCalled(t, "Commit", ctx)
	})

	t.Run("should fail on unknown products", func(t *testing.T) {
		ctx := t.Context()
		missing := kernel.NewUUID()
		cmd, _ := commands.NewPlaceOrderCommand(buyer, "", []commands.PlaceOrderItem{{ProductID: missing, Quantity: 1}}, "offline")

		orders := new(MockOrderRepository)
		products := new(MockProductRepository)
		factory, uow := uowWith(orders, new(MockReviewRepository), products)
		products.On("Get", ctx, missing).Return(nil, errs.NewObjectNotFoundError("product", missing.String()))

		h := commands.NewPlaceOrderCommandHandler(factory)
		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})
}
