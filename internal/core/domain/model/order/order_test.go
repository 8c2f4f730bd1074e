package order_test

import (
	"strings"
	"testing"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var placedAt = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func mustItem(t *testing.T, qty int, price string) order.LineItem {
	t.Helper()
	item, err := order.NewLineItem(kernel.NewUUID(), qty, decimal.RequireFromString(price))
	require.NoError(t, err)
	return item
}

func newProcessingOrder(t *testing.T, owner kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		owner,
		"  Amuro Ray  ",
		"ORD-TEST0001",
		[]order.LineItem{mustItem(t, 2, "45.50"), mustItem(t, 1, "120.00")},
		order.PaymentOnline,
		placedAt,
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	owner := kernel.NewUUID()

	t.Run("should start in Processing with one log entry by the buyer", func(t *testing.T) {
		o := newProcessingOrder(t, owner)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Processing, o.Status())
		assert.True(t, o.TotalAmount().Equal(decimal.RequireFromString("211.00")))
		assert.Nil(t, o.DeliveredAt())
		assert.Equal(t, placedAt, o.CreatedAt())
		assert.Equal(t, "Amuro Ray", o.CustomerName())

		log := o.StatusLog()
		require.Len(t, log, 1)
		assert.Equal(t, order.Processing, log[0].Status())
		actorID, ok := log[0].ChangedBy().UserID()
		require.True(t, ok)
		assert.True(t, actorID.IsEqual(owner))
	})

	t.Run("should join every validation error", func(t *testing.T) {
		o, err := order.NewOrder(kernel.UUID{}, kernel.UUID{}, "", " ", nil, order.PaymentMethod("cash"), time.Time{})

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "orderCode")
		assert.Contains(t, err.Error(), "items")
		assert.Contains(t, err.Error(), "paymentMethod")
	})

	t.Run("should reject an overlong customer name", func(t *testing.T) {
		name := strings.Repeat("ガ", order.MaxCustomerNameLength+1)
		_, err := order.NewOrder(kernel.NewUUID(), owner, name, "ORD-1", []order.LineItem{mustItem(t, 1, "1.00")}, order.PaymentOffline, placedAt)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should accept a customer name at the length limit", func(t *testing.T) {
		name := strings.Repeat("ガ", order.MaxCustomerNameLength)
		o, err := order.NewOrder(kernel.NewUUID(), owner, name, "ORD-1", []order.LineItem{mustItem(t, 1, "1.00")}, order.PaymentOffline, placedAt)

		require.NoError(t, err)
		assert.Equal(t, name, o.CustomerName())
	})

	t.Run("should reject zero-value line items", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), owner, "", "ORD-1", []order.LineItem{{}}, order.PaymentOffline, placedAt)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewLineItem(t *testing.T) {
	_, err := order.NewLineItem(kernel.NewUUID(), 0, decimal.NewFromInt(1))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = order.NewLineItem(kernel.NewUUID(), 1, decimal.NewFromInt(-1))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	item, err := order.NewLineItem(kernel.NewUUID(), 3, decimal.RequireFromString("9.99"))
	require.NoError(t, err)
	assert.True(t, item.Subtotal().Equal(decimal.RequireFromString("29.97")))
}

func TestNewOrderCode(t *testing.T) {
	code := order.NewOrderCode()

	assert.Regexp(t, `^ORD-[0-9A-F]{8}$`, code)
	assert.NotEqual(t, code, order.NewOrderCode())
}

func TestOrder_ChangeStatus(t *testing.T) {
	staff := order.UserActor(kernel.NewUUID())

	t.Run("should append exactly one entry per change", func(t *testing.T) {
		o := newProcessingOrder(t, kernel.NewUUID())
		shippedAt := placedAt.Add(time.Hour)

		require.NoError(t, o.ChangeStatus(order.Shipping, staff, shippedAt))

		assert.Equal(t, order.Shipping, o.Status())
		log := o.StatusLog()
		require.Len(t, log, 2)
		assert.Equal(t, order.Shipping, log[1].Status())
		assert.Equal(t, shippedAt, log[1].ChangedAt())
		assert.Equal(t, shippedAt, o.UpdatedAt())
		assert.Nil(t, o.DeliveredAt())
	})

	t.Run("should set deliveredAt once and keep it through Returned", func(t *testing.T) {
		o := newProcessingOrder(t, kernel.NewUUID())
		deliveredAt := placedAt.Add(48 * time.Hour)

		require.NoError(t, o.ChangeStatus(order.Shipping, staff, placedAt.Add(time.Hour)))
		require.NoError(t, o.ChangeStatus(order.Delivered, staff, deliveredAt))
		require.NoError(t, o.ChangeStatus(order.Returned, staff, deliveredAt.Add(time.Hour)))
		require.NoError(t, o.ChangeStatus(order.Refunded, staff, deliveredAt.Add(2*time.Hour)))

		require.NotNil(t, o.DeliveredAt())
		assert.Equal(t, deliveredAt, *o.DeliveredAt())
		assert.Len(t, o.StatusLog(), 5)
		assert.True(t, o.Status().IsTerminal())
	})

	t.Run("should leave the order untouched on a rejected move", func(t *testing.T) {
		o := newProcessingOrder(t, kernel.NewUUID())

		err := o.ChangeStatus(order.Delivered, staff, placedAt.Add(time.Hour))

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Processing, o.Status())
		assert.Len(t, o.StatusLog(), 1)
	})

	t.Run("should reject the zero actor", func(t *testing.T) {
		o := newProcessingOrder(t, kernel.NewUUID())

		err := o.ChangeStatus(order.Shipping, order.Actor{}, placedAt)

		require.ErrorIs(t, err, order.ErrActorIsNotConstructed)
	})

	t.Run("should clamp timestamps older than the last entry", func(t *testing.T) {
		o := newProcessingOrder(t, kernel.NewUUID())

		require.NoError(t, o.ChangeStatus(order.Shipping, staff, placedAt.Add(-time.Hour)))

		assert.Equal(t, placedAt, o.StatusLog()[1].ChangedAt())
	})
}

func TestOrder_CancelByOwner(t *testing.T) {
	owner := kernel.NewUUID()

	t.Run("should cancel a Processing order", func(t *testing.T) {
		o := newProcessingOrder(t, owner)

		require.NoError(t, o.CancelByOwner(owner, placedAt.Add(time.Minute)))

		assert.Equal(t, order.Canceled, o.Status())
		by, ok := o.StatusLog()[1].ChangedBy().UserID()
		require.True(t, ok)
		assert.True(t, by.IsEqual(owner))
	})

	t.Run("should check ownership before status", func(t *testing.T) {
		o := newProcessingOrder(t, owner)
		require.NoError(t, o.ChangeStatus(order.Shipping, order.SystemActor(), placedAt))

		err := o.CancelByOwner(kernel.NewUUID(), placedAt)

		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("should refuse once shipped", func(t *testing.T) {
		o := newProcessingOrder(t, owner)
		require.NoError(t, o.ChangeStatus(order.Shipping, order.SystemActor(), placedAt))

		err := o.CancelByOwner(owner, placedAt)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Shipping, o.Status())
	})
}

func TestOrder_ConfirmDelivered(t *testing.T) {
	owner := kernel.NewUUID()

	t.Run("should deliver a Shipping order", func(t *testing.T) {
		o := newProcessingOrder(t, owner)
		require.NoError(t, o.ChangeStatus(order.Shipping, order.SystemActor(), placedAt))
		confirmedAt := placedAt.Add(72 * time.Hour)

		require.NoError(t, o.ConfirmDelivered(owner, confirmedAt))

		assert.Equal(t, order.Delivered, o.Status())
		require.NotNil(t, o.DeliveredAt())
		assert.Equal(t, confirmedAt, *o.DeliveredAt())
	})

	t.Run("should refuse a non-owner", func(t *testing.T) {
		o := newProcessingOrder(t, owner)

		require.ErrorIs(t, o.ConfirmDelivered(kernel.NewUUID(), placedAt), errs.ErrForbidden)
	})

	t.Run("should refuse a Processing order", func(t *testing.T) {
		o := newProcessingOrder(t, owner)

		require.ErrorIs(t, o.ConfirmDelivered(owner, placedAt), errs.ErrInvalidTransition)
	})
}

func TestOrder_MarkDeliveredBySystem(t *testing.T) {
	o := newProcessingOrder(t, kernel.NewUUID())
	require.ErrorIs(t, o.MarkDeliveredBySystem(placedAt), errs.ErrInvalidTransition)

	require.NoError(t, o.ChangeStatus(order.Shipping, order.SystemActor(), placedAt))
	require.NoError(t, o.MarkDeliveredBySystem(placedAt.Add(16*24*time.Hour)))

	last := o.StatusLog()[2]
	assert.Equal(t, order.Delivered, last.Status())
	assert.True(t, last.ChangedBy().IsSystem())
	assert.NotNil(t, o.DeliveredAt())
}

func TestOrder_ShippedAt(t *testing.T) {
	t.Run("should use the latest Shipping entry", func(t *testing.T) {
		o := newProcessingOrder(t, kernel.NewUUID())
		shipped := placedAt.Add(5 * time.Hour)
		require.NoError(t, o.ChangeStatus(order.Shipping, order.SystemActor(), shipped))

		assert.Equal(t, shipped, o.ShippedAt())
	})

	t.Run("should fall back to updatedAt without a Shipping entry", func(t *testing.T) {
		updated := placedAt.Add(24 * time.Hour)
		entry, err := order.NewStatusLogEntry(order.Processing, placedAt, order.SystemActor())
		require.NoError(t, err)
		o, err := order.RestoreOrder(order.State{
			ID:            kernel.NewUUID(),
			UserID:        kernel.NewUUID(),
			OrderCode:     "ORD-LEGACY01",
			Items:         []order.LineItem{mustItem(t, 1, "10")},
			TotalAmount:   decimal.NewFromInt(10),
			PaymentMethod: order.PaymentOffline,
			Status:        order.Processing,
			StatusLog:     []order.StatusLogEntry{entry},
			CreatedAt:     placedAt,
			UpdatedAt:     updated,
		})
		require.NoError(t, err)

		assert.Equal(t, updated, o.ShippedAt())
	})
}

func TestRestoreOrder(t *testing.T) {
	processing, err := order.NewStatusLogEntry(order.Processing, placedAt, order.SystemActor())
	require.NoError(t, err)
	shipping, err := order.NewStatusLogEntry(order.Shipping, placedAt.Add(time.Hour), order.SystemActor())
	require.NoError(t, err)

	base := func() order.State {
		return order.State{
			ID:            kernel.NewUUID(),
			UserID:        kernel.NewUUID(),
			OrderCode:     "ORD-RESTORE1",
			Items:         []order.LineItem{mustItem(t, 1, "10")},
			TotalAmount:   decimal.NewFromInt(10),
			PaymentMethod: order.PaymentOnline,
			Status:        order.Shipping,
			StatusLog:     []order.StatusLogEntry{processing, shipping},
			CreatedAt:     placedAt,
		}
	}

	t.Run("should restore a consistent order", func(t *testing.T) {
		o, err := order.RestoreOrder(base())

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Shipping, o.Status())
		assert.Equal(t, placedAt, o.UpdatedAt())
	})

	t.Run("should reject an empty log", func(t *testing.T) {
		s := base()
		s.StatusLog = nil

		_, err := order.RestoreOrder(s)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject a log that disagrees with the status", func(t *testing.T) {
		s := base()
		s.Status = order.Delivered

		_, err := order.RestoreOrder(s)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject an unordered log", func(t *testing.T) {
		s := base()
		s.StatusLog = []order.StatusLogEntry{shipping, processing}
		s.Status = order.Processing

		_, err := order.RestoreOrder(s)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Validate(t *testing.T) {
	var o *order.Order
	assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	assert.ErrorIs(t, (&order.Order{}).Validate(), order.ErrOrderIsNotConstructed)
}

func TestActor(t *testing.T) {
	assert.True(t, order.SystemActor().IsSystem())
	assert.NoError(t, order.SystemActor().Validate())
	_, ok := order.SystemActor().UserID()
	assert.False(t, ok)

	assert.Error(t, order.UserActor(kernel.UUID{}).Validate())
	assert.ErrorIs(t, order.Actor{}.Validate(), order.ErrActorIsNotConstructed)
	assert.Equal(t, "system", order.SystemActor().String())
}
