package commands_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.DiscardHandler)

func TestNewChangeOrderStatusCommand(t *testing.T) {
	_, err := commands.NewChangeOrderStatusCommand(kernel.UUID{}, "Shipping", order.SystemActor())
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = commands.NewChangeOrderStatusCommand(kernel.NewUUID(), "Shipping", order.Actor{})
	require.ErrorIs(t, err, order.ErrActorIsNotConstructed)

	require.ErrorIs(t, commands.ChangeOrderStatusCommand{}.Validate(), commands.ErrChangeOrderStatusCommandIsNotConstructed)
}

func TestChangeOrderStatusCommandHandler_Handle(t *testing.T) {
	staff := order.UserActor(kernel.NewUUID())
	owner := kernel.NewUUID()

	t.Run("should transition, persist and notify the owner", func(t *testing.T) {
		ctx := t.Context()
		o := newOrderIn(t, owner, order.Processing, time.Now().Add(-time.Hour))
		cmd, err := commands.NewChangeOrderStatusCommand(o.ID(), "Shipping", staff)
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		factory, uow := orderUoWWith(repo)
		repo.On("Get", ctx, o.ID()).Return(o, nil).Once()
		repo.On("Update", ctx, o).Return(nil).Once()
		notifier := new(MockNotifier)
		notifier.On("NotifyUser", ctx, owner, notification(`📦 [#ORD-CMDTEST1] Status updated: "Shipping"`)).Return(nil).Once()

		h := commands.NewChangeOrderStatusCommandHandler(factory, notifier, discardLogger, nil)
		require.NoError(t, h.Handle(ctx, cmd))

		assert.Equal(t, order.Shipping, o.Status())
		log := o.StatusLog()
		require.Len(t, log, 2)
		by, ok := log[1].ChangedBy().UserID()
		require.True(t, ok)
		assert.Equal(t, staff, order.UserActor(by))
		repo.AssertExpectations(t)
		notifier.AssertExpectations(t)
		uow.AssertCalled(t, "Commit", ctx)
	})

	t.Run("should set deliveredAt when staff delivers", func(t *testing.T) {
		ctx := t.Context()
		o := newOrderIn(t, owner, order.Shipping, time.Now().Add(-time.Hour))
		cmd, _ := commands.NewChangeOrderStatusCommand(o.ID(), "Delivered", staff)

		repo := new(MockOrderRepository)
		factory, _ := orderUoWWith(repo)
		repo.On("Get", ctx, o.ID()).Return(o, nil)
		repo.On("Update", ctx, o).Return(nil)
		notifier := new(MockNotifier)
		notifier.On("NotifyUser", ctx, owner, mock.Anything).Return(nil)

		h := commands.NewChangeOrderStatusCommandHandler(factory, notifier, discardLogger, nil)
		require.NoError(t, h.Handle(ctx, cmd))

		assert.NotNil(t, o.DeliveredAt())
	})

	t.Run("should report a missing order before an unknown status", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		cmd, _ := commands.NewChangeOrderStatusCommand(id, "Teleported", staff)

		repo := new(MockOrderRepository)
		factory, uow := orderUoWWith(repo)
		repo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("order", id.String()))

		h := commands.NewChangeOrderStatusCommandHandler(factory, new(MockNotifier), discardLogger, nil)
		err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("should reject an unknown status as invalid input", func(t *testing.T) {
		ctx := t.Context()
		o := newOrderIn(t, owner, order.Processing, time.Now())
		cmd, _ := commands.NewChangeOrderStatusCommand(o.ID(), "Teleported", staff)

		repo := new(MockOrderRepository)
		factory, _ := orderUoWWith(repo)
		repo.On("Get", ctx, o.ID()).Return(o, nil)

		h := commands.NewChangeOrderStatusCommandHandler(factory, new(MockNotifier), discardLogger, nil)

		require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrValueIsInvalid)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("should reject moves out of terminal statuses without writing or notifying", func(t *testing.T) {
		ctx := t.Context()
		o := newOrderIn(t, owner, order.Canceled, time.Now().Add(-time.Hour))
		cmd, _ := commands.NewChangeOrderStatusCommand(o.ID(), "Shipping", staff)

		repo := new(MockOrderRepository)
		factory, uow := orderUoWWith(repo)
		repo.On("Get", ctx, o.ID()).Return(o, nil)
		notifier := new(MockNotifier)

		h := commands.NewChangeOrderStatusCommandHandler(factory, notifier, discardLogger, nil)
		err := h.Handle(ctx, cmd)

		var transitionErr *errs.InvalidTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, "Canceled", transitionErr.From)
		assert.Len(t, o.StatusLog(), 2)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
		notifier.AssertNotCalled(t, "NotifyUser", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should not fail when the notification fails", func(t *testing.T) {
		ctx := t.Context()
		o := newOrderIn(t, owner, order.Processing, time.Now().Add(-time.Hour))
		cmd, _ := commands.NewChangeOrderStatusCommand(o.ID(), "Canceled", staff)

		repo := new(MockOrderRepository)
		factory, _ := orderUoWWith(repo)
		repo.On("Get", ctx, o.ID()).Return(o, nil)
		repo.On("Update", ctx, o).Return(nil)
		notifier := new(MockNotifier)
		notifier.On("NotifyUser", ctx, owner, mock.Anything).Return(errors.New("queue closed"))

		h := commands.NewChangeOrderStatusCommandHandler(factory, notifier, discardLogger, nil)

		require.NoError(t, h.Handle(ctx, cmd))
		assert.Equal(t, order.Canceled, o.Status())
	})

	t.Run("should not notify when the commit fails", func(t *testing.T) {
		ctx := t.Context()
		o := newOrderIn(t, owner, order.Processing, time.Now().Add(-time.Hour))
		cmd, _ := commands.NewChangeOrderStatusCommand(o.ID(), "Shipping", staff)

		repo := new(MockOrderRepository)
		repo.On("Get", ctx, o.ID()).Return(o, nil)
		repo.On("Update", ctx, o).Return(nil)
		uow := new(MockOrderUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(repo).Once(),
			uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()
		notifier := new(MockNotifier)

		h := commands.NewChangeOrderStatusCommandHandler(factory, notifier, discardLogger, nil)

		require.EqualError(t, h.Handle(ctx, cmd), "commit error")
		uow.AssertExpectations(t)
		notifier.AssertNotCalled(t, "NotifyUser", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should reject a command built without the constructor", func(t *testing.T) {
		h := commands.NewChangeOrderStatusCommandHandler(new(MockOrderUoWFactory), nil, nil, nil)

		require.ErrorIs(t, h.Handle(t.Context(), commands.ChangeOrderStatusCommand{}), commands.ErrChangeOrderStatusCommandIsNotConstructed)
	})
}
