package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

type PlaceOrderResult struct {
	OrderID   kernel.UUID
	OrderCode string
}

// PlaceOrderCommandHandler creates the order with unit prices taken from the
// product records and bumps each product's sold counter, all in one transaction.
type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewPlaceOrderCommandHandler(uowFactory UoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (PlaceOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return PlaceOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return PlaceOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	lineItems := make([]order.LineItem, 0, len(cmd.Items()))
	for _, item := range cmd.Items() {
		p, err := productRepo.Get(ctx, item.ProductID)
		if err != nil {
			return PlaceOrderResult{}, err
		}

		lineItem, err := order.NewLineItem(p.ID(), item.Quantity, p.Price())
		if err != nil {
			return PlaceOrderResult{}, err
		}
		lineItems = append(lineItems, lineItem)

		if err = p.RecordSale(item.Quantity); err != nil {
			return PlaceOrderResult{}, err
		}
		if err = productRepo.Update(ctx, p); err != nil {
			return PlaceOrderResult{}, err
		}
	}

	o, err := order.NewOrder(
		kernel.NewUUID(),
		cmd.UserID(),
		cmd.CustomerName(),
		order.NewOrderCode(),
		lineItems,
		cmd.PaymentMethod(),
		time.Now().UTC(),
	)
	if err != nil {
		return PlaceOrderResult{}, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return PlaceOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return PlaceOrderResult{}, err
	}

	return PlaceOrderResult{OrderID: o.ID(), OrderCode: o.OrderCode()}, nil
}
