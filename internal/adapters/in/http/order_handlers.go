package http

import (
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// PlaceOrder handles POST /api/orders.
func (s *Server) PlaceOrder(c echo.Context) error {
	var req servers.PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	identity, _ := identityFrom(c)

	items := make([]commands.PlaceOrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		productID, err := domainID(item.ProductId)
		if err != nil {
			return err
		}
		items = append(items, commands.PlaceOrderItem{ProductID: productID, Quantity: item.Quantity})
	}

	cmd, err := commands.NewPlaceOrderCommand(
		identity.UserID,
		stringOrEmpty(req.CustomerName),
		items,
		string(req.PaymentMethod),
	)
	if err != nil {
		return err
	}
	result, err := s.handlers.PlaceOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, servers.PlaceOrderResponse{Id: result.OrderID.Bytes(), OrderCode: result.OrderCode})
}

// ListOrders handles GET /api/orders.
func (s *Server) ListOrders(c echo.Context, params servers.ListOrdersParams) error {
	query, err := queries.NewListOrdersQuery(listOrdersParams(params))
	if err != nil {
		return err
	}

	s.sweepBeforeRead(c.Request().Context())

	page, err := s.handlers.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, servers.ListOrdersResponse{
		Orders:      toOrderResponses(page.Orders),
		CurrentPage: page.CurrentPage,
		TotalPages:  page.TotalPages,
		Total:       page.Total,
	})
}

// ListAllOrders handles GET /api/orders/all.
func (s *Server) ListAllOrders(c echo.Context) error {
	s.sweepBeforeRead(c.Request().Context())

	views, err := s.handlers.ListAllOrders.Handle(c.Request().Context(), queries.NewListAllOrdersQuery())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponses(views))
}

// GetMyOrders handles GET /api/orders/my-orders.
func (s *Server) GetMyOrders(c echo.Context) error {
	identity, _ := identityFrom(c)

	query, err := queries.NewGetMyOrdersQuery(identity.UserID)
	if err != nil {
		return err
	}
	views, err := s.handlers.GetMyOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponses(views))
}

// GetOrder handles GET /api/orders/:id.
func (s *Server) GetOrder(c echo.Context, id openapi_types.UUID) error {
	identity, _ := identityFrom(c)
	orderID, err := domainID(id)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(orderID, identity.UserID, identity.IsStaff())
	if err != nil {
		return err
	}
	view, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponse(view))
}

// DeleteOrder handles DELETE /api/orders/:id.
func (s *Server) DeleteOrder(c echo.Context, id openapi_types.UUID) error {
	orderID, err := domainID(id)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return err
	}
	if err = s.handlers.DeleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ChangeOrderStatus handles PATCH /api/orders/:id/status.
func (s *Server) ChangeOrderStatus(c echo.Context, id openapi_types.UUID) error {
	identity, _ := identityFrom(c)
	orderID, err := domainID(id)
	if err != nil {
		return err
	}
	var req servers.ChangeStatusRequest
	if err = c.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, string(req.Status), identity.Actor())
	if err != nil {
		return err
	}
	if err = s.handlers.ChangeOrderStatus.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// BulkChangeOrderStatus handles PATCH /api/orders/bulk-status. Orders updated
// before a mid-batch failure stay committed, so the error body lists them
// next to the failure.
func (s *Server) BulkChangeOrderStatus(c echo.Context) error {
	identity, _ := identityFrom(c)
	var req servers.BulkChangeStatusRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	ids := make([]kernel.UUID, 0, len(req.Ids))
	for _, raw := range req.Ids {
		id, err := domainID(raw)
		if err != nil {
			return err
		}
		ids = append(ids, id)
	}

	cmd, err := commands.NewBulkChangeOrderStatusCommand(ids, string(req.Status), identity.Actor())
	if err != nil {
		return err
	}
	result, err := s.handlers.BulkChangeOrderStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		code := statusFor(err)
		return c.JSON(code, servers.BulkChangeStatusError{
			Code:    code,
			Message: clientMessage(s.logger, c, code, err),
			Updated: apiIDs(result.Updated),
			Skipped: apiIDs(result.Skipped),
		})
	}

	return c.JSON(http.StatusOK, servers.BulkChangeStatusResponse{
		Updated: apiIDs(result.Updated),
		Skipped: apiIDs(result.Skipped),
	})
}

// CancelOrderByUser handles PATCH /api/orders/cancel-by-user/:id.
func (s *Server) CancelOrderByUser(c echo.Context, id openapi_types.UUID) error {
	identity, _ := identityFrom(c)
	orderID, err := domainID(id)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCancelOrderByUserCommand(orderID, identity.UserID)
	if err != nil {
		return err
	}
	if err = s.handlers.CancelOrderByUser.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ConfirmOrderDelivered handles PATCH /api/orders/:id/confirm-delivered.
func (s *Server) ConfirmOrderDelivered(c echo.Context, id openapi_types.UUID) error {
	identity, _ := identityFrom(c)
	orderID, err := domainID(id)
	if err != nil {
		return err
	}

	cmd, err := commands.NewConfirmOrderDeliveredCommand(orderID, identity.UserID)
	if err != nil {
		return err
	}
	if err = s.handlers.ConfirmOrderDelivered.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func listOrdersParams(p servers.ListOrdersParams) queries.ListOrdersParams {
	var params queries.ListOrdersParams
	if p.Page != nil {
		params.Page = *p.Page
	}
	if p.Limit != nil {
		params.Limit = *p.Limit
	}
	if p.From != nil {
		params.From = &p.From.Time
	}
	if p.To != nil {
		params.To = &p.To.Time
	}
	if p.Status != nil {
		params.Status = string(*p.Status)
	}
	if p.PaymentMethod != nil {
		params.PaymentMethod = string(*p.PaymentMethod)
	}
	if p.Search != nil {
		params.Search = *p.Search
	}
	return params
}
