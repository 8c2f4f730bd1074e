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

// GetProductReviews handles GET /api/reviews/product/:productId.
func (s *Server) GetProductReviews(c echo.Context, id openapi_types.UUID) error {
	productID, err := domainID(id)
	if err != nil {
		return err
	}

	var viewer *kernel.UUID
	if identity, ok := identityFrom(c); ok {
		viewer = &identity.UserID
	}

	query, err := queries.NewGetProductReviewsQuery(productID, viewer)
	if err != nil {
		return err
	}
	views, err := s.handlers.GetProductReviews.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	out := make([]servers.Review, len(views))
	for i, v := range views {
		out[i] = toReviewResponse(v)
	}
	return c.JSON(http.StatusOK, out)
}

// CreateReview handles POST /api/reviews.
func (s *Server) CreateReview(c echo.Context) error {
	identity, _ := identityFrom(c)
	var req servers.CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	productID, err := domainID(req.ProductId)
	if err != nil {
		return err
	}
	orderID, err := domainID(req.OrderId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateReviewCommand(identity.UserID, productID, orderID, req.Rating, stringOrEmpty(req.Comment))
	if err != nil {
		return err
	}
	reviewID, err := s.handlers.CreateReview.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, servers.CreateReviewResponse{Id: reviewID.Bytes()})
}

// UpdateReview handles PATCH /api/reviews/:id.
func (s *Server) UpdateReview(c echo.Context, id openapi_types.UUID) error {
	identity, _ := identityFrom(c)
	reviewID, err := domainID(id)
	if err != nil {
		return err
	}
	var req servers.UpdateReviewRequest
	if err = c.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateReviewCommand(reviewID, identity.UserID, req.Rating, stringOrEmpty(req.Comment))
	if err != nil {
		return err
	}
	if err = s.handlers.UpdateReview.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteReview handles DELETE /api/reviews/:id.
func (s *Server) DeleteReview(c echo.Context, id openapi_types.UUID) error {
	identity, _ := identityFrom(c)
	reviewID, err := domainID(id)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteReviewCommand(reviewID, identity.UserID)
	if err != nil {
		return err
	}
	if err = s.handlers.DeleteReview.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// SetReviewVisibility handles PATCH /api/reviews/:id/visibility.
func (s *Server) SetReviewVisibility(c echo.Context, id openapi_types.UUID) error {
	reviewID, err := domainID(id)
	if err != nil {
		return err
	}
	var req servers.ReviewVisibilityRequest
	if err = c.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewSetReviewVisibilityCommand(reviewID, req.IsHidden)
	if err != nil {
		return err
	}
	if err = s.handlers.SetReviewVisibility.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ReplyToReview handles POST /api/reviews/:id/reply.
func (s *Server) ReplyToReview(c echo.Context, id openapi_types.UUID) error {
	identity, _ := identityFrom(c)
	reviewID, err := domainID(id)
	if err != nil {
		return err
	}
	var req servers.ReplyRequest
	if err = c.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewReplyToReviewCommand(reviewID, identity.UserID, req.Content)
	if err != nil {
		return err
	}
	if err = s.handlers.ReplyToReview.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// EditReviewReply handles PATCH /api/reviews/:id/reply.
func (s *Server) EditReviewReply(c echo.Context, id openapi_types.UUID) error {
	identity, _ := identityFrom(c)
	reviewID, err := domainID(id)
	if err != nil {
		return err
	}
	var req servers.ReplyRequest
	if err = c.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewEditReviewReplyCommand(reviewID, identity.UserID, req.Content)
	if err != nil {
		return err
	}
	if err = s.handlers.EditReviewReply.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteReviewReply handles DELETE /api/reviews/:id/reply.
func (s *Server) DeleteReviewReply(c echo.Context, id openapi_types.UUID) error {
	reviewID, err := domainID(id)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteReviewReplyCommand(reviewID)
	if err != nil {
		return err
	}
	if err = s.handlers.DeleteReviewReply.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
