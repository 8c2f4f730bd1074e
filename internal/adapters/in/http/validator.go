package http

import (
	"context"
	"errors"
	"net/http"
	"slices"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
)

var (
	errAuthenticationRequired = errors.New("authentication required")
	errInsufficientRole       = errors.New("insufficient role")
)

// RequestValidator checks every request of an API operation against doc
// before it reaches the handler. The gatewayIdentity security scopes name the
// roles allowed to call an operation; an empty scope list admits any caller
// with an identity. Requests for paths doc does not describe pass through.
func RequestValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, err
	}
	options := &openapi3filter.Options{
		AuthenticationFunc: authenticate,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			route, pathParams, err := router.FindRoute(req)
			if errors.Is(err, routers.ErrPathNotFound) || errors.Is(err, routers.ErrMethodNotAllowed) {
				return next(c)
			}
			if err != nil {
				return err
			}

			err = openapi3filter.ValidateRequest(req.Context(), &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			})
			if err != nil {
				return validationError(err)
			}
			return next(c)
		}
	}, nil
}

func authenticate(ctx context.Context, input *openapi3filter.AuthenticationInput) error {
	identity, ok := IdentityFromContext(ctx)
	if !ok {
		return errAuthenticationRequired
	}
	if len(input.Scopes) == 0 {
		return nil
	}
	if !slices.Contains(input.Scopes, string(identity.Role)) {
		return errInsufficientRole
	}
	return nil
}

func validationError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errAuthenticationRequired):
		return echo.NewHTTPError(http.StatusUnauthorized, errAuthenticationRequired.Error())
	case errors.Is(err, errInsufficientRole):
		return echo.NewHTTPError(http.StatusForbidden, errInsufficientRole.Error())
	}
	return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
}
