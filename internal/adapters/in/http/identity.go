package http

import (
	"context"
	"net/http"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Identity headers set by the gateway after it authenticates the caller.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleStaff    Role = "staff"
	RoleAdmin    Role = "admin"
)

func parseRole(raw string) (Role, bool) {
	switch r := Role(strings.ToLower(strings.TrimSpace(raw))); r {
	case "":
		return RoleCustomer, true
	case RoleCustomer, RoleStaff, RoleAdmin:
		return r, true
	default:
		return "", false
	}
}

// Identity is the authenticated caller of a request.
type Identity struct {
	UserID kernel.UUID
	Role   Role
}

// IsStaff reports whether the caller may act on orders it does not own.
func (i Identity) IsStaff() bool {
	return i.Role == RoleStaff || i.Role == RoleAdmin
}

func (i Identity) Actor() order.Actor {
	return order.UserActor(i.UserID)
}

type identityKey struct{}

// Identify reads the identity headers and stores the caller in the request
// context. Requests without X-User-ID pass through anonymously; malformed
// identity headers are rejected with 401.
func Identify() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			rawID := strings.TrimSpace(req.Header.Get(HeaderUserID))
			if rawID == "" {
				return next(c)
			}

			userID, err := kernel.UUIDFromString(rawID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid "+HeaderUserID+" header")
			}
			role, ok := parseRole(req.Header.Get(HeaderUserRole))
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid "+HeaderUserRole+" header")
			}

			ctx := context.WithValue(req.Context(), identityKey{}, Identity{UserID: userID, Role: role})
			c.SetRequest(req.WithContext(ctx))
			return next(c)
		}
	}
}

// IdentityFromContext returns the caller stored by Identify.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}

func identityFrom(c echo.Context) (Identity, bool) {
	return IdentityFromContext(c.Request().Context())
}
