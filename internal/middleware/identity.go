// Package middleware provides shared request processing for the
// downstream services.  The gateway terminates authentication; by the
// time a request reaches the load or booking service its identity has
// been verified and travels as the userId/role headers the gate
// injected.  These helpers lift those headers into the Echo context
// and enforce role requirements.
package middleware

import (
    "net/http"

    "github.com/labstack/echo/v4"
)

// Context keys under which the verified identity is stored.
const (
    CtxUserID = "user_id"
    CtxRole   = "role"
)

// Identity extracts the gateway-injected identity headers into the
// request context.  Requests without them never passed the gate (or
// bypassed it), so they are rejected with 401.
func Identity() echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            userID := c.Request().Header.Get("userId")
            role := c.Request().Header.Get("role")
            if userID == "" || role == "" {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing identity"})
            }
            c.Set(CtxUserID, userID)
            c.Set(CtxRole, role)
            return next(c)
        }
    }
}

// RequireRole returns middleware that enforces that the caller holds
// one of the given roles.  It assumes Identity ran earlier in the
// chain.  Callers with a missing or unknown role receive 403.
func RequireRole(roles ...string) echo.MiddlewareFunc {
    allowed := make(map[string]bool, len(roles))
    for _, r := range roles {
        allowed[r] = true
    }
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            role, ok := c.Get(CtxRole).(string)
            if !ok || !allowed[role] {
                return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
            }
            return next(c)
        }
    }
}

// UserID returns the verified caller id stored by Identity, or "".
func UserID(c echo.Context) string {
    v, _ := c.Get(CtxUserID).(string)
    return v
}

// Role returns the verified caller role stored by Identity, or "".
func Role(c echo.Context) string {
    v, _ := c.Get(CtxRole).(string)
    return v
}
