package gateway

import (
    "github.com/labstack/echo/v4"

    "github.com/BhanuPrakash2047/live-easy/internal/config"
    "github.com/BhanuPrakash2047/live-easy/internal/handler"
    "github.com/BhanuPrakash2047/live-easy/internal/token"
)

// RegisterRoutes wires the gateway's route table onto the Echo
// instance.  /api/auth is proxied without authentication so login
// and registration stay reachable; /api/load and /api/booking pass
// through the gate first.  Every other path falls through to Echo's
// default 404.
func RegisterRoutes(e *echo.Echo, cfg config.Config) {
    codec := token.NewCodec(cfg.JWTSecret)
    gate := NewGate(codec, "/api/auth")

    e.GET("/healthz", handler.Health)

    authProxy := NewProxy(cfg.AuthURL, cfg.ClientTimeout)
    loadProxy := NewProxy(cfg.LoadURL, cfg.ClientTimeout)
    bookingProxy := NewProxy(cfg.BookingURL, cfg.ClientTimeout)

    e.Any("/api/auth*", authProxy.Handler, gate.Middleware())
    e.Any("/api/load*", loadProxy.Handler, gate.Middleware())
    e.Any("/api/booking*", bookingProxy.Handler, gate.Middleware())
}
