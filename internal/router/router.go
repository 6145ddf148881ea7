package router // package router defines how HTTP routes are registered for each service

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/BhanuPrakash2047/live-easy/internal/handler"    // import the handlers that implement business logic
	"github.com/BhanuPrakash2047/live-easy/internal/middleware" // import identity and role middleware
	"github.com/BhanuPrakash2047/live-easy/internal/model"
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Map the GET request at path "/healthz" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the authentication endpoints.  Registration and
// login are the only operations here; both are open, since the gateway
// forwards /api/auth traffic without requiring a token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	g := e.Group("/api/auth")
	// Register a POST endpoint to handle user registration at /api/auth/register.
	g.POST("/register", a.Register)
	// Register a POST endpoint to handle user login at /api/auth/login.
	g.POST("/login", a.Login)
}

// RegisterLoad registers the load endpoints.  Routes reached through
// the gateway expect the identity headers it injects; the Identity
// middleware lifts them into the request context and rejects requests
// without them.
//
// The single-load read and the status endpoint stay outside the
// identity group: the booking service calls them service-to-service,
// without a gateway in between, and the status handler deliberately
// applies no ownership check so a transporter's accepted booking can
// move a shipper's load.
func RegisterLoad(e *echo.Echo, h *handler.LoadHandler) {
	g := e.Group("/api/load")

	g.GET("/:loadId", h.GetByID)
	g.PUT("/:loadId/status", h.UpdateStatus)

	auth := g.Group("", middleware.Identity())
	auth.GET("", h.GetAll)
	// Only shippers post loads.  Transporters browse and book them.
	auth.POST("", h.Create, middleware.RequireRole(model.RoleShipper, model.RoleAdmin))
	auth.PUT("/:loadId", h.Update)
	auth.DELETE("/:loadId", h.Delete)
}

// RegisterBooking registers the booking endpoints.  Creation is
// restricted to transporters; update and delete check ownership in the
// handler so that an admin override remains possible.
func RegisterBooking(e *echo.Echo, h *handler.BookingHandler) {
	g := e.Group("/api/booking", middleware.Identity())

	g.GET("", h.GetAll)
	g.GET("/:bookingId", h.GetByID)
	g.POST("", h.Create, middleware.RequireRole(model.RoleTransporter, model.RoleAdmin))
	g.PUT("/:bookingId", h.Update)
	g.DELETE("/:bookingId", h.Delete)
}
