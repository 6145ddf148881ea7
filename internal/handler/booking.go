package handler

import (
    "errors"
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/BhanuPrakash2047/live-easy/internal/client"
    "github.com/BhanuPrakash2047/live-easy/internal/middleware"
    "github.com/BhanuPrakash2047/live-easy/internal/model"
    "github.com/BhanuPrakash2047/live-easy/internal/repository"
    "github.com/BhanuPrakash2047/live-easy/internal/service"
)

// BookingHandler exposes the booking service's HTTP surface.  Only the
// transporter who made a booking (or an admin) may update or delete it.
type BookingHandler struct {
    Svc *service.BookingService
}

func NewBookingHandler(svc *service.BookingService) *BookingHandler {
    return &BookingHandler{Svc: svc}
}

type createBookingReq struct {
    LoadID       string  `json:"loadId"`
    ProposedRate float64 `json:"proposedRate"`
    Comment      string  `json:"comment"`
}

type updateBookingReq struct {
    ProposedRate float64 `json:"proposedRate"`
    Comment      string  `json:"comment"`
    Status       string  `json:"status"`
}

// GetAll lists bookings, optionally filtered by loadId or transporterId
// query parameters.
func (h *BookingHandler) GetAll(c echo.Context) error {
    ctx, cancel := reqCtx(c)
    defer cancel()

    var (
        bookings []model.Booking
        err      error
    )
    switch {
    case c.QueryParam("loadId") != "":
        bookings, err = h.Svc.GetByLoad(ctx, c.QueryParam("loadId"))
    case c.QueryParam("transporterId") != "":
        bookings, err = h.Svc.GetByTransporter(ctx, c.QueryParam("transporterId"))
    default:
        bookings, err = h.Svc.GetAll(ctx)
    }
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "fetch bookings failed"})
    }
    return c.JSON(http.StatusOK, bookings)
}

// GetByID returns one booking or 404.
func (h *BookingHandler) GetByID(c echo.Context) error {
    ctx, cancel := reqCtx(c)
    defer cancel()

    b, err := h.Svc.GetByID(ctx, c.Param("bookingId"))
    if err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "fetch booking failed"})
    }
    return c.JSON(http.StatusOK, b)
}

// Create opens a booking for a load on behalf of the authenticated
// transporter.  The workflow verifies the load remotely, so failures
// fan out: missing load maps to 404, a cancelled load to 422, anything
// else to 500 carrying the workflow's own message.
func (h *BookingHandler) Create(c echo.Context) error {
    var req createBookingReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if req.LoadID == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "loadId required"})
    }
    ctx, cancel := reqCtx(c)
    defer cancel()

    b, err := h.Svc.Create(ctx, req.LoadID, middleware.UserID(c), req.ProposedRate, req.Comment)
    if err != nil {
        switch {
        case errors.Is(err, client.ErrLoadNotFound):
            return c.JSON(http.StatusNotFound, echo.Map{"error": "load not found"})
        case errors.Is(err, service.ErrInvalidState):
            return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "load is cancelled"})
        default:
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
        }
    }
    return c.JSON(http.StatusCreated, b)
}

// Update edits a booking's rate and comment and optionally moves its
// status, after an ownership check.
func (h *BookingHandler) Update(c echo.Context) error {
    var req updateBookingReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    ctx, cancel := reqCtx(c)
    defer cancel()

    id := c.Param("bookingId")
    existing, err := h.Svc.GetByID(ctx, id)
    if err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "fetch booking failed"})
    }
    if !ownsOrAdmin(c, existing.TransporterID) {
        return c.JSON(http.StatusForbidden, echo.Map{"error": "not authorized to update this booking"})
    }

    var newStatus *model.BookingStatus
    if req.Status != "" {
        st := model.BookingStatus(req.Status)
        if !st.Valid() {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown status"})
        }
        newStatus = &st
    }

    b, err := h.Svc.Update(ctx, id, req.ProposedRate, req.Comment, newStatus)
    if err != nil {
        switch {
        case errors.Is(err, repository.ErrNotFound):
            return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
        default:
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
        }
    }
    return c.JSON(http.StatusOK, b)
}

// Delete withdraws a booking and releases its load, after an ownership
// check.
func (h *BookingHandler) Delete(c echo.Context) error {
    ctx, cancel := reqCtx(c)
    defer cancel()

    id := c.Param("bookingId")
    existing, err := h.Svc.GetByID(ctx, id)
    if err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "fetch booking failed"})
    }
    if !ownsOrAdmin(c, existing.TransporterID) {
        return c.JSON(http.StatusForbidden, echo.Map{"error": "not authorized to delete this booking"})
    }

    if err := h.Svc.Delete(ctx, id); err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
    }
    return c.JSON(http.StatusOK, echo.Map{"message": "booking deleted"})
}
