package handler

import (
    "context"
    "errors"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/BhanuPrakash2047/live-easy/internal/middleware"
    "github.com/BhanuPrakash2047/live-easy/internal/model"
    "github.com/BhanuPrakash2047/live-easy/internal/repository"
    "github.com/BhanuPrakash2047/live-easy/internal/service"
)

// LoadHandler exposes the load service's HTTP surface.  Ownership is
// enforced here, at the boundary: only the shipper who posted a load
// (or an admin) may edit or delete it.  The status endpoint is the
// internal path the booking service drives and applies no ownership
// check, mirroring how a booking outcome, not the caller, owns the
// transition.
type LoadHandler struct {
    Svc *service.LoadService
}

func NewLoadHandler(svc *service.LoadService) *LoadHandler { return &LoadHandler{Svc: svc} }

type loadReq struct {
    Facility    model.Facility `json:"facility"`
    ProductType string         `json:"productType"`
    TruckType   string         `json:"truckType"`
    NoOfTrucks  int            `json:"noOfTrucks"`
    Weight      float64        `json:"weight"`
    Comment     string         `json:"comment"`
}

type statusReq struct {
    Status string `json:"status"`
}

// GetAll lists loads, optionally filtered by shipperId or truckType
// query parameters.
func (h *LoadHandler) GetAll(c echo.Context) error {
    ctx, cancel := reqCtx(c)
    defer cancel()

    var (
        loads []model.Load
        err   error
    )
    switch {
    case c.QueryParam("shipperId") != "":
        loads, err = h.Svc.GetByShipper(ctx, c.QueryParam("shipperId"))
    case c.QueryParam("truckType") != "":
        loads, err = h.Svc.GetByTruckType(ctx, c.QueryParam("truckType"))
    default:
        loads, err = h.Svc.GetAll(ctx)
    }
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "fetch loads failed"})
    }
    return c.JSON(http.StatusOK, loads)
}

// GetByID returns one load or 404.
func (h *LoadHandler) GetByID(c echo.Context) error {
    ctx, cancel := reqCtx(c)
    defer cancel()

    l, err := h.Svc.GetByID(ctx, c.Param("loadId"))
    if err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "load not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "fetch load failed"})
    }
    return c.JSON(http.StatusOK, l)
}

// Create posts a new load owned by the authenticated shipper.
func (h *LoadHandler) Create(c echo.Context) error {
    var req loadReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    ctx, cancel := reqCtx(c)
    defer cancel()

    l, err := h.Svc.Create(ctx, &model.Load{
        ShipperID:   middleware.UserID(c),
        Facility:    req.Facility,
        ProductType: req.ProductType,
        TruckType:   req.TruckType,
        NoOfTrucks:  req.NoOfTrucks,
        Weight:      req.Weight,
        Comment:     req.Comment,
    })
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create load failed"})
    }
    return c.JSON(http.StatusCreated, l)
}

// Update edits a load's fields after an ownership check.
func (h *LoadHandler) Update(c echo.Context) error {
    var req loadReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    ctx, cancel := reqCtx(c)
    defer cancel()

    id := c.Param("loadId")
    existing, err := h.Svc.GetByID(ctx, id)
    if err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "load not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "fetch load failed"})
    }
    if !ownsOrAdmin(c, existing.ShipperID) {
        return c.JSON(http.StatusForbidden, echo.Map{"error": "not authorized to update this load"})
    }

    l, err := h.Svc.Update(ctx, id, &model.Load{
        Facility:    req.Facility,
        ProductType: req.ProductType,
        TruckType:   req.TruckType,
        NoOfTrucks:  req.NoOfTrucks,
        Weight:      req.Weight,
        Comment:     req.Comment,
    })
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update load failed"})
    }
    return c.JSON(http.StatusOK, l)
}

// Delete removes a load after an ownership check.
func (h *LoadHandler) Delete(c echo.Context) error {
    ctx, cancel := reqCtx(c)
    defer cancel()

    id := c.Param("loadId")
    existing, err := h.Svc.GetByID(ctx, id)
    if err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "load not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "fetch load failed"})
    }
    if !ownsOrAdmin(c, existing.ShipperID) {
        return c.JSON(http.StatusForbidden, echo.Map{"error": "not authorized to delete this load"})
    }

    if err := h.Svc.Delete(ctx, id); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete load failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{"message": "load deleted"})
}

// UpdateStatus moves a load to a new status.  This is the synchronous
// endpoint the booking workflow calls.
func (h *LoadHandler) UpdateStatus(c echo.Context) error {
    var req statusReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    ctx, cancel := reqCtx(c)
    defer cancel()

    l, err := h.Svc.UpdateStatus(ctx, c.Param("loadId"), model.LoadStatus(req.Status))
    if err != nil {
        switch {
        case errors.Is(err, repository.ErrNotFound):
            return c.JSON(http.StatusNotFound, echo.Map{"error": "load not found"})
        case errors.Is(err, service.ErrInvalidState):
            return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "unknown status"})
        default:
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update status failed"})
        }
    }
    return c.JSON(http.StatusOK, l)
}

// ownsOrAdmin reports whether the caller is the resource owner or an
// admin.  Role ADMIN is the universal override.
func ownsOrAdmin(c echo.Context, ownerID string) bool {
    return middleware.UserID(c) == ownerID || middleware.Role(c) == model.RoleAdmin
}

// reqCtx derives a bounded context for downstream calls.
func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
    return context.WithTimeout(c.Request().Context(), 10*time.Second)
}
