package handler

import (
    "context"
    "errors"
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/BhanuPrakash2047/live-easy/internal/config"
    "github.com/BhanuPrakash2047/live-easy/internal/model"
    "github.com/BhanuPrakash2047/live-easy/internal/repository"
    "github.com/BhanuPrakash2047/live-easy/internal/token"
    "github.com/BhanuPrakash2047/live-easy/internal/utils"
)

// UserStore is the slice of the user repository the auth endpoints
// need.  *repository.UserRepo satisfies it.
type UserStore interface {
    Create(ctx context.Context, email, password, role string, cost int) (string, error)
    GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// AuthHandler bundles dependencies for the identity-issuing
// endpoints.  These routes are reachable through the gateway without
// a prior token.
type AuthHandler struct {
    Cfg   config.Config
    Users UserStore
    Codec *token.Codec
}

func NewAuthHandler(cfg config.Config, u UserStore, codec *token.Codec) *AuthHandler {
    return &AuthHandler{Cfg: cfg, Users: u, Codec: codec}
}

// ----- DTOs -----

type registerReq struct {
    Email    string `json:"email"`
    Password string `json:"password"`
    Role     string `json:"role"` // SHIPPER | TRANSPORTER | ADMIN
}
type loginReq struct {
    Email    string `json:"email"`
    Password string `json:"password"`
}
type authResp struct {
    UserID  string    `json:"userId"`
    Email   string    `json:"email"`
    Role    string    `json:"role"`
    Token   string    `json:"token"`
    Expires time.Time `json:"expires"`
}

// Register creates a new user and returns a token immediately.
func (h *AuthHandler) Register(c echo.Context) error {
    var req registerReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.Email = strings.ToLower(strings.TrimSpace(req.Email))
    if req.Email == "" || req.Password == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
    }
    role := strings.ToUpper(strings.TrimSpace(req.Role))
    switch role {
    case model.RoleShipper, model.RoleTransporter:
        // self-service roles
    case "":
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "role required"})
    default:
        // ADMIN accounts are provisioned out of band
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown role"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    uid, err := h.Users.Create(ctx, req.Email, req.Password, role, h.Cfg.BcryptCost)
    if err != nil {
        if errors.Is(err, repository.ErrEmailExists) {
            return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
    }

    raw, exp, err := h.Codec.Issue(uid, role, time.Duration(h.Cfg.AccessTTLMin)*time.Minute)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
    }
    return c.JSON(http.StatusCreated, authResp{
        UserID: uid, Email: req.Email, Role: role, Token: raw, Expires: exp,
    })
}

// Login verifies credentials and returns a fresh token.
func (h *AuthHandler) Login(c echo.Context) error {
    var req loginReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.Email = strings.ToLower(strings.TrimSpace(req.Email))
    if req.Email == "" || req.Password == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    u, err := h.Users.GetByEmail(ctx, req.Email)
    if err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    if !utils.VerifyPassword(u.PasswordHash, req.Password) {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
    }

    raw, exp, err := h.Codec.Issue(u.ID, u.Role, time.Duration(h.Cfg.AccessTTLMin)*time.Minute)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
    }
    return c.JSON(http.StatusOK, authResp{
        UserID: u.ID, Email: u.Email, Role: u.Role, Token: raw, Expires: exp,
    })
}
