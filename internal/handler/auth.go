package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cinema-ticket-booking/internal/clock"
	"github.com/iliyamo/cinema-ticket-booking/internal/config"
	"github.com/iliyamo/cinema-ticket-booking/internal/model"
	"github.com/iliyamo/cinema-ticket-booking/internal/registry"
	"github.com/iliyamo/cinema-ticket-booking/internal/utils"
)

// AuthHandler turns guests into registered customers and issues access
// tokens.
type AuthHandler struct {
	Cfg       config.Config
	Customers *registry.Registry
	Clock     clock.Clock
}

func NewAuthHandler(cfg config.Config, customers *registry.Registry, clk clock.Clock) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Customers: customers, Clock: clk}
}

// ----- DTOs -----

type credentialsReq struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

type customerPart struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type authResp struct {
	Customer customerPart `json:"customer"`
	Access   tokenPart    `json:"access"`
}

// Register: create a customer and return an access token immediately.
func (h *AuthHandler) Register(c echo.Context) error {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	cust, err := h.Customers.Register(ctx, req.Name, req.Password)
	switch {
	case errors.Is(err, registry.ErrInvalidCredentials):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name/password required"})
	case errors.Is(err, registry.ErrNameTaken):
		return c.JSON(http.StatusConflict, echo.Map{"error": "name already registered"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "register failed"})
	}
	return h.issue(c, http.StatusCreated, cust)
}

// Login: verify credentials and return a fresh access token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	cust, err := h.Customers.Authenticate(ctx, req.Name, req.Password)
	if err != nil {
		if errors.Is(err, registry.ErrAuthFailed) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "login failed"})
	}
	return h.issue(c, http.StatusOK, cust)
}

func (h *AuthHandler) issue(c echo.Context, status int, cust *model.Customer) error {
	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, cust.ID, utils.RoleCustomer, h.Cfg.AccessTTL, h.Clock.Now())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	return c.JSON(status, authResp{
		Customer: customerPart{ID: cust.ID, Name: cust.Name},
		Access:   tokenPart{Token: access.Token, Expires: access.Exp},
	})
}
