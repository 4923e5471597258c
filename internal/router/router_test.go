package router

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/iliyamo/cinema-ticket-booking/internal/catalog"
	"github.com/iliyamo/cinema-ticket-booking/internal/clock"
	"github.com/iliyamo/cinema-ticket-booking/internal/config"
	"github.com/iliyamo/cinema-ticket-booking/internal/handler"
	"github.com/iliyamo/cinema-ticket-booking/internal/idgen"
	"github.com/iliyamo/cinema-ticket-booking/internal/registry"
	"github.com/iliyamo/cinema-ticket-booking/internal/reservation"
)

func TestRoutes(t *testing.T) {
	clk := clock.NewFixed(time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC))
	ix := catalog.Build(catalog.Demo(idgen.NewSequence(0), clk.Now()))
	customers := registry.New(idgen.NewSequence(0), clk, 4)
	svc := reservation.NewService(idgen.NewSequence(0), clk, reservation.WithDirectory(customers))
	noop := func(next echo.HandlerFunc) echo.HandlerFunc { return next }

	e := echo.New()
	RegisterRoutes(e)
	RegisterAuth(e, handler.NewAuthHandler(config.Config{JWTSecret: "s", AccessTTL: time.Minute}, customers, clk))
	RegisterPublic(e, handler.NewPublicHandler(ix), noop)
	RegisterCustomer(e, handler.NewBookingHandler(ix, svc, customers, nil, zap.NewNop()), "s", noop)

	got := map[string]bool{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = true
	}
	for _, want := range []string{
		"GET /healthz",
		"POST /v1/auth/register",
		"POST /v1/auth/login",
		"GET /v1/movies",
		"GET /v1/search/shows",
		"GET /v1/shows/:id/seats",
		"POST /v1/shows/:id/tickets",
		"GET /v1/my-tickets",
	} {
		assert.True(t, got[want], want)
	}

	t.Run("public seats stay anonymous", func(t *testing.T) {
		shows := ix.Search("Iron Man")
		require.Len(t, shows, 1)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/v1/shows/%d/seats", shows[0].ID), nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("booking requires a token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/my-tickets", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
