package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cinema-ticket-booking/internal/handler"
	"github.com/iliyamo/cinema-ticket-booking/internal/middleware"
	"github.com/iliyamo/cinema-ticket-booking/internal/utils"
)

// RegisterCustomer registers the booking endpoints.  All routes require a
// valid JWT with the CUSTOMER role; ticket creation is additionally rate
// limited per caller.
func RegisterCustomer(e *echo.Echo, h *handler.BookingHandler, jwtSecret string, limit echo.MiddlewareFunc) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(utils.RoleCustomer),
	)
	g.POST("/shows/:id/tickets", h.CreateTicket, limit)
	g.GET("/my-tickets", h.ListMyTickets)
}
