// Package router wires handlers and middleware onto an Echo instance.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cinema-ticket-booking/internal/handler"
)

// RegisterRoutes registers routes that do not require authentication.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the register and login endpoints under /v1/auth.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
}

// RegisterPublic registers the guest browse endpoints.  Movie listings and
// search results go through the response cache; the seat snapshot of a
// single show is always read live.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, cache echo.MiddlewareFunc) {
	e.GET("/v1/movies", p.ListMovies, cache)
	e.GET("/v1/search/shows", p.SearchShows, cache)
	e.GET("/v1/shows/:id/seats", p.GetShowSeats)
}
