package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cinema-ticket-booking/internal/catalog"
	"github.com/iliyamo/cinema-ticket-booking/internal/model"
)

// PublicHandler serves the anonymous browse endpoints from the in-memory
// catalog index.
type PublicHandler struct {
	Catalog *catalog.Index
}

func NewPublicHandler(ix *catalog.Index) *PublicHandler {
	return &PublicHandler{Catalog: ix}
}

type showDTO struct {
	ID             uint64    `json:"id"`
	Movie          string    `json:"movie"`
	Language       string    `json:"language"`
	Genre          string    `json:"genre"`
	Cinema         string    `json:"cinema"`
	Location       string    `json:"location"`
	StartsAt       time.Time `json:"starts_at"`
	Capacity       int       `json:"capacity"`
	AvailableSeats int       `json:"available_seats"`
}

func toShowDTO(s *model.Show) showDTO {
	d := showDTO{ID: s.ID, StartsAt: s.StartsAt, AvailableSeats: s.AvailableSeats()}
	if s.Movie != nil {
		d.Movie = s.Movie.Name
		d.Language = string(s.Movie.Language)
		d.Genre = string(s.Movie.Genre)
	}
	if s.Cinema != nil {
		d.Cinema = s.Cinema.Name
		d.Location = s.Cinema.Location
		d.Capacity = s.Cinema.Capacity()
	}
	return d
}

// ListMovies handles GET /v1/movies.
func (h *PublicHandler) ListMovies(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"data": h.Catalog.Movies()})
}

// SearchShows handles GET /v1/search/shows?movie=NAME.  Seat counts are a
// snapshot taken while building the response.
func (h *PublicHandler) SearchShows(c echo.Context) error {
	movie := strings.TrimSpace(c.QueryParam("movie"))
	if movie == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "movie is required"})
	}
	shows := h.Catalog.Search(movie)
	items := make([]showDTO, 0, len(shows))
	for _, s := range shows {
		items = append(items, toShowDTO(s))
	}
	return c.JSON(http.StatusOK, echo.Map{
		"data":  items,
		"total": len(items),
	})
}

// GetShowSeats handles GET /v1/shows/:id/seats.
func (h *PublicHandler) GetShowSeats(c echo.Context) error {
	show, herr := lookupShow(c, h.Catalog)
	if herr != nil {
		return c.JSON(herr.Code, echo.Map{"error": herr.Message})
	}
	return c.JSON(http.StatusOK, toShowDTO(show))
}

// lookupShow resolves the :id path parameter against the catalog.
func lookupShow(c echo.Context, ix *catalog.Index) (*model.Show, *echo.HTTPError) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid show id")
	}
	show, ok := ix.Show(id)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusNotFound, "show not found")
	}
	return show, nil
}
