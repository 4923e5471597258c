package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/iliyamo/cinema-ticket-booking/internal/catalog"
	"github.com/iliyamo/cinema-ticket-booking/internal/middleware"
	"github.com/iliyamo/cinema-ticket-booking/internal/model"
	"github.com/iliyamo/cinema-ticket-booking/internal/queue"
	"github.com/iliyamo/cinema-ticket-booking/internal/registry"
	"github.com/iliyamo/cinema-ticket-booking/internal/reservation"
)

// TicketPublisher receives an event for every ticket issued over HTTP.
type TicketPublisher interface {
	PublishTicketIssued(ctx context.Context, ev queue.TicketIssuedEvent) error
}

// BookingHandler books tickets on behalf of authenticated customers.  All
// methods assume JWTAuth has already run.
type BookingHandler struct {
	Catalog      *catalog.Index
	Reservations *reservation.Service
	Customers    *registry.Registry
	Events       TicketPublisher // nil disables events
	Log          *zap.Logger
}

func NewBookingHandler(ix *catalog.Index, svc *reservation.Service, customers *registry.Registry, events TicketPublisher, log *zap.Logger) *BookingHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &BookingHandler{Catalog: ix, Reservations: svc, Customers: customers, Events: events, Log: log}
}

type ticketDTO struct {
	ID         uint64    `json:"id"`
	CustomerID uint64    `json:"customer_id"`
	Customer   string    `json:"customer"`
	ShowID     uint64    `json:"show_id"`
	Movie      string    `json:"movie"`
	Cinema     string    `json:"cinema"`
	StartsAt   time.Time `json:"starts_at"`
	Seats      int       `json:"seats"`
	BookedAt   time.Time `json:"booked_at"`
}

func toTicketDTO(t model.Ticket) ticketDTO {
	d := ticketDTO{
		ID:         t.ID(),
		CustomerID: t.CustomerID(),
		Customer:   t.Owner(),
		Seats:      t.Seats(),
		BookedAt:   t.BookedAt(),
	}
	if s := t.Show(); s != nil {
		d.ShowID = s.ID
		d.StartsAt = s.StartsAt
		if s.Movie != nil {
			d.Movie = s.Movie.Name
		}
		if s.Cinema != nil {
			d.Cinema = s.Cinema.Name
		}
	}
	return d
}

// requester maps the authenticated id to a registered customer.  An id the
// registry has never issued yields nil, which the reservation service
// rejects as an unknown requester.
func (h *BookingHandler) requester(c echo.Context) model.Requester {
	id, ok := middleware.CustomerID(c)
	if !ok {
		return nil
	}
	cust, ok := h.Customers.Lookup(id)
	if !ok {
		return nil
	}
	return cust
}

// CreateTicket handles POST /v1/shows/:id/tickets with body {"seats": n}.
//
//	201 ticket issued
//	400 invalid_request (malformed body or seats < 1)
//	401 unknown_requester
//	404 show not found
//	409 insufficient_seats
func (h *BookingHandler) CreateTicket(c echo.Context) error {
	show, herr := lookupShow(c, h.Catalog)
	if herr != nil {
		return c.JSON(herr.Code, echo.Map{"error": herr.Message})
	}
	var body struct {
		Seats int `json:"seats"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":   reservation.FailureInvalidRequest.String(),
			"message": "invalid request body",
		})
	}

	ticket, err := h.Reservations.Reserve(show, h.requester(c), body.Seats)
	if err != nil {
		kind := reservation.Kind(err)
		return c.JSON(statusFor(kind), echo.Map{
			"error":           kind.String(),
			"message":         err.Error(),
			"available_seats": show.AvailableSeats(),
		})
	}

	h.publish(c.Request().Context(), ticket)
	return c.JSON(http.StatusCreated, toTicketDTO(ticket))
}

// ListMyTickets handles GET /v1/my-tickets.
func (h *BookingHandler) ListMyTickets(c echo.Context) error {
	who := h.requester(c)
	cust, ok := who.(*model.Customer)
	if !ok || cust == nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": reservation.FailureUnknownRequester.String()})
	}
	bookings := cust.Bookings()
	items := make([]ticketDTO, 0, len(bookings))
	for _, t := range bookings {
		items = append(items, toTicketDTO(t))
	}
	return c.JSON(http.StatusOK, echo.Map{"data": items, "total": len(items)})
}

// publish emits the ticket event.  The ticket is already issued, so a
// failure is only logged.
func (h *BookingHandler) publish(ctx context.Context, t model.Ticket) {
	if h.Events == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
	defer cancel()
	if err := h.Events.PublishTicketIssued(ctx, queue.NewTicketIssuedEvent(t)); err != nil {
		h.Log.Warn("publish ticket event failed", zap.Uint64("ticket_id", t.ID()), zap.Error(err))
	}
}

func statusFor(kind reservation.FailureKind) int {
	switch kind {
	case reservation.FailureInvalidRequest:
		return http.StatusBadRequest
	case reservation.FailureUnknownRequester:
		return http.StatusUnauthorized
	case reservation.FailureInsufficientSeats:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
