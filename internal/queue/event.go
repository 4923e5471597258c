// Package queue defines the ticket events exchanged over RabbitMQ together
// with their publisher and the background consumer.
package queue

import (
	"time"

	"github.com/iliyamo/cinema-ticket-booking/internal/model"
)

// TicketQueue is the durable queue ticket events are routed to.
const TicketQueue = "ticket.issued"

// TicketIssuedEvent is published after a ticket has been issued.  It carries
// enough detail for downstream consumers to log, notify or run analytics
// without calling back into the booking service.
type TicketIssuedEvent struct {
	TicketID     uint64 `json:"ticket_id"`
	CustomerID   uint64 `json:"customer_id"`
	CustomerName string `json:"customer_name"`
	ShowID       uint64 `json:"show_id"`
	CinemaID     uint64 `json:"cinema_id"`
	CinemaName   string `json:"cinema_name"`
	MovieTitle   string `json:"movie_title"`
	StartsAt     string `json:"starts_at"`
	Seats        int    `json:"seats"`
	BookedAt     string `json:"booked_at"`
}

// NewTicketIssuedEvent flattens a ticket into its event payload.
func NewTicketIssuedEvent(t model.Ticket) TicketIssuedEvent {
	ev := TicketIssuedEvent{
		TicketID:     t.ID(),
		CustomerID:   t.CustomerID(),
		CustomerName: t.Owner(),
		Seats:        t.Seats(),
		BookedAt:     t.BookedAt().UTC().Format(time.RFC3339),
	}
	if s := t.Show(); s != nil {
		ev.ShowID = s.ID
		ev.StartsAt = s.StartsAt.UTC().Format(time.RFC3339)
		if s.Cinema != nil {
			ev.CinemaID = s.Cinema.ID
			ev.CinemaName = s.Cinema.Name
		}
		if s.Movie != nil {
			ev.MovieTitle = s.Movie.Name
		}
	}
	return ev
}
