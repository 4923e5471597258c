// Package reservation implements seat booking against shows.  Each show
// carries its own lock, so bookings on different shows proceed in parallel
// while bookings on the same show are serialized for the length of one
// comparison, one subtraction and one ticket construction.
package reservation

import (
	"context"
	"fmt"

	"github.com/iliyamo/cinema-ticket-booking/internal/clock"
	"github.com/iliyamo/cinema-ticket-booking/internal/idgen"
	"github.com/iliyamo/cinema-ticket-booking/internal/model"
)

// Directory answers whether a customer ID belongs to a registered customer.
type Directory interface {
	Known(customerID uint64) bool
}

// Service books seats and issues tickets.  It is safe for concurrent use.
type Service struct {
	tickets   idgen.Generator
	clock     clock.Clock
	directory Directory
}

// Option configures a Service.
type Option func(*Service)

// WithDirectory makes Reserve reject customers the directory does not know.
// Without a directory any non-nil *model.Customer is accepted.
func WithDirectory(d Directory) Option {
	return func(s *Service) {
		s.directory = d
	}
}

// NewService returns a Service that numbers tickets from tickets and stamps
// them with clk.
func NewService(tickets idgen.Generator, clk clock.Clock, opts ...Option) *Service {
	s := &Service{tickets: tickets, clock: clk}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reserve books seats on show for requester.  On success the returned
// ticket has already been deducted from the show and appended to the
// customer's history.  On failure the show and the history are unchanged
// and the error wraps one of ErrInvalidRequest, ErrInsufficientSeats or
// ErrUnknownRequester.
func (s *Service) Reserve(show *model.Show, requester model.Requester, seats int) (model.Ticket, error) {
	if seats < 1 {
		return model.Ticket{}, fmt.Errorf("%w: seat count must be at least 1, got %d", ErrInvalidRequest, seats)
	}
	customer, err := s.customer(requester)
	if err != nil {
		return model.Ticket{}, err
	}
	if show == nil {
		return model.Ticket{}, fmt.Errorf("%w: no show", ErrInvalidRequest)
	}

	t, ok := model.Book(show, customer, seats, s.tickets, s.clock)
	if !ok {
		return model.Ticket{}, fmt.Errorf("%w: show %d cannot supply %d seats", ErrInsufficientSeats, show.ID, seats)
	}
	return t, nil
}

func (s *Service) customer(r model.Requester) (*model.Customer, error) {
	c, ok := r.(*model.Customer)
	if !ok || c == nil {
		return nil, fmt.Errorf("%w: guests must register before booking", ErrUnknownRequester)
	}
	if s.directory != nil && !s.directory.Known(c.ID) {
		return nil, fmt.Errorf("%w: customer %d is not registered", ErrUnknownRequester, c.ID)
	}
	return c, nil
}

// Result is the outcome of an asynchronous reservation.
type Result struct {
	Ticket model.Ticket
	Err    error
}

// ReserveAsync runs Reserve on its own goroutine and delivers exactly one
// Result on the returned channel.  If ctx is done before the booking starts
// the result carries ctx.Err() and nothing is booked; once the booking has
// started it always runs to completion.
func (s *Service) ReserveAsync(ctx context.Context, show *model.Show, requester model.Requester, seats int) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		if err := ctx.Err(); err != nil {
			out <- Result{Err: err}
			return
		}
		t, err := s.Reserve(show, requester, seats)
		out <- Result{Ticket: t, Err: err}
	}()
	return out
}
