package model

import (
	"fmt"
	"time"

	"github.com/iliyamo/cinema-ticket-booking/internal/clock"
	"github.com/iliyamo/cinema-ticket-booking/internal/idgen"
)

// Ticket is the proof of a successful booking.  All fields are unexported
// and only Book creates tickets, so a Ticket always corresponds to seats
// that were actually deducted from its show.
type Ticket struct {
	id         uint64
	customerID uint64
	owner      string
	show       *Show
	seats      int
	bookedAt   time.Time
}

func (t Ticket) ID() uint64          { return t.id }
func (t Ticket) CustomerID() uint64  { return t.customerID }
func (t Ticket) Owner() string       { return t.owner }
func (t Ticket) Show() *Show         { return t.show }
func (t Ticket) Seats() int          { return t.seats }
func (t Ticket) BookedAt() time.Time { return t.bookedAt }

// IsZero reports whether t is the zero Ticket returned alongside a failure.
func (t Ticket) IsZero() bool { return t.id == 0 && t.show == nil }

func (t Ticket) String() string {
	var showID uint64
	if t.show != nil {
		showID = t.show.ID
	}
	return fmt.Sprintf("Ticket{id=%d, owner=%q, bookedAt=%s, seats=%d, show=%d}",
		t.id, t.owner, t.bookedAt.UTC().Format(time.RFC3339), t.seats, showID)
}

// Book reserves seats on show for owner.  The seat check, the decrement and
// the construction of the ticket happen under the show's lock; the ticket
// is appended to the owner's history after that lock is released, under the
// owner's own lock.  Book reports false when the show cannot supply seats,
// in which case neither the show nor the owner is modified.
func Book(show *Show, owner *Customer, seats int, ids idgen.Generator, clk clock.Clock) (Ticket, bool) {
	if show == nil || owner == nil {
		return Ticket{}, false
	}
	t, ok := show.take(seats, func() Ticket {
		return Ticket{
			id:         ids.Next(),
			customerID: owner.ID,
			owner:      owner.Name,
			show:       show,
			seats:      seats,
			bookedAt:   clk.Now(),
		}
	})
	if !ok {
		return Ticket{}, false
	}
	owner.record(t)
	return t, true
}
