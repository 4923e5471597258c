package model

import (
	"fmt"
	"sync"
	"time"
)

// Show represents a scheduled screening of a movie in a cinema.  It holds
// the authoritative count of unreserved seats together with the mutex that
// guards it.  The count is only ever lowered by take, which is reachable
// solely through Book.
//
// Fields:
//  ID       – identity assigned by the catalog.
//  StartsAt – when the screening begins.
//  Movie    – the movie being screened.
//  Cinema   – the cinema that owns this show.
type Show struct {
	ID       uint64
	StartsAt time.Time
	Movie    *Movie
	Cinema   *Cinema

	mu        sync.Mutex
	remaining int
}

// AvailableSeats returns the number of unreserved seats.  The value is
// stale as soon as it is returned; a later Book for that many seats may
// still fail.
func (s *Show) AvailableSeats() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remaining
}

// take deducts seats and runs issue while holding the show's lock, so no
// other booking can observe the decrement without its ticket.  It reports
// false and changes nothing when fewer than seats remain.
func (s *Show) take(seats int, issue func() Ticket) (Ticket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seats < 1 || s.remaining < seats {
		return Ticket{}, false
	}
	s.remaining -= seats
	return issue(), true
}

func (s *Show) String() string {
	movie, cinema := "", ""
	if s.Movie != nil {
		movie = s.Movie.Name
	}
	if s.Cinema != nil {
		cinema = s.Cinema.Name
	}
	return fmt.Sprintf("Show{id=%d, startsAt=%s, movie=%s, cinema=%s, availableSeats=%d}",
		s.ID, s.StartsAt.UTC().Format(time.RFC3339), movie, cinema, s.AvailableSeats())
}
