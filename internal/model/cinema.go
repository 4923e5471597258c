package model

import (
	"fmt"
	"sync"
	"time"
)

// Cinema represents a movie theatre venue.  Its seating capacity is fixed
// when the cinema is created and every show scheduled here starts with that
// many free seats.  A cinema owns the shows it schedules.
//
// Fields:
//  ID       – identity assigned by the catalog.
//  Name     – display name (e.g. PVR).
//  Location – city or address.
type Cinema struct {
	ID       uint64
	Name     string
	Location string

	capacity int

	mu    sync.Mutex
	shows []*Show
}

// NewCinema builds a cinema with the given fixed capacity.
func NewCinema(id uint64, name, location string, capacity int) (*Cinema, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}
	return &Cinema{ID: id, Name: name, Location: location, capacity: capacity}, nil
}

// Capacity returns the number of seats every show in this cinema starts with.
func (c *Cinema) Capacity() int {
	return c.capacity
}

// Schedule creates a show of movie at startsAt with a full seat pool and
// adds it to the cinema's schedule.
func (c *Cinema) Schedule(id uint64, movie *Movie, startsAt time.Time) (*Show, error) {
	if movie == nil {
		return nil, ErrMissingMovie
	}
	s := &Show{
		ID:        id,
		StartsAt:  startsAt,
		Movie:     movie,
		Cinema:    c,
		remaining: c.capacity,
	}
	c.mu.Lock()
	c.shows = append(c.shows, s)
	c.mu.Unlock()
	return s, nil
}

// Shows returns the cinema's schedule in the order shows were added.  The
// returned slice is a copy.
func (c *Cinema) Shows() []*Show {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*Show, len(c.shows))
	copy(out, c.shows)
	return out
}
