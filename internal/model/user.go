package model

import (
	"sync"
	"time"
)

// Requester is anyone asking for seats.  Only a *Customer can actually
// book; a Guest is rejected at the booking boundary because it has no
// history to receive the ticket.
type Requester interface {
	RequesterID() uint64
	RequesterName() string
}

// Customer is a registered user with a booking history.  The history is
// owned by the customer and guarded by its own mutex, independent of any
// show lock, so concurrent bookings by one customer are safe.
//
// Fields:
//  ID           – identity assigned by the registry.
//  Name         – unique, normalized login name.
//  PasswordHash – bcrypt hash of the password.
//  CreatedAt    – registration timestamp.
type Customer struct {
	ID           uint64
	Name         string
	PasswordHash string
	CreatedAt    time.Time

	mu      sync.Mutex
	history []Ticket
}

// NewCustomer builds a customer with an empty booking history.
func NewCustomer(id uint64, name, passwordHash string, createdAt time.Time) *Customer {
	return &Customer{ID: id, Name: name, PasswordHash: passwordHash, CreatedAt: createdAt}
}

func (c *Customer) RequesterID() uint64   { return c.ID }
func (c *Customer) RequesterName() string { return c.Name }

// Bookings returns a copy of the customer's tickets in booking order.
func (c *Customer) Bookings() []Ticket {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Ticket, len(c.history))
	copy(out, c.history)
	return out
}

func (c *Customer) record(t Ticket) {
	c.mu.Lock()
	c.history = append(c.history, t)
	c.mu.Unlock()
}

// Guest is an unregistered visitor.  Guests may browse and search but any
// booking attempt fails with an unknown-requester error.
type Guest struct {
	Name string
}

func (g Guest) RequesterID() uint64   { return 0 }
func (g Guest) RequesterName() string { return g.Name }
