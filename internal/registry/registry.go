// Package registry keeps the customers allowed to book.  Guests become
// customers by registering a name and password; the reservation service
// consults the registry to reject identities it has never seen.
package registry

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/iliyamo/cinema-ticket-booking/internal/clock"
	"github.com/iliyamo/cinema-ticket-booking/internal/idgen"
	"github.com/iliyamo/cinema-ticket-booking/internal/model"
	"github.com/iliyamo/cinema-ticket-booking/internal/utils"
)

var (
	// ErrInvalidCredentials is returned when the name or password is empty.
	ErrInvalidCredentials = errors.New("name and password are required")
	// ErrNameTaken is returned when registering a name that already exists.
	ErrNameTaken = errors.New("name already registered")
	// ErrAuthFailed is returned when a name/password pair does not match.
	ErrAuthFailed = errors.New("invalid name or password")
)

// Registry is an in-memory customer directory safe for concurrent use.
type Registry struct {
	ids        idgen.Generator
	clock      clock.Clock
	bcryptCost int

	mu     sync.RWMutex
	byID   map[uint64]*model.Customer
	byName map[string]*model.Customer
}

// New returns an empty registry.
func New(ids idgen.Generator, clk clock.Clock, bcryptCost int) *Registry {
	return &Registry{
		ids:        ids,
		clock:      clk,
		bcryptCost: bcryptCost,
		byID:       make(map[uint64]*model.Customer),
		byName:     make(map[string]*model.Customer),
	}
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Register creates a customer.  Hashing happens before the registry lock is
// taken, so a slow bcrypt cost does not stall lookups.
func (r *Registry) Register(ctx context.Context, name, password string) (*model.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name = normalize(name)
	if name == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	hash, err := utils.HashPassword(password, r.bcryptCost)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byName[name]; ok {
		return nil, ErrNameTaken
	}
	c := model.NewCustomer(r.ids.Next(), name, hash, r.clock.Now())
	r.byID[c.ID] = c
	r.byName[name] = c
	return c, nil
}

// Authenticate returns the customer whose name and password match.
func (r *Registry) Authenticate(ctx context.Context, name, password string) (*model.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	c, ok := r.byName[normalize(name)]
	r.mu.RUnlock()
	if !ok || !utils.VerifyPassword(c.PasswordHash, password) {
		return nil, ErrAuthFailed
	}
	return c, nil
}

// Lookup returns the customer with the given id.
func (r *Registry) Lookup(id uint64) (*model.Customer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byID[id]
	return c, ok
}

// Known reports whether id belongs to a registered customer.
func (r *Registry) Known(id uint64) bool {
	_, ok := r.Lookup(id)
	return ok
}

// Len returns the number of registered customers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}
