// Package repository reads catalog data from MySQL.  Reservations are held in
// memory by the booking core, so the only tables touched here are the
// read-only catalog tables (cinemas, movies, shows).
package repository

import "errors"

// ErrEmptyCatalog is returned when the cinemas table has no active rows.
// The server refuses to start without at least one cinema.
var ErrEmptyCatalog = errors.New("catalog has no active cinemas")
