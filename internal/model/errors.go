package model

import "errors"

// ErrInvalidCapacity is returned when a cinema is created without any seats.
var ErrInvalidCapacity = errors.New("capacity must be positive")

// ErrInvalidMovie is returned when a movie has no name or an unknown
// language/genre.
var ErrInvalidMovie = errors.New("invalid movie")

// ErrMissingMovie is returned when a show is scheduled without a movie.
var ErrMissingMovie = errors.New("show requires a movie")
