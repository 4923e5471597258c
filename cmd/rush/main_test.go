package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/cinema-ticket-booking/internal/reservation"
)

func TestRush_NeverOversells(t *testing.T) {
	// Iron Man plays at PVR (capacity 100): 34 requests of 3 seats fit 33 times.
	res, err := rush(context.Background(), options{movie: "Iron Man", customers: 5, requests: 60, seats: 3, guests: 4})
	require.NoError(t, err)

	assert.Equal(t, 100, res.capacity)
	assert.Equal(t, 33, res.issued)
	assert.Equal(t, 99, res.booked)
	assert.Equal(t, 1, res.remaining)
	assert.True(t, res.balanced())
	assert.Equal(t, 4, res.failures[reservation.FailureUnknownRequester])
	assert.Equal(t, 27, res.failures[reservation.FailureInsufficientSeats])
}

func TestRush_UnknownMovie(t *testing.T) {
	_, err := rush(context.Background(), options{movie: "Titanic", customers: 1, requests: 1, seats: 1})
	assert.ErrorContains(t, err, "Titanic")
}

func TestRun_PrintsTally(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), []string{"--movie", "HouseFull 2", "--customers", "3", "--requests", "10", "--seats", "20"}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "capacity  150")
	assert.Contains(t, out.String(), "tickets   7 (140 seats)")
	assert.Contains(t, out.String(), "remaining 10")
	assert.Contains(t, out.String(), "insufficient_seats")
}

func TestParse_RejectsBadCounts(t *testing.T) {
	var out bytes.Buffer
	_, err := parse([]string{"--customers", "0"}, &out)
	assert.Error(t, err)
}
