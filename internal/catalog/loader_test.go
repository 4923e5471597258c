package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/cinema-ticket-booking/internal/model"
	"github.com/iliyamo/cinema-ticket-booking/internal/repository"
)

type fakeSource struct {
	cinemas []repository.CinemaRow
	movies  []repository.MovieRow
	shows   []repository.ShowRow
	err     error
	from    time.Time
}

func (f *fakeSource) LoadCinemas(context.Context) ([]repository.CinemaRow, error) {
	return f.cinemas, f.err
}

func (f *fakeSource) LoadMovies(context.Context) ([]repository.MovieRow, error) {
	return f.movies, nil
}

func (f *fakeSource) LoadShows(_ context.Context, from time.Time) ([]repository.ShowRow, error) {
	f.from = from
	return f.shows, nil
}

func TestLoad(t *testing.T) {
	src := &fakeSource{
		cinemas: []repository.CinemaRow{{ID: 1, Name: "PVR", Location: "Delhi", Capacity: 100}},
		movies:  []repository.MovieRow{{ID: 10, Title: "Iron Man", Language: "english", Genre: "action", Rating: 4.2}},
		shows:   []repository.ShowRow{{ID: 100, CinemaID: 1, MovieID: 10, StartsAt: now.Add(time.Hour)}},
	}

	cinemas, err := Load(context.Background(), src, now)
	require.NoError(t, err)
	assert.Equal(t, now, src.from)
	require.Len(t, cinemas, 1)
	assert.Equal(t, 100, cinemas[0].Capacity())

	shows := Build(cinemas).Search("Iron Man")
	require.Len(t, shows, 1)
	assert.Equal(t, uint64(100), shows[0].ID)
	assert.Equal(t, model.GenreAction, shows[0].Movie.Genre)
	assert.InDelta(t, 4.2, shows[0].Movie.Rating, 0.001)
	assert.Equal(t, 100, shows[0].AvailableSeats())
}

func TestLoad_DanglingShow(t *testing.T) {
	src := &fakeSource{
		cinemas: []repository.CinemaRow{{ID: 1, Name: "PVR", Location: "Delhi", Capacity: 100}},
		shows:   []repository.ShowRow{{ID: 100, CinemaID: 1, MovieID: 99}},
	}
	_, err := Load(context.Background(), src, now)
	assert.ErrorIs(t, err, ErrDanglingReference)
}

func TestLoad_BadRows(t *testing.T) {
	_, err := Load(context.Background(), &fakeSource{
		cinemas: []repository.CinemaRow{{ID: 1, Name: "PVR", Capacity: 0}},
	}, now)
	assert.ErrorIs(t, err, model.ErrInvalidCapacity)

	_, err = Load(context.Background(), &fakeSource{
		cinemas: []repository.CinemaRow{{ID: 1, Name: "PVR", Capacity: 10}},
		movies:  []repository.MovieRow{{ID: 10, Title: "Iron Man", Language: "FRENCH", Genre: "ACTION"}},
	}, now)
	assert.ErrorIs(t, err, model.ErrInvalidMovie)
}

func TestLoad_SourceError(t *testing.T) {
	_, err := Load(context.Background(), &fakeSource{err: repository.ErrEmptyCatalog}, now)
	assert.True(t, errors.Is(err, repository.ErrEmptyCatalog))
}
