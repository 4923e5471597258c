package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*CatalogRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewCatalogRepo(db), mock
}

func TestLoadCinemas(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectQuery("FROM cinemas WHERE is_active = 1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "location", "capacity"}).
			AddRow(1, "PVR", "Delhi", 100).
			AddRow(2, "INOX", "Mumbai", 150))

	got, err := repo.LoadCinemas(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []CinemaRow{
		{ID: 1, Name: "PVR", Location: "Delhi", Capacity: 100},
		{ID: 2, Name: "INOX", Location: "Mumbai", Capacity: 150},
	}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadCinemas_Empty(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectQuery("FROM cinemas").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "location", "capacity"}))

	_, err := repo.LoadCinemas(context.Background())
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestLoadCinemas_QueryError(t *testing.T) {
	repo, mock := newMock(t)
	boom := errors.New("connection refused")
	mock.ExpectQuery("FROM cinemas").WillReturnError(boom)

	_, err := repo.LoadCinemas(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestLoadMovies(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectQuery("FROM movies").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "language", "genre", "rating"}).
			AddRow(10, "Iron Man", "ENGLISH", "ACTION", 4.5))

	got, err := repo.LoadMovies(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, MovieRow{ID: 10, Title: "Iron Man", Language: "ENGLISH", Genre: "ACTION", Rating: 4.5}, got[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadShows(t *testing.T) {
	repo, mock := newMock(t)
	from := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	starts := from.Add(2 * time.Hour)
	mock.ExpectQuery("FROM shows").
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "cinema_id", "movie_id", "starts_at"}).
			AddRow(100, 1, 10, starts))

	got, err := repo.LoadShows(context.Background(), from)
	require.NoError(t, err)
	assert.Equal(t, []ShowRow{{ID: 100, CinemaID: 1, MovieID: 10, StartsAt: starts}}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
