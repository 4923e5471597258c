package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iliyamo/cinema-ticket-booking/internal/model"
	"github.com/iliyamo/cinema-ticket-booking/internal/repository"
)

// ErrDanglingReference is returned when a show row points at a cinema or
// movie that was not loaded.
var ErrDanglingReference = errors.New("show references unknown cinema or movie")

// Source supplies catalog rows.  *repository.CatalogRepo implements it.
type Source interface {
	LoadCinemas(ctx context.Context) ([]repository.CinemaRow, error)
	LoadMovies(ctx context.Context) ([]repository.MovieRow, error)
	LoadShows(ctx context.Context, from time.Time) ([]repository.ShowRow, error)
}

// Load reads cinemas, movies and upcoming shows from src and schedules each
// show on its cinema with a full seat pool.
func Load(ctx context.Context, src Source, from time.Time) ([]*model.Cinema, error) {
	cinemaRows, err := src.LoadCinemas(ctx)
	if err != nil {
		return nil, fmt.Errorf("load cinemas: %w", err)
	}
	movieRows, err := src.LoadMovies(ctx)
	if err != nil {
		return nil, fmt.Errorf("load movies: %w", err)
	}
	showRows, err := src.LoadShows(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("load shows: %w", err)
	}

	cinemas := make([]*model.Cinema, 0, len(cinemaRows))
	byCinema := make(map[uint64]*model.Cinema, len(cinemaRows))
	for _, row := range cinemaRows {
		c, err := model.NewCinema(row.ID, row.Name, row.Location, row.Capacity)
		if err != nil {
			return nil, fmt.Errorf("cinema %d: %w", row.ID, err)
		}
		cinemas = append(cinemas, c)
		byCinema[c.ID] = c
	}

	movies := make(map[uint64]*model.Movie, len(movieRows))
	for _, row := range movieRows {
		lang, err := model.ParseLanguage(row.Language)
		if err != nil {
			return nil, fmt.Errorf("movie %d: %w", row.ID, err)
		}
		genre, err := model.ParseGenre(row.Genre)
		if err != nil {
			return nil, fmt.Errorf("movie %d: %w", row.ID, err)
		}
		m, err := model.NewMovie(row.ID, row.Title, lang, genre)
		if err != nil {
			return nil, fmt.Errorf("movie %d: %w", row.ID, err)
		}
		m.Rating = row.Rating
		movies[m.ID] = m
	}

	for _, row := range showRows {
		c, okC := byCinema[row.CinemaID]
		m, okM := movies[row.MovieID]
		if !okC || !okM {
			return nil, fmt.Errorf("show %d (cinema %d, movie %d): %w", row.ID, row.CinemaID, row.MovieID, ErrDanglingReference)
		}
		if _, err := c.Schedule(row.ID, m, row.StartsAt); err != nil {
			return nil, fmt.Errorf("show %d: %w", row.ID, err)
		}
	}
	return cinemas, nil
}
