package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// CinemaRow mirrors the `cinemas` table.
type CinemaRow struct {
	ID       uint64 // cinemas.id
	Name     string // cinemas.name
	Location string // cinemas.location
	Capacity int    // cinemas.capacity
}

// MovieRow mirrors the `movies` table.  Language and genre are stored as
// upper-case names (ENGLISH, ACTION, ...).
type MovieRow struct {
	ID       uint64  // movies.id
	Title    string  // movies.title
	Language string  // movies.language
	Genre    string  // movies.genre
	Rating   float32 // movies.rating (nullable, 0 when unrated)
}

// ShowRow mirrors the `shows` table.
type ShowRow struct {
	ID       uint64    // shows.id
	CinemaID uint64    // shows.cinema_id
	MovieID  uint64    // shows.movie_id
	StartsAt time.Time // shows.starts_at
}

// CatalogRepo loads the catalog in one pass at startup.
type CatalogRepo struct{ db *sql.DB }

func NewCatalogRepo(db *sql.DB) *CatalogRepo { return &CatalogRepo{db: db} }

// LoadCinemas returns every active cinema ordered by id.
func (r *CatalogRepo) LoadCinemas(ctx context.Context) ([]CinemaRow, error) {
	const q = `SELECT id, name, location, capacity FROM cinemas WHERE is_active = 1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query cinemas: %w", err)
	}
	defer rows.Close()

	var out []CinemaRow
	for rows.Next() {
		var c CinemaRow
		if err := rows.Scan(&c.ID, &c.Name, &c.Location, &c.Capacity); err != nil {
			return nil, fmt.Errorf("scan cinema: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrEmptyCatalog
	}
	return out, nil
}

// LoadMovies returns every movie ordered by id.
func (r *CatalogRepo) LoadMovies(ctx context.Context) ([]MovieRow, error) {
	const q = `SELECT id, title, language, genre, COALESCE(rating, 0) FROM movies ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query movies: %w", err)
	}
	defer rows.Close()

	var out []MovieRow
	for rows.Next() {
		var m MovieRow
		if err := rows.Scan(&m.ID, &m.Title, &m.Language, &m.Genre, &m.Rating); err != nil {
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// LoadShows returns scheduled shows starting at or after from, grouped by
// cinema and ordered by start time within each cinema.
func (r *CatalogRepo) LoadShows(ctx context.Context, from time.Time) ([]ShowRow, error) {
	const q = `SELECT id, cinema_id, movie_id, starts_at
		FROM shows
		WHERE status = 'SCHEDULED' AND starts_at >= ?
		ORDER BY cinema_id, starts_at, id`
	rows, err := r.db.QueryContext(ctx, q, from.UTC())
	if err != nil {
		return nil, fmt.Errorf("query shows: %w", err)
	}
	defer rows.Close()

	var out []ShowRow
	for rows.Next() {
		var s ShowRow
		if err := rows.Scan(&s.ID, &s.CinemaID, &s.MovieID, &s.StartsAt); err != nil {
			return nil, fmt.Errorf("scan show: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
