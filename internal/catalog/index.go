// Package catalog assembles cinemas, movies and shows and indexes shows by
// movie name.  The index is built once, before booking traffic starts, and
// is read-only afterwards; scheduling new shows requires building a new
// index.
package catalog

import (
	"sort"
	"strings"

	"github.com/iliyamo/cinema-ticket-booking/internal/model"
)

// Index maps a movie name to every show of that movie.
type Index struct {
	cinemas []*model.Cinema
	byMovie map[string][]*model.Show
	byID    map[uint64]*model.Show
	movies  []string
}

// Build scans every cinema's schedule once.  Shows are listed in cinema
// order and, within a cinema, in the order they were scheduled.
func Build(cinemas []*model.Cinema) *Index {
	ix := &Index{
		cinemas: append([]*model.Cinema(nil), cinemas...),
		byMovie: make(map[string][]*model.Show),
		byID:    make(map[uint64]*model.Show),
	}
	for _, c := range cinemas {
		if c == nil {
			continue
		}
		for _, s := range c.Shows() {
			if s == nil || s.Movie == nil {
				continue
			}
			name := s.Movie.Name
			if _, ok := ix.byMovie[name]; !ok {
				ix.movies = append(ix.movies, name)
			}
			ix.byMovie[name] = append(ix.byMovie[name], s)
			ix.byID[s.ID] = s
		}
	}
	sort.Strings(ix.movies)
	return ix
}

// Search returns the shows of the named movie.  Unknown names yield an
// empty slice, never nil.  The returned slice is a copy.
func (ix *Index) Search(movieName string) []*model.Show {
	shows := ix.byMovie[strings.TrimSpace(movieName)]
	out := make([]*model.Show, len(shows))
	copy(out, shows)
	return out
}

// Show looks up a show by id.
func (ix *Index) Show(id uint64) (*model.Show, bool) {
	s, ok := ix.byID[id]
	return s, ok
}

// Movies returns the names of all movies with at least one show, sorted.
func (ix *Index) Movies() []string {
	return append([]string(nil), ix.movies...)
}

// Cinemas returns the cinemas the index was built from.
func (ix *Index) Cinemas() []*model.Cinema {
	return append([]*model.Cinema(nil), ix.cinemas...)
}
