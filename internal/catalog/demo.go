package catalog

import (
	"time"

	"github.com/iliyamo/cinema-ticket-booking/internal/idgen"
	"github.com/iliyamo/cinema-ticket-booking/internal/model"
)

// Demo returns the built-in sample catalog used when no database is
// configured: two cinemas, four movies and four shows starting two, four,
// six and eight hours after now.
func Demo(ids idgen.Generator, now time.Time) []*model.Cinema {
	ironMan := mustMovie(ids, "Iron Man", model.LanguageEnglish, model.GenreAction)
	avengers := mustMovie(ids, "Avengers: End Game", model.LanguageEnglish, model.GenreAction)
	walk := mustMovie(ids, "The Walk To Remember", model.LanguageEnglish, model.GenreRomance)
	housefull := mustMovie(ids, "HouseFull 2", model.LanguageEnglish, model.GenreComedy)

	pvr := mustCinema(ids, "PVR", "Delhi", 100)
	inox := mustCinema(ids, "INOX", "Mumbai", 150)

	mustSchedule(pvr, ids, ironMan, now.Add(2*time.Hour))
	mustSchedule(inox, ids, avengers, now.Add(4*time.Hour))
	mustSchedule(pvr, ids, walk, now.Add(6*time.Hour))
	mustSchedule(inox, ids, housefull, now.Add(8*time.Hour))

	return []*model.Cinema{pvr, inox}
}

func mustMovie(ids idgen.Generator, name string, l model.Language, g model.Genre) *model.Movie {
	m, err := model.NewMovie(ids.Next(), name, l, g)
	if err != nil {
		panic(err)
	}
	return m
}

func mustCinema(ids idgen.Generator, name, location string, capacity int) *model.Cinema {
	c, err := model.NewCinema(ids.Next(), name, location, capacity)
	if err != nil {
		panic(err)
	}
	return c
}

func mustSchedule(c *model.Cinema, ids idgen.Generator, m *model.Movie, at time.Time) {
	if _, err := c.Schedule(ids.Next(), m, at); err != nil {
		panic(err)
	}
}
