package model

import (
	"fmt"
	"strings"
)

// Language is the spoken language of a movie.
type Language string

const (
	LanguageHindi   Language = "HINDI"
	LanguageEnglish Language = "ENGLISH"
)

// Valid reports whether l is one of the known languages.
func (l Language) Valid() bool {
	switch l {
	case LanguageHindi, LanguageEnglish:
		return true
	}
	return false
}

// ParseLanguage converts a case-insensitive name such as "english" into a Language.
func ParseLanguage(s string) (Language, error) {
	l := Language(strings.ToUpper(strings.TrimSpace(s)))
	if !l.Valid() {
		return "", fmt.Errorf("%w: unknown language %q", ErrInvalidMovie, s)
	}
	return l, nil
}

// Genre classifies a movie.
type Genre string

const (
	GenreAction  Genre = "ACTION"
	GenreRomance Genre = "ROMANCE"
	GenreComedy  Genre = "COMEDY"
	GenreHorror  Genre = "HORROR"
)

// Valid reports whether g is one of the known genres.
func (g Genre) Valid() bool {
	switch g {
	case GenreAction, GenreRomance, GenreComedy, GenreHorror:
		return true
	}
	return false
}

// ParseGenre converts a case-insensitive name such as "comedy" into a Genre.
func ParseGenre(s string) (Genre, error) {
	g := Genre(strings.ToUpper(strings.TrimSpace(s)))
	if !g.Valid() {
		return "", fmt.Errorf("%w: unknown genre %q", ErrInvalidMovie, s)
	}
	return g, nil
}

// Movie is the thing being screened.  It is plain value data and is not
// modified after construction.
//
// Fields:
//  ID       – identity assigned by the catalog.
//  Name     – title used as the search key.
//  Language – spoken language.
//  Genre    – category.
//  Rating   – average rating, 0 when unrated.
type Movie struct {
	ID       uint64
	Name     string
	Language Language
	Genre    Genre
	Rating   float32
}

// NewMovie validates and builds a Movie.  The name is trimmed but otherwise
// kept as given since it is the exact key used by search.
func NewMovie(id uint64, name string, lang Language, genre Genre) (*Movie, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidMovie)
	}
	if !lang.Valid() {
		return nil, fmt.Errorf("%w: unknown language %q", ErrInvalidMovie, lang)
	}
	if !genre.Valid() {
		return nil, fmt.Errorf("%w: unknown genre %q", ErrInvalidMovie, genre)
	}
	return &Movie{ID: id, Name: name, Language: lang, Genre: genre}, nil
}
