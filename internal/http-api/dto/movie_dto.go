package dto

import (
	"streamhub/internal/http-api/models"
)

// CreateMovieDTO used for POST /api/movies
type CreateMovieDTO struct {
	Title       string  `json:"title" binding:"required"`
	Slug        *string `json:"slug,omitempty"` // optional, derived from title when absent
	Poster      *string `json:"poster,omitempty"`
	Description *string `json:"description,omitempty"`
	ReleaseYear *int    `json:"release_year,omitempty"`
	Genre       *string `json:"genre,omitempty"`
	Duration    *int    `json:"duration,omitempty"`
	IsAvailable bool    `json:"is_available"`
	IMDBID      *string `json:"imdb_id,omitempty"`
}

func (d CreateMovieDTO) ToModel() models.Movie {
	m := models.Movie{
		Title:       d.Title,
		Poster:      d.Poster,
		Description: d.Description,
		ReleaseYear: d.ReleaseYear,
		Genre:       d.Genre,
		Duration:    d.Duration,
		IsAvailable: d.IsAvailable,
		IMDBID:      d.IMDBID,
	}
	if d.Slug != nil {
		m.Slug = *d.Slug
	}
	return m
}

// UpdateMovieDTO used for PUT /api/movies/:slug (partial updates allowed).
// The slug is deliberately absent: it is assigned once at creation.
type UpdateMovieDTO struct {
	Title       *string `json:"title,omitempty"`
	Poster      *string `json:"poster,omitempty"`
	Description *string `json:"description,omitempty"`
	ReleaseYear *int    `json:"release_year,omitempty"`
	Genre       *string `json:"genre,omitempty"`
	Duration    *int    `json:"duration,omitempty"`
	IsAvailable *bool   `json:"is_available,omitempty"`
	IMDBID      *string `json:"imdb_id,omitempty"`
}

func (d UpdateMovieDTO) ApplyTo(m *models.Movie) {
	if d.Title != nil {
		m.Title = *d.Title
	}
	if d.Poster != nil {
		m.Poster = d.Poster
	}
	if d.Description != nil {
		m.Description = d.Description
	}
	if d.ReleaseYear != nil {
		m.ReleaseYear = d.ReleaseYear
	}
	if d.Genre != nil {
		m.Genre = d.Genre
	}
	if d.Duration != nil {
		m.Duration = d.Duration
	}
	if d.IsAvailable != nil {
		m.IsAvailable = *d.IsAvailable
	}
	if d.IMDBID != nil {
		m.IMDBID = d.IMDBID
	}
}

// CreateMediaDTO used for POST /api/media
type CreateMediaDTO struct {
	MovieID     int64   `json:"movie_id" binding:"required"`
	Episode     *int    `json:"episode,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (d CreateMediaDTO) ToModel() models.Media {
	return models.Media{
		MovieID:     d.MovieID,
		Episode:     d.Episode,
		Description: d.Description,
	}
}
