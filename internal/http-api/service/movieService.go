package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"streamhub/internal/cache"
	"streamhub/internal/http-api/models"
	"streamhub/internal/http-api/repository"
)

var (
	ErrMovieNotFound = errors.New("movie not found")
	ErrTitleRequired = errors.New("title is required")
)

const featuredLimit = 10

type MovieService interface {
	List(ctx context.Context, f repository.MovieFilter) ([]models.Movie, int64, error)
	GetBySlug(ctx context.Context, slug string) (*models.Movie, error)
	Featured(ctx context.Context) ([]models.Movie, error)
	Recent(ctx context.Context) ([]models.Movie, error)
	Create(ctx context.Context, m *models.Movie) error
	Update(ctx context.Context, slug string, apply func(*models.Movie)) (*models.Movie, error)
	Delete(ctx context.Context, slug string) error
}

// MovieStore is the repository surface the service needs; satisfied by
// *repository.MovieRepo.
type MovieStore interface {
	List(ctx context.Context, f repository.MovieFilter) ([]models.Movie, int64, error)
	GetBySlug(ctx context.Context, slug string) (*models.Movie, error)
	GetByID(ctx context.Context, id int64) (*models.Movie, error)
	Create(ctx context.Context, m *models.Movie) error
	Update(ctx context.Context, m *models.Movie) error
	Delete(ctx context.Context, id int64) error
	Featured(ctx context.Context, limit int) ([]models.Movie, error)
	Recent(ctx context.Context, limit int) ([]models.Movie, error)
}

type movieService struct {
	repo  MovieStore
	cache *cache.MovieCache
}

func NewMovieService(repo MovieStore, movieCache *cache.MovieCache) MovieService {
	return &movieService{repo: repo, cache: movieCache}
}

func (s *movieService) List(ctx context.Context, f repository.MovieFilter) ([]models.Movie, int64, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 || f.PageSize > 100 {
		f.PageSize = 20
	}
	return s.repo.List(ctx, f)
}

func (s *movieService) GetBySlug(ctx context.Context, slug string) (*models.Movie, error) {
	m, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, ErrMovieNotFound
	}
	return m, nil
}

func (s *movieService) Featured(ctx context.Context) ([]models.Movie, error) {
	if movies, ok := s.cache.GetMovies(ctx, cache.KeyFeatured); ok {
		return movies, nil
	}
	movies, err := s.repo.Featured(ctx, featuredLimit)
	if err != nil {
		return nil, err
	}
	s.cache.SetMovies(ctx, cache.KeyFeatured, movies)
	return movies, nil
}

func (s *movieService) Recent(ctx context.Context) ([]models.Movie, error) {
	if movies, ok := s.cache.GetMovies(ctx, cache.KeyRecent); ok {
		return movies, nil
	}
	movies, err := s.repo.Recent(ctx, featuredLimit)
	if err != nil {
		return nil, err
	}
	s.cache.SetMovies(ctx, cache.KeyRecent, movies)
	return movies, nil
}

// Create assigns the slug from the title when the caller did not supply
// one. The slug is set exactly once here and never recomputed.
func (s *movieService) Create(ctx context.Context, m *models.Movie) error {
	if strings.TrimSpace(m.Title) == "" {
		return ErrTitleRequired
	}

	if strings.TrimSpace(m.Slug) == "" {
		m.Slug = GenerateSlug(m.Title)
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, cache.KeyFeatured, cache.KeyRecent)
	return nil
}

// Update applies the given mutation to the stored movie. Title edits do
// not touch the slug; a movie keeps the slug it was created with.
func (s *movieService) Update(ctx context.Context, slug string, apply func(*models.Movie)) (*models.Movie, error) {
	existing, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, ErrMovieNotFound
	}

	keep := existing.Slug
	apply(existing)
	existing.Slug = keep

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, cache.KeyFeatured, cache.KeyRecent)
	return existing, nil
}

func (s *movieService) Delete(ctx context.Context, slug string) error {
	existing, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return ErrMovieNotFound
	}
	if err := s.repo.Delete(ctx, existing.ID); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, cache.KeyFeatured, cache.KeyRecent)
	return nil
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9-]`)

// GenerateSlug turns a title into its URL-safe form: "The Matrix" -> "the-matrix".
func GenerateSlug(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = strings.ReplaceAll(s, " ", "-")
	s = nonAlnum.ReplaceAllString(s, "")
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	s = strings.Trim(s, "-")
	return s
}
