package repository

import (
	"context"
	"fmt"
	"strings"

	"streamhub/internal/http-api/models"

	"gorm.io/gorm"
)

// MovieFilter carries the query-string filters for the movie listing.
type MovieFilter struct {
	Genre       *string
	ReleaseYear *int
	IsAvailable *bool
	Search      string // matches title or description, case-insensitive
	Ordering    string // release_year|title|duration, '-' prefix for descending
	Page        int
	PageSize    int
}

var orderableColumns = map[string]string{
	"release_year": "release_year",
	"title":        "title",
	"duration":     "duration",
}

type MovieRepo struct {
	db *gorm.DB
}

func NewMovieRepo(db *gorm.DB) *MovieRepo {
	return &MovieRepo{db: db}
}

func (r *MovieRepo) List(ctx context.Context, f MovieFilter) ([]models.Movie, int64, error) {
	var list []models.Movie
	var total int64

	q := r.db.WithContext(ctx).Model(&models.Movie{})
	if f.Genre != nil {
		q = q.Where("genre = ?", *f.Genre)
	}
	if f.ReleaseYear != nil {
		q = q.Where("release_year = ?", *f.ReleaseYear)
	}
	if f.IsAvailable != nil {
		q = q.Where("is_available = ?", *f.IsAvailable)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		p := "%" + s + "%"
		// use COALESCE to avoid NULL description breaking ILIKE
		q = q.Where("(title ILIKE ? OR COALESCE(description,'') ILIKE ?)", p, p)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if order, ok := parseOrdering(f.Ordering); ok {
		q = q.Order(order)
	}

	offset := (f.Page - 1) * f.PageSize
	if err := q.
		Preload("Reviews").
		Preload("Reviews.User").
		Preload("Media").
		Limit(f.PageSize).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

// parseOrdering maps a Django-style ordering parameter ("-release_year")
// onto a whitelisted ORDER BY clause.
func parseOrdering(ordering string) (string, bool) {
	if ordering == "" {
		return "", false
	}
	dir := "ASC"
	if strings.HasPrefix(ordering, "-") {
		dir = "DESC"
		ordering = ordering[1:]
	}
	col, ok := orderableColumns[ordering]
	if !ok {
		return "", false
	}
	return col + " " + dir, true
}

func (r *MovieRepo) GetBySlug(ctx context.Context, slug string) (*models.Movie, error) {
	var m models.Movie
	if err := r.db.WithContext(ctx).
		Preload("Reviews").
		Preload("Reviews.User").
		Preload("Media").
		Where("slug = ?", slug).
		First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MovieRepo) GetByID(ctx context.Context, id int64) (*models.Movie, error) {
	var m models.Movie
	if err := r.db.WithContext(ctx).First(&m, "movie_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MovieRepo) Create(ctx context.Context, m *models.Movie) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("create movie: %w", err)
	}
	return nil
}

func (r *MovieRepo) Update(ctx context.Context, m *models.Movie) error {
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return fmt.Errorf("update movie: %w", err)
	}
	return nil
}

func (r *MovieRepo) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.Movie{}, "movie_id = ?", id).Error; err != nil {
		return fmt.Errorf("delete movie: %w", err)
	}
	return nil
}

// Featured returns up to limit available movies in store order.
func (r *MovieRepo) Featured(ctx context.Context, limit int) ([]models.Movie, error) {
	var list []models.Movie
	if err := r.db.WithContext(ctx).
		Where("is_available = ?", true).
		Limit(limit).
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("featured movies: %w", err)
	}
	return list, nil
}

// Recent returns up to limit available movies, newest release year first.
func (r *MovieRepo) Recent(ctx context.Context, limit int) ([]models.Movie, error) {
	var list []models.Movie
	if err := r.db.WithContext(ctx).
		Where("is_available = ?", true).
		Order("release_year DESC").
		Limit(limit).
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("recent movies: %w", err)
	}
	return list, nil
}
