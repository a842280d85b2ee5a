package repository

import (
	"context"
	"fmt"

	"streamhub/internal/http-api/models"

	"gorm.io/gorm"
)

type MediaRepo struct {
	db *gorm.DB
}

func NewMediaRepo(db *gorm.DB) *MediaRepo {
	return &MediaRepo{db: db}
}

// List returns media entries, optionally filtered by movie and episode.
func (r *MediaRepo) List(ctx context.Context, movieID *int64, episode *int) ([]models.Media, error) {
	var list []models.Media
	q := r.db.WithContext(ctx)
	if movieID != nil {
		q = q.Where("movie_id = ?", *movieID)
	}
	if episode != nil {
		q = q.Where("episode = ?", *episode)
	}
	if err := q.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list media: %w", err)
	}
	return list, nil
}

func (r *MediaRepo) Create(ctx context.Context, m *models.Media) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("create media: %w", err)
	}
	return nil
}

func (r *MediaRepo) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Media{}, "media_id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete media: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
