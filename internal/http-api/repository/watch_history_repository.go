package repository

import (
	"streamhub/internal/http-api/models"

	"gorm.io/gorm"
)

type WatchHistoryRepository interface {
	Create(entry *models.WatchHistory) error
	ListByUser(userID int64) ([]models.WatchHistory, error)
	FindByID(id int64) (*models.WatchHistory, error)
	Delete(id int64) error
}

type watchHistoryRepository struct {
	db *gorm.DB
}

func NewWatchHistoryRepository(db *gorm.DB) WatchHistoryRepository {
	return &watchHistoryRepository{db: db}
}

func (r *watchHistoryRepository) Create(entry *models.WatchHistory) error {
	return r.db.Create(entry).Error
}

// ListByUser returns only the given user's history; ownership scoping
// happens here, not in the handler.
func (r *watchHistoryRepository) ListByUser(userID int64) ([]models.WatchHistory, error) {
	var entries []models.WatchHistory
	if err := r.db.Preload("Movie").
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *watchHistoryRepository) FindByID(id int64) (*models.WatchHistory, error) {
	var entry models.WatchHistory
	if err := r.db.First(&entry, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *watchHistoryRepository) Delete(id int64) error {
	result := r.db.Delete(&models.WatchHistory{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
