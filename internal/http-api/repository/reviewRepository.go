package repository

import (
	"streamhub/internal/http-api/models"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(review *models.Review) error
	Update(review *models.Review) error
	Delete(id int64) error
	FindByID(id int64) (*models.Review, error)
	List(movieID *int64, rating *int) ([]models.Review, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

func (r *reviewRepository) Update(review *models.Review) error {
	return r.db.Save(review).Error
}

func (r *reviewRepository) Delete(id int64) error {
	result := r.db.Delete(&models.Review{}, "review_id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *reviewRepository) FindByID(id int64) (*models.Review, error) {
	var review models.Review
	if err := r.db.Preload("User").First(&review, "review_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// List returns reviews, optionally filtered by movie and exact rating.
// Reviews are public so the listing is not scoped to any user.
func (r *reviewRepository) List(movieID *int64, rating *int) ([]models.Review, error) {
	var reviews []models.Review
	q := r.db.Preload("User").Order("review_date DESC")
	if movieID != nil {
		q = q.Where("movie_id = ?", *movieID)
	}
	if rating != nil {
		q = q.Where("rating = ?", *rating)
	}
	if err := q.Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}
