package service

import (
	"context"
	"errors"

	"streamhub/internal/http-api/models"
	"streamhub/internal/http-api/repository"
)

var (
	ErrReviewNotFound = errors.New("review not found")
	ErrNotOwner       = errors.New("not the owner of this resource")
)

type ReviewService interface {
	Create(ctx context.Context, userID, movieID int64, rating int, text *string) (*models.Review, error)
	Update(ctx context.Context, userID, reviewID int64, rating *int, text *string) (*models.Review, error)
	Delete(ctx context.Context, userID, reviewID int64) error
	List(ctx context.Context, movieID *int64, rating *int) ([]models.Review, error)
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	movieRepo  MovieStore
}

func NewReviewService(reviewRepo repository.ReviewRepository, movieRepo MovieStore) ReviewService {
	return &reviewService{reviewRepo: reviewRepo, movieRepo: movieRepo}
}

// Create stores a review owned by userID. The rating is stored as given;
// there is no range check beyond it being an integer.
func (s *reviewService) Create(ctx context.Context, userID, movieID int64, rating int, text *string) (*models.Review, error) {
	if _, err := s.movieRepo.GetByID(ctx, movieID); err != nil {
		return nil, ErrMovieNotFound
	}

	review := &models.Review{
		UserID:     userID,
		MovieID:    movieID,
		Rating:     rating,
		ReviewText: text,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) Update(ctx context.Context, userID, reviewID int64, rating *int, text *string) (*models.Review, error) {
	review, err := s.reviewRepo.FindByID(reviewID)
	if err != nil {
		return nil, ErrReviewNotFound
	}
	if review.UserID != userID {
		return nil, ErrNotOwner
	}

	if rating != nil {
		review.Rating = *rating
	}
	if text != nil {
		review.ReviewText = text
	}
	if err := s.reviewRepo.Update(review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) Delete(ctx context.Context, userID, reviewID int64) error {
	review, err := s.reviewRepo.FindByID(reviewID)
	if err != nil {
		return ErrReviewNotFound
	}
	if review.UserID != userID {
		return ErrNotOwner
	}
	return s.reviewRepo.Delete(reviewID)
}

// List is public and unscoped; reviews are readable by anyone.
func (s *reviewService) List(ctx context.Context, movieID *int64, rating *int) ([]models.Review, error) {
	return s.reviewRepo.List(movieID, rating)
}
