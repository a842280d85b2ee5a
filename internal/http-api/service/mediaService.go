package service

import (
	"context"
	"errors"

	"streamhub/internal/http-api/models"
	"streamhub/internal/http-api/repository"

	"gorm.io/gorm"
)

var ErrMediaNotFound = errors.New("media not found")

type MediaService interface {
	List(ctx context.Context, movieID *int64, episode *int) ([]models.Media, error)
	Create(ctx context.Context, m *models.Media) error
	Delete(ctx context.Context, id int64) error
}

type mediaService struct {
	mediaRepo *repository.MediaRepo
	movieRepo MovieStore
}

func NewMediaService(mediaRepo *repository.MediaRepo, movieRepo MovieStore) MediaService {
	return &mediaService{mediaRepo: mediaRepo, movieRepo: movieRepo}
}

func (s *mediaService) List(ctx context.Context, movieID *int64, episode *int) ([]models.Media, error) {
	return s.mediaRepo.List(ctx, movieID, episode)
}

func (s *mediaService) Create(ctx context.Context, m *models.Media) error {
	if _, err := s.movieRepo.GetByID(ctx, m.MovieID); err != nil {
		return ErrMovieNotFound
	}
	return s.mediaRepo.Create(ctx, m)
}

func (s *mediaService) Delete(ctx context.Context, id int64) error {
	if err := s.mediaRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMediaNotFound
		}
		return err
	}
	return nil
}
