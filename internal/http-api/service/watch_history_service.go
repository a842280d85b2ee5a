package service

import (
	"context"
	"errors"

	"streamhub/internal/http-api/models"
	"streamhub/internal/http-api/repository"
)

var ErrHistoryNotFound = errors.New("watch history entry not found")

type WatchHistoryService interface {
	Create(ctx context.Context, userID, movieID int64, watchDuration int) (*models.WatchHistory, error)
	List(ctx context.Context, userID int64) ([]models.WatchHistory, error)
	Delete(ctx context.Context, userID, entryID int64) error
}

type watchHistoryService struct {
	historyRepo repository.WatchHistoryRepository
	movieRepo   MovieStore
}

func NewWatchHistoryService(historyRepo repository.WatchHistoryRepository, movieRepo MovieStore) WatchHistoryService {
	return &watchHistoryService{historyRepo: historyRepo, movieRepo: movieRepo}
}

// Create records a playback session for the caller; the timestamp is set
// by the store at insert time.
func (s *watchHistoryService) Create(ctx context.Context, userID, movieID int64, watchDuration int) (*models.WatchHistory, error) {
	if _, err := s.movieRepo.GetByID(ctx, movieID); err != nil {
		return nil, ErrMovieNotFound
	}

	entry := &models.WatchHistory{
		UserID:        userID,
		MovieID:       movieID,
		WatchDuration: watchDuration,
	}
	if err := s.historyRepo.Create(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// List returns only the caller's own history.
func (s *watchHistoryService) List(ctx context.Context, userID int64) ([]models.WatchHistory, error) {
	return s.historyRepo.ListByUser(userID)
}

func (s *watchHistoryService) Delete(ctx context.Context, userID, entryID int64) error {
	entry, err := s.historyRepo.FindByID(entryID)
	if err != nil {
		return ErrHistoryNotFound
	}
	if entry.UserID != userID {
		return ErrNotOwner
	}
	return s.historyRepo.Delete(entryID)
}
