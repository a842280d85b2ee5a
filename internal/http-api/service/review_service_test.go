package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"streamhub/internal/http-api/models"
)

// MockReviewRepository mocks the ReviewRepository interface
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(review *models.Review) error {
	args := m.Called(review)
	return args.Error(0)
}

func (m *MockReviewRepository) Update(review *models.Review) error {
	args := m.Called(review)
	return args.Error(0)
}

func (m *MockReviewRepository) Delete(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockReviewRepository) FindByID(id int64) (*models.Review, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewRepository) List(movieID *int64, rating *int) ([]models.Review, error) {
	args := m.Called(movieID, rating)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func TestReviewCreate_Success(t *testing.T) {
	mockReviewRepo := new(MockReviewRepository)
	store := new(MockMovieStore)
	svc := NewReviewService(mockReviewRepo, store)

	movie := &models.Movie{ID: 3, Title: "The Matrix", Slug: "the-matrix"}
	store.On("GetByID", mock.Anything, int64(3)).Return(movie, nil)
	mockReviewRepo.On("Create", mock.AnythingOfType("*models.Review")).Return(nil)

	text := "great"
	review, err := svc.Create(context.Background(), 42, 3, 5, &text)

	assert.NoError(t, err)
	assert.NotNil(t, review)
	assert.Equal(t, int64(42), review.UserID)
	assert.Equal(t, int64(3), review.MovieID)
	assert.Equal(t, 5, review.Rating)
	mockReviewRepo.AssertExpectations(t)
	store.AssertExpectations(t)
}

func TestReviewCreate_MovieMissing(t *testing.T) {
	mockReviewRepo := new(MockReviewRepository)
	store := new(MockMovieStore)
	svc := NewReviewService(mockReviewRepo, store)

	store.On("GetByID", mock.Anything, int64(3)).Return(nil, gorm.ErrRecordNotFound)

	review, err := svc.Create(context.Background(), 42, 3, 5, nil)

	assert.Error(t, err)
	assert.Equal(t, ErrMovieNotFound, err)
	assert.Nil(t, review)
	mockReviewRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestReviewUpdate_OwnerOnly(t *testing.T) {
	mockReviewRepo := new(MockReviewRepository)
	store := new(MockMovieStore)
	svc := NewReviewService(mockReviewRepo, store)

	existing := &models.Review{ID: 9, UserID: 99, MovieID: 3, Rating: 2}
	mockReviewRepo.On("FindByID", int64(9)).Return(existing, nil)

	rating := 5
	review, err := svc.Update(context.Background(), 42, 9, &rating, nil)

	assert.Error(t, err)
	assert.Equal(t, ErrNotOwner, err)
	assert.Nil(t, review)
	mockReviewRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestReviewUpdate_PartialFields(t *testing.T) {
	mockReviewRepo := new(MockReviewRepository)
	store := new(MockMovieStore)
	svc := NewReviewService(mockReviewRepo, store)

	oldText := "meh"
	existing := &models.Review{ID: 9, UserID: 42, MovieID: 3, Rating: 2, ReviewText: &oldText}
	mockReviewRepo.On("FindByID", int64(9)).Return(existing, nil)
	mockReviewRepo.On("Update", mock.AnythingOfType("*models.Review")).Return(nil)

	rating := 5
	review, err := svc.Update(context.Background(), 42, 9, &rating, nil)

	assert.NoError(t, err)
	assert.Equal(t, 5, review.Rating)
	// Text was not supplied, so it stays
	assert.Equal(t, "meh", *review.ReviewText)
	mockReviewRepo.AssertExpectations(t)
}

func TestReviewDelete_NotFound(t *testing.T) {
	mockReviewRepo := new(MockReviewRepository)
	store := new(MockMovieStore)
	svc := NewReviewService(mockReviewRepo, store)

	mockReviewRepo.On("FindByID", int64(9)).Return(nil, gorm.ErrRecordNotFound)

	err := svc.Delete(context.Background(), 42, 9)

	assert.Error(t, err)
	assert.Equal(t, ErrReviewNotFound, err)
}

func TestReviewDelete_Success(t *testing.T) {
	mockReviewRepo := new(MockReviewRepository)
	store := new(MockMovieStore)
	svc := NewReviewService(mockReviewRepo, store)

	existing := &models.Review{ID: 9, UserID: 42}
	mockReviewRepo.On("FindByID", int64(9)).Return(existing, nil)
	mockReviewRepo.On("Delete", int64(9)).Return(nil)

	err := svc.Delete(context.Background(), 42, 9)

	assert.NoError(t, err)
	mockReviewRepo.AssertExpectations(t)
}

func TestReviewList_Public(t *testing.T) {
	mockReviewRepo := new(MockReviewRepository)
	store := new(MockMovieStore)
	svc := NewReviewService(mockReviewRepo, store)

	movieID := int64(3)
	reviews := []models.Review{{ID: 1, UserID: 42, MovieID: 3, Rating: 5}}
	mockReviewRepo.On("List", &movieID, (*int)(nil)).Return(reviews, nil)

	got, err := svc.List(context.Background(), &movieID, nil)

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	mockReviewRepo.AssertExpectations(t)
}
