package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"streamhub/internal/http-api/models"
	"streamhub/internal/http-api/repository"
	"streamhub/internal/http-api/service"
)

// MockMovieService mocks the MovieService interface
type MockMovieService struct {
	mock.Mock
}

func (m *MockMovieService) List(ctx context.Context, f repository.MovieFilter) ([]models.Movie, int64, error) {
	args := m.Called(f)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Movie), args.Get(1).(int64), args.Error(2)
}

func (m *MockMovieService) GetBySlug(ctx context.Context, slug string) (*models.Movie, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Movie), args.Error(1)
}

func (m *MockMovieService) Featured(ctx context.Context) ([]models.Movie, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Movie), args.Error(1)
}

func (m *MockMovieService) Recent(ctx context.Context) ([]models.Movie, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Movie), args.Error(1)
}

func (m *MockMovieService) Create(ctx context.Context, movie *models.Movie) error {
	args := m.Called(movie)
	return args.Error(0)
}

func (m *MockMovieService) Update(ctx context.Context, slug string, apply func(*models.Movie)) (*models.Movie, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	updated := args.Get(0).(*models.Movie)
	apply(updated)
	return updated, args.Error(1)
}

func (m *MockMovieService) Delete(ctx context.Context, slug string) error {
	args := m.Called(slug)
	return args.Error(0)
}

func TestMovieList_FiltersAndPagination(t *testing.T) {
	mockMovieService := new(MockMovieService)
	handler := NewMovieHandler(mockMovieService)
	router := setupRouter()
	router.GET("/movies/", handler.List)

	genre := "sci-fi"
	year := 1999
	expected := repository.MovieFilter{
		Genre:       &genre,
		ReleaseYear: &year,
		Search:      "matrix",
		Page:        2,
		PageSize:    10,
	}
	movies := []models.Movie{{ID: 1, Title: "The Matrix", Slug: "the-matrix"}}
	mockMovieService.On("List", expected).Return(movies, int64(11), nil)

	req, _ := http.NewRequest("GET", "/movies/?genre=sci-fi&release_year=1999&search=matrix&page=2&page_size=10", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data       []models.Movie `json:"data"`
		Pagination struct {
			Page       int   `json:"page"`
			PageSize   int   `json:"page_size"`
			Total      int64 `json:"total"`
			TotalPages int64 `json:"total_pages"`
		} `json:"pagination"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Len(t, response.Data, 1)
	assert.Equal(t, 2, response.Pagination.Page)
	assert.Equal(t, int64(11), response.Pagination.Total)
	assert.Equal(t, int64(2), response.Pagination.TotalPages)
	mockMovieService.AssertExpectations(t)
}

func TestMovieList_BadReleaseYear(t *testing.T) {
	mockMovieService := new(MockMovieService)
	handler := NewMovieHandler(mockMovieService)
	router := setupRouter()
	router.GET("/movies/", handler.List)

	req, _ := http.NewRequest("GET", "/movies/?release_year=soon", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockMovieService.AssertNotCalled(t, "List", mock.Anything)
}

func TestMovieGet_NotFound(t *testing.T) {
	mockMovieService := new(MockMovieService)
	handler := NewMovieHandler(mockMovieService)
	router := setupRouter()
	router.GET("/movies/:slug/", handler.Get)

	mockMovieService.On("GetBySlug", "missing").Return(nil, service.ErrMovieNotFound)

	req, _ := http.NewRequest("GET", "/movies/missing/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockMovieService.AssertExpectations(t)
}

func TestMovieGet_Success(t *testing.T) {
	mockMovieService := new(MockMovieService)
	handler := NewMovieHandler(mockMovieService)
	router := setupRouter()
	router.GET("/movies/:slug/", handler.Get)

	movie := &models.Movie{ID: 1, Title: "The Matrix", Slug: "the-matrix"}
	mockMovieService.On("GetBySlug", "the-matrix").Return(movie, nil)

	req, _ := http.NewRequest("GET", "/movies/the-matrix/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got models.Movie
	json.Unmarshal(w.Body.Bytes(), &got)
	assert.Equal(t, "the-matrix", got.Slug)
	mockMovieService.AssertExpectations(t)
}

func TestMovieFeatured(t *testing.T) {
	mockMovieService := new(MockMovieService)
	handler := NewMovieHandler(mockMovieService)
	router := setupRouter()
	router.GET("/movies/featured/", handler.Featured)

	movies := []models.Movie{{ID: 1, Title: "The Matrix", Slug: "the-matrix"}}
	mockMovieService.On("Featured").Return(movies, nil)

	req, _ := http.NewRequest("GET", "/movies/featured/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockMovieService.AssertExpectations(t)
}

func TestMovieDelete_NotFound(t *testing.T) {
	mockMovieService := new(MockMovieService)
	handler := NewMovieHandler(mockMovieService)
	router := setupRouter()
	router.DELETE("/movies/:slug/", handler.Delete)

	mockMovieService.On("Delete", "missing").Return(service.ErrMovieNotFound)

	req, _ := http.NewRequest("DELETE", "/movies/missing/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockMovieService.AssertExpectations(t)
}
