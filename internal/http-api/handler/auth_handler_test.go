package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"streamhub/internal/http-api/dto"
	"streamhub/internal/http-api/models"
	"streamhub/internal/http-api/service"
)

// MockAuthService mocks the AuthService interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(in service.RegisterInput) (string, string, *models.User, error) {
	args := m.Called(in)
	if args.Get(2) == nil {
		return args.String(0), args.String(1), nil, args.Error(3)
	}
	return args.String(0), args.String(1), args.Get(2).(*models.User), args.Error(3)
}

func (m *MockAuthService) Login(identifier, password string) (string, string, *models.User, error) {
	args := m.Called(identifier, password)
	if args.Get(2) == nil {
		return args.String(0), args.String(1), nil, args.Error(3)
	}
	return args.String(0), args.String(1), args.Get(2).(*models.User), args.Error(3)
}

func (m *MockAuthService) RefreshAccessToken(refreshToken string) (string, string, error) {
	args := m.Called(refreshToken)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockAuthService) RevokeToken(refreshToken string) error {
	args := m.Called(refreshToken)
	return args.Error(0)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Claims), args.Error(1)
}

func (m *MockAuthService) GetUserByID(id int64) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func postJSON(router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegister_Success(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService, 900)
	router := setupRouter()
	router.POST("/register", handler.Register)

	user := &models.User{
		ID:       1,
		Username: "testuser",
		Email:    "test@example.com",
		Role:     models.RoleRegular,
	}

	mockAuthService.On("Register", mock.AnythingOfType("service.RegisterInput")).
		Return("access-token", "refresh-token", user, nil)

	w := postJSON(router, "/register", dto.RegisterRequest{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "password123",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var response dto.AuthResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "access-token", response.AccessToken)
	assert.Equal(t, "refresh-token", response.RefreshToken)
	assert.Equal(t, "testuser", response.User.Username)
	assert.Equal(t, int64(900), response.ExpiresIn)

	mockAuthService.AssertExpectations(t)
}

func TestRegister_UsernameInUse(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService, 900)
	router := setupRouter()
	router.POST("/register", handler.Register)

	mockAuthService.On("Register", mock.AnythingOfType("service.RegisterInput")).
		Return("", "", nil, service.ErrNameInUse)

	w := postJSON(router, "/register", dto.RegisterRequest{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "password123",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	mockAuthService.AssertExpectations(t)
}

func TestRegister_InvalidPayload(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService, 900)
	router := setupRouter()
	router.POST("/register", handler.Register)

	// Password below the minimum length fails binding before the service
	// is touched.
	w := postJSON(router, "/register", dto.RegisterRequest{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "short",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockAuthService.AssertNotCalled(t, "Register", mock.Anything)
}

func TestLogin_Success(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService, 900)
	router := setupRouter()
	router.POST("/login", handler.Login)

	user := &models.User{ID: 1, Username: "testuser", Email: "test@example.com"}
	mockAuthService.On("Login", "testuser", "password123").
		Return("access-token", "refresh-token", user, nil)

	w := postJSON(router, "/login", dto.LoginRequest{
		Username: "testuser",
		Password: "password123",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.AuthResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "access-token", response.AccessToken)
	mockAuthService.AssertExpectations(t)
}

func TestLogin_ByEmail(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService, 900)
	router := setupRouter()
	router.POST("/login", handler.Login)

	user := &models.User{ID: 1, Username: "testuser", Email: "test@example.com"}
	mockAuthService.On("Login", "test@example.com", "password123").
		Return("access-token", "refresh-token", user, nil)

	w := postJSON(router, "/login", dto.LoginRequest{
		Email:    "test@example.com",
		Password: "password123",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	mockAuthService.AssertExpectations(t)
}

func TestLogin_MissingIdentifier(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService, 900)
	router := setupRouter()
	router.POST("/login", handler.Login)

	w := postJSON(router, "/login", dto.LoginRequest{Password: "password123"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockAuthService.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}

func TestLogin_FailureBodyIsUniform(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService, 900)
	router := setupRouter()
	router.POST("/login", handler.Login)

	mockAuthService.On("Login", "nouser", "password123").
		Return("", "", nil, service.ErrInvalidCredentials)
	mockAuthService.On("Login", "testuser", "wrongpass").
		Return("", "", nil, service.ErrInvalidCredentials)

	wUnknown := postJSON(router, "/login", dto.LoginRequest{Username: "nouser", Password: "password123"})
	wWrongPass := postJSON(router, "/login", dto.LoginRequest{Username: "testuser", Password: "wrongpass"})

	// Unknown account and bad password must be indistinguishable
	assert.Equal(t, http.StatusUnauthorized, wUnknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wWrongPass.Code)
	assert.Equal(t, wUnknown.Body.String(), wWrongPass.Body.String())
}

func TestRefreshToken_Success(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService, 900)
	router := setupRouter()
	router.POST("/refresh", handler.RefreshToken)

	mockAuthService.On("RefreshAccessToken", "old-refresh").
		Return("new-access", "new-refresh", nil)

	w := postJSON(router, "/refresh", dto.RefreshTokenRequest{RefreshToken: "old-refresh"})

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.RefreshResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "new-access", response.AccessToken)
	assert.Equal(t, "new-refresh", response.RefreshToken)
	assert.Equal(t, "Bearer", response.TokenType)
	mockAuthService.AssertExpectations(t)
}

func TestRevokeToken_AlwaysOK(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService, 900)
	router := setupRouter()
	router.POST("/revoke", handler.RevokeToken)

	mockAuthService.On("RevokeToken", "whatever").Return(assert.AnError)

	w := postJSON(router, "/revoke", dto.RevokeTokenRequest{RefreshToken: "whatever"})

	// Revocation never discloses whether the token existed
	assert.Equal(t, http.StatusOK, w.Code)
	mockAuthService.AssertExpectations(t)
}
