package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"streamhub/internal/http-api/dto"
	"streamhub/internal/http-api/middleware"
	"streamhub/internal/http-api/models"
	"streamhub/internal/http-api/service"
)

type AuthHandler struct {
	authService    service.AuthService
	accessTokenTTL int64 // seconds, echoed in responses
}

func NewAuthHandler(authService service.AuthService, accessTokenTTL int64) *AuthHandler {
	return &AuthHandler{authService: authService, accessTokenTTL: accessTokenTTL}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	accessToken, refreshToken, user, err := h.authService.Register(service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Gender:   req.Gender,
		Age:      req.Age,
		Religion: req.Religion,
	})
	if err == service.ErrNameInUse || err == service.ErrEmailInUse {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         dto.FromUserModel(user),
		ExpiresIn:    h.accessTokenTTL,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	identifier := req.Identifier()
	if identifier == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "please provide both username/email and password"})
		return
	}

	accessToken, refreshToken, user, err := h.authService.Login(identifier, req.Password)
	if err != nil {
		// Same body whichever step failed; never reveal whether the
		// account exists.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         dto.FromUserModel(user),
		ExpiresIn:    h.accessTokenTTL,
	})
}

// RefreshToken rotates both tokens: a new refresh token is always
// returned along with the new access token.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newAccessToken, newRefreshToken, err := h.authService.RefreshAccessToken(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.RefreshResponse{
		AccessToken:  newAccessToken,
		RefreshToken: newRefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    h.accessTokenTTL,
	})
}

func (h *AuthHandler) RevokeToken(c *gin.Context) {
	var req dto.RevokeTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// always return success to avoid token fishing
	_ = h.authService.RevokeToken(req.RefreshToken)

	c.JSON(http.StatusOK, dto.RevokeTokenResponse{
		Message: "Refresh token revoked successfully",
	})
}

// Me returns the authenticated user's own profile.
func (h *AuthHandler) Me(c *gin.Context) {
	v, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}
	user, ok := v.(*models.User)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}
	c.JSON(http.StatusOK, dto.FromUserModel(user))
}
