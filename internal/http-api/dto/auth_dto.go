package dto

import (
	"time"

	"streamhub/internal/http-api/models"
)

// Data Transfer Objects for authentication requests and responses

// RegisterRequest: payload for user registration
type RegisterRequest struct {
	Username string  `json:"username" binding:"required,min=3,max=50"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	Gender   *string `json:"gender,omitempty"`
	Age      *int    `json:"age,omitempty"`
	Religion *string `json:"religion,omitempty"`
}

// LoginRequest: payload for user login; either username or email
// identifies the account.
type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
}

// Identifier returns whichever of username/email was supplied.
func (r LoginRequest) Identifier() string {
	if r.Username != "" {
		return r.Username
	}
	return r.Email
}

// UserResponse: public view of a user record
type UserResponse struct {
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	RoleID    int       `json:"role_id"`
	CreatedAt time.Time `json:"created_at"`
}

func FromUserModel(u *models.User) UserResponse {
	return UserResponse{
		UserID:    u.ID,
		Username:  u.Username,
		Email:     u.Email,
		RoleID:    int(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

// AuthResponse: response payload after successful login or registration
type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
	ExpiresIn    int64        `json:"expires_in"` // seconds
}

// RefreshTokenRequest: payload for refreshing access token
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// RefreshResponse: response payload after refreshing access token
type RefreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"` // e.g., "Bearer"
	ExpiresIn    int64  `json:"expires_in"` // seconds
}

// RevokeTokenRequest: payload for revoking a refresh token
type RevokeTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// RevokeTokenResponse: response payload after revoking a refresh token
type RevokeTokenResponse struct {
	Message string `json:"message"`
}
