package service

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"streamhub/internal/config"
	"streamhub/internal/http-api/models"
	"streamhub/internal/http-api/repository"
	"streamhub/internal/middleware/auth"
)

var (
	ErrNameInUse          = errors.New("username already in use")
	ErrEmailInUse         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token has expired")
)

// dummy bcrypt hash compared against when the user lookup misses, so a
// failed login takes the same time whether the account exists or not.
const dummyHash = "$2a$10$7EqJtq98hPqEX7fNZaFWoOHi6VbU5h6K9v8u5rO0m3j0h6dX5r8e"

const tokenIssuer = "streamhub"

// Claims is the payload of an access token.
type Claims struct {
	UserID   int64       `json:"user_id"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
	jwt.RegisteredClaims
}

// RegisterInput carries the registration fields, demographics optional.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Gender   *string
	Age      *int
	Religion *string
}

type AuthService interface {
	Register(in RegisterInput) (accessToken, refreshToken string, user *models.User, err error)
	Login(identifier, password string) (accessToken, refreshToken string, user *models.User, err error)
	RefreshAccessToken(refreshToken string) (newAccessToken, newRefreshToken string, err error)
	RevokeToken(refreshToken string) error
	ValidateToken(tokenString string) (*Claims, error)
	GetUserByID(id int64) (*models.User, error)
}

type authService struct {
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	jwtSecret        string
	accessTokenTTL   time.Duration
	refreshTokenTTL  time.Duration
}

func NewAuthService(
	userRepo repository.UserRepository,
	refreshTokenRepo repository.RefreshTokenRepository,
	cfg *config.Config,
) AuthService {
	return &authService{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		jwtSecret:        cfg.JWTSecret,
		accessTokenTTL:   cfg.AccessTokenTTL,
		refreshTokenTTL:  cfg.RefreshTokenTTL,
	}
}

// normalizeEmail lowercases the domain part of the address, leaving the
// local part untouched.
func normalizeEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}

// Register creates the user and issues tokens exactly as Login does.
func (s *authService) Register(in RegisterInput) (string, string, *models.User, error) {
	// Check if user exists
	if _, err := s.userRepo.FindByUsername(in.Username); err == nil {
		return "", "", nil, ErrNameInUse
	}

	email := normalizeEmail(in.Email)
	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return "", "", nil, ErrEmailInUse
	}

	hashedPassword, err := auth.HashPassword(in.Password)
	if err != nil {
		return "", "", nil, err
	}

	user := &models.User{
		Username: in.Username,
		Email:    email,
		Password: hashedPassword,
		Role:     models.RoleRegular,
		Gender:   in.Gender,
		Age:      in.Age,
		Religion: in.Religion,
	}

	if err := s.userRepo.Create(user); err != nil {
		return "", "", nil, err
	}

	accessToken, refreshToken, err := s.issueTokens(user)
	if err != nil {
		return "", "", nil, err
	}
	return accessToken, refreshToken, user, nil
}

// Login authenticates by username or email. The identifier is treated as
// an email when it contains '@'. Both the unknown-user and wrong-password
// paths return the same sentinel.
func (s *authService) Login(identifier, password string) (string, string, *models.User, error) {
	var user *models.User
	var err error
	if strings.Contains(identifier, "@") {
		user, err = s.userRepo.FindByEmail(normalizeEmail(identifier))
	} else {
		user, err = s.userRepo.FindByUsername(identifier)
	}
	if err != nil {
		// User not found: dummy compare keeps the timing flat
		auth.VerifyPassword(dummyHash, password)
		return "", "", nil, ErrInvalidCredentials
	}

	if err := auth.VerifyPassword(user.Password, password); err != nil {
		return "", "", nil, ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.issueTokens(user)
	if err != nil {
		return "", "", nil, err
	}
	return accessToken, refreshToken, user, nil
}

func (s *authService) issueTokens(user *models.User) (string, string, error) {
	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return "", "", err
	}
	refreshToken, err := s.generateRefreshToken(user)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

func (s *authService) generateAccessToken(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   strconv.FormatInt(user.ID, 10),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *authService) generateRefreshToken(user *models.User) (string, error) {
	refreshToken := &models.RefreshToken{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Token:     uuid.New().String(),
		ExpiresAt: time.Now().Add(s.refreshTokenTTL),
	}

	if err := s.refreshTokenRepo.Create(refreshToken); err != nil {
		return "", err
	}

	return refreshToken.Token, nil
}

// RefreshAccessToken rotates the refresh token: the presented token is
// revoked and a new access/refresh pair is issued.
func (s *authService) RefreshAccessToken(refreshTokenString string) (string, string, error) {
	refreshToken, err := s.refreshTokenRepo.FindByToken(refreshTokenString)
	if err != nil {
		return "", "", errors.New("invalid refresh token")
	}

	if refreshToken.Revoked {
		return "", "", errors.New("refresh token revoked")
	}

	if time.Now().After(refreshToken.ExpiresAt) {
		s.refreshTokenRepo.Delete(refreshToken.ID)
		return "", "", errors.New("refresh token expired")
	}

	user, err := s.userRepo.FindByID(refreshToken.UserID)
	if err != nil {
		return "", "", err
	}

	if err := s.refreshTokenRepo.Revoke(refreshToken.ID); err != nil {
		return "", "", err
	}

	return s.issueTokens(user)
}

func (s *authService) RevokeToken(refreshTokenString string) error {
	refreshToken, err := s.refreshTokenRepo.FindByToken(refreshTokenString)
	if err != nil {
		return errors.New("invalid refresh token")
	}
	return s.refreshTokenRepo.Revoke(refreshToken.ID)
}

func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Issuer != tokenIssuer || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// GetUserByID resolves a token subject back to a live user record.
func (s *authService) GetUserByID(id int64) (*models.User, error) {
	return s.userRepo.FindByID(id)
}
