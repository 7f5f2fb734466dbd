package services

import (
	"context"
	"errors"
	"log"
	"time"

	"library-management/internal/adapters/persistence/repositories"
	"library-management/internal/config"
	"library-management/internal/core/domain"
	"library-management/internal/pkg/jwt"
	"library-management/internal/pkg/password"

	"gorm.io/gorm"
)

// AuthService handles authentication business logic
type AuthService struct {
	userRepo repositories.UserRepository
	jwtOpts  jwt.Options
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository, cfg config.JWTConfig) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		jwtOpts: jwt.Options{
			Secret:   cfg.Secret,
			Issuer:   cfg.Issuer,
			Audience: cfg.Audience,
		},
	}
}

// LoginInput represents login input
type LoginInput struct {
	Username string `json:"userName" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResult is the issued access token and its expiry
type LoginResult struct {
	Token      string    `json:"token"`
	Expiration time.Time `json:"expiration"`
}

// Login authenticates a user and issues an access token
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginResult, error) {
	// 1. Find user by username
	user, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	// 2. Verify password
	if !password.Verify(input.Password, user.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	// 3. Generate token
	roles := []string{string(user.RoleName())}
	token, expiresAt, err := jwt.GenerateAccessToken(user.ID, user.Username, roles, s.jwtOpts)
	if err != nil {
		return nil, err
	}

	log.Printf("🔑 User logged in: %s", user.Username)

	return &LoginResult{
		Token:      token,
		Expiration: expiresAt,
	}, nil
}

// ValidateToken validates an access token and returns its claims
func (s *AuthService) ValidateToken(token string) (*jwt.Claims, error) {
	return jwt.ValidateAccessToken(token, s.jwtOpts)
}
