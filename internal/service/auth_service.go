package service

import (
	"errors"
	"fmt"

	"assignhub/internal/auth"
	"assignhub/internal/models"
	"assignhub/internal/repository"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService handles registration and login
type AuthService struct {
	userRepo    *repository.UserRepository
	authService *auth.Service
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo *repository.UserRepository, authService *auth.Service) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		authService: authService,
	}
}

// Register creates a new user account
func (s *AuthService) Register(username, email, password string) (*models.User, error) {
	if _, err := s.userRepo.GetByEmail(email); err == nil {
		return nil, repository.ErrUserExists
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	if _, err := s.userRepo.GetByUsername(username); err == nil {
		return nil, repository.ErrUserExists
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	passwordHash, err := s.authService.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and returns the user with a signed token
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}

	if err := s.authService.VerifyPassword(user.PasswordHash, password); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.authService.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// GenerateTokenForUser signs a token for an already-authenticated user
func (s *AuthService) GenerateTokenForUser(user *models.User) (string, error) {
	return s.authService.GenerateToken(user.ID, user.Username)
}

// GetUser returns the user with the given id
func (s *AuthService) GetUser(id uint) (*models.User, error) {
	return s.userRepo.GetByID(id)
}
