package service

import (
	"strings"

	"github.com/HITENDRAPAL3/Backend-ExpenseTracker/internal/auth"
	"github.com/HITENDRAPAL3/Backend-ExpenseTracker/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, login and session token issuance
type AuthService struct {
	userRepo domain.UserRepository
	jwt      *auth.JWTManager
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo domain.UserRepository, jwt *auth.JWTManager) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		jwt:      jwt,
	}
}

// RegisterInput carries the fields needed to create an account
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Register creates a new user with a bcrypt-hashed password
func (s *AuthService) Register(input RegisterInput) (*domain.User, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)
	if username == "" || email == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if len(input.Password) < domain.MinPasswordLength {
		return nil, domain.ErrWeakPassword
	}

	if _, err := s.userRepo.GetByUsername(username); err == nil {
		return nil, domain.ErrUsernameTaken
	}
	if _, err := s.userRepo.GetByEmail(email); err == nil {
		return nil, domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return s.userRepo.Create(&domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	})
}

// Login verifies credentials and returns a signed session token
func (s *AuthService) Login(username, password string) (string, *domain.User, error) {
	user, err := s.userRepo.GetByUsername(strings.TrimSpace(username))
	if err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.jwt.Generate(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// GetUser returns the user for an authenticated session
func (s *AuthService) GetUser(id uuid.UUID) (*domain.User, error) {
	return s.userRepo.GetByID(id)
}
