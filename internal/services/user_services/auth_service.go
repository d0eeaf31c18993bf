package user_services

import (
	"context"
	"errors"
	"fmt"

	"github.com/V8FS1/Automated-Disease-Diagnosis-from-Symptom-Descriptions/internal/auth"
	"github.com/V8FS1/Automated-Disease-Diagnosis-from-Symptom-Descriptions/internal/domain"
	"github.com/V8FS1/Automated-Disease-Diagnosis-from-Symptom-Descriptions/internal/repository/user"
)

var ErrUserAlreadyExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")

// Logger is the minimal logging surface this package needs.
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// AuthService handles registration, login and token validation.
type AuthService struct {
	userRepo     user.UserRepository
	jwtSecretKey string
	logger       Logger
}

func NewAuthService(userRepo user.UserRepository, jwtSecretKey string, logger Logger) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		jwtSecretKey: jwtSecretKey,
		logger:       logger,
	}
}

// Register creates a new account and returns it together with a fresh token.
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, string, error) {
	newUser := &domain.User{Username: username}
	if err := newUser.IsValid(); err != nil {
		return nil, "", fmt.Errorf("validation failed: %w", err)
	}
	if err := newUser.HashPassword(password); err != nil {
		return nil, "", fmt.Errorf("validation failed: %w", err)
	}

	exists, err := s.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		s.logger.Error("registration failed checking username", "error", err)
		return nil, "", err
	}
	if exists {
		s.logger.Warn("registration rejected, username taken",
			"username", maskName(username))
		return nil, "", ErrUserAlreadyExists
	}

	created, err := s.userRepo.Create(ctx, newUser)
	if err != nil {
		s.logger.Error("registration failed creating user", "error", err)
		return nil, "", err
	}

	token, err := auth.GenerateJWT(created.ID, []byte(s.jwtSecretKey))
	if err != nil {
		s.logger.Error("token generation failed after registration",
			"user_id", created.ID, "error", err)
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("user registered", "user_id", created.ID, "username", maskName(username))
	return created, token, nil
}

// Login authenticates a user and returns a signed token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	account, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		s.logger.Warn("login failed, user not found", "username", maskName(username))
		return "", ErrInvalidCredentials
	}

	if err := account.ValidatePassword(password); err != nil {
		s.logger.Warn("login failed, invalid password",
			"username", maskName(username), "user_id", account.ID)
		return "", ErrInvalidCredentials
	}

	token, err := auth.GenerateJWT(account.ID, []byte(s.jwtSecretKey))
	if err != nil {
		s.logger.Error("token generation failed", "user_id", account.ID, "error", err)
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("login successful", "user_id", account.ID, "username", maskName(username))
	return token, nil
}

// ValidateToken checks a bearer token and returns the user ID it carries.
func (s *AuthService) ValidateToken(token string) (uint, error) {
	return auth.ValidateToken(token, []byte(s.jwtSecretKey))
}

// maskName keeps the first characters of a username out of log noise
// without writing the full identifier.
func maskName(username string) string {
	if len(username) <= 4 {
		return "****"
	}
	return username[:4] + "****"
}
