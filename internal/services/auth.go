package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbilibin2017/gw-formtest/internal/logger"
	"github.com/sbilibin2017/gw-formtest/internal/models"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=auth_mock_test.go -package=services

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username string, passwordHash string) error
}

// AuthService checks credentials against the user store.
type AuthService struct {
	reader UserReader
	writer UserWriter
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
	}
}

// Register stores a user with a bcrypt hash of password, replacing any existing password.
func (svc *AuthService) Register(ctx context.Context, username, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := svc.writer.Save(ctx, username, string(hashedPassword)); err != nil {
		logger.Log.Errorw("failed to save user", "username", username, "err", err)
		return fmt.Errorf("save user: %w", err)
	}

	return nil
}

// Authenticate returns the user matching the credentials.
// A nil user with a nil error means the credentials did not match.
func (svc *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		logger.Log.Infow("user does not exist", "username", username)
		return nil, nil
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		logger.Log.Infow("invalid credentials", "username", username)
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to compare password hash", "username", username, "err", err)
		return nil, fmt.Errorf("compare password: %w", err)
	}

	return user, nil
}
