package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-formtest/internal/jwt"
	"github.com/sbilibin2017/gw-formtest/internal/logger"
	"github.com/sbilibin2017/gw-formtest/internal/models"
)

//go:generate mockgen -source=session.go -destination=session_mock_test.go -package=services

// ErrNoSession is returned when a request carries no live session.
var ErrNoSession = errors.New("no active session")

// SessionStore persists sessions.
type SessionStore interface {
	Save(ctx context.Context, s *models.Session, ttl time.Duration) error
	Get(ctx context.Context, id uuid.UUID) (*models.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SessionTokener signs and reads the session cookie token.
type SessionTokener interface {
	Generate(ctx context.Context, sessionID, userID uuid.UUID) (string, error)
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// SessionService logs users in by binding a stored session to a cookie.
type SessionService struct {
	store   SessionStore
	tokener SessionTokener
	ttl     time.Duration
	now     func() time.Time
}

// NewSessionService creates a SessionService whose sessions live for ttl.
func NewSessionService(store SessionStore, tokener SessionTokener, ttl time.Duration) *SessionService {
	return &SessionService{
		store:   store,
		tokener: tokener,
		ttl:     ttl,
		now:     time.Now,
	}
}

// Login starts a new session for user and sets the session cookie on w.
// A session already presented by r is discarded first.
func (svc *SessionService) Login(ctx context.Context, w http.ResponseWriter, r *http.Request, user *models.User) error {
	old, err := svc.Current(ctx, r)
	switch {
	case err == nil:
		if err := svc.store.Delete(ctx, old.SessionID); err != nil {
			logger.Log.Warnw("failed to delete previous session", "session_id", old.SessionID, "err", err)
		}
	case !errors.Is(err, ErrNoSession):
		logger.Log.Warnw("failed to resolve previous session", "err", err)
	}

	s := &models.Session{
		SessionID: uuid.New(),
		UserID:    user.UserID,
		Username:  user.Username,
		CreatedAt: svc.now().UTC(),
	}
	if err := svc.store.Save(ctx, s, svc.ttl); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	token, err := svc.tokener.Generate(ctx, s.SessionID, s.UserID)
	if err != nil {
		return fmt.Errorf("sign session token: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     jwt.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(svc.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	logger.Log.Infow("user logged in", "username", user.Username, "session_id", s.SessionID)
	return nil
}

// Current resolves the session presented by r.
// It returns ErrNoSession when the cookie is absent, forged, expired or revoked.
func (svc *SessionService) Current(ctx context.Context, r *http.Request) (*models.Session, error) {
	token, err := svc.tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		return nil, ErrNoSession
	}

	claims, err := svc.tokener.GetClaims(ctx, token)
	if err != nil {
		logger.Log.Debugw("rejected session token", "err", err)
		return nil, ErrNoSession
	}

	s, err := svc.store.Get(ctx, claims.SessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if s == nil || s.UserID != claims.UserID {
		return nil, ErrNoSession
	}

	return s, nil
}
