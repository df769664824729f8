package middlewares

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-formtest/internal/logger"
	"github.com/sbilibin2017/gw-formtest/internal/models"
	"github.com/sbilibin2017/gw-formtest/internal/services"
)

//go:generate mockgen -source=session.go -destination=session_mock_test.go -package=middlewares

// SessionResolver resolves the session presented by a request.
type SessionResolver interface {
	Current(ctx context.Context, r *http.Request) (*models.Session, error)
}

type sessionKey struct{}

// SessionFromContext returns the session stored by SessionMiddleware, or nil.
func SessionFromContext(ctx context.Context) *models.Session {
	s, _ := ctx.Value(sessionKey{}).(*models.Session)
	return s
}

// SessionMiddleware rejects requests without a live session
func SessionMiddleware(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			s, err := resolver.Current(ctx, r)
			if errors.Is(err, services.ErrNoSession) {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			if err != nil {
				logger.Log.Errorw("session lookup failed", "request_id", RequestIDFromContext(ctx), "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, sessionKey{}, s)))
		})
	}
}
