package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-formtest/internal/logger"
	"github.com/sbilibin2017/gw-formtest/internal/models"
)

// SessionCacheRepository keeps login sessions in Redis
type SessionCacheRepository struct {
	client *redis.Client
}

// NewSessionCacheRepository creates a new repository instance
func NewSessionCacheRepository(client *redis.Client) *SessionCacheRepository {
	return &SessionCacheRepository{client: client}
}

func sessionKey(id uuid.UUID) string {
	return fmt.Sprintf("session:%s", id)
}

// Save stores the session for ttl
func (r *SessionCacheRepository) Save(ctx context.Context, s *models.Session, ttl time.Duration) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	key := sessionKey(s.SessionID)
	err = r.client.Set(ctx, key, data, ttl).Err()
	logger.Log.Debugw("redis set", "key", key, "ttl", ttl, "error", err)

	return err
}

// Get returns the stored session, or nil if it does not exist or has expired
func (r *SessionCacheRepository) Get(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	key := sessionKey(id)

	data, err := r.client.Get(ctx, key).Bytes()
	logger.Log.Debugw("redis get", "key", key, "error", err)
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var s models.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal session %s: %w", key, err)
	}

	return &s, nil
}

// Delete removes the session. Deleting a missing session is not an error.
func (r *SessionCacheRepository) Delete(ctx context.Context, id uuid.UUID) error {
	key := sessionKey(id)
	err := r.client.Del(ctx, key).Err()
	logger.Log.Debugw("redis del", "key", key, "error", err)
	return err
}
