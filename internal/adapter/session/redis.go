package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"quiz-forge/internal/cache"
	"quiz-forge/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps sessions as JSON documents in Redis with a sliding TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a session store on a connected client.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func sessionKey(id string) string {
	return cache.GenerateCacheKey("session", "state", id)
}

// Get implements domain.SessionStore
func (r *RedisStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	val, err := r.client.Get(ctx, sessionKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.NewSessionNotFoundError(id)
		}
		return nil, domain.NewInternalError("Failed to load session", err)
	}

	var s domain.Session
	if err := json.Unmarshal([]byte(val), &s); err != nil {
		return nil, domain.NewInternalError("Failed to decode session", err)
	}
	return &s, nil
}

// Save implements domain.SessionStore
func (r *RedisStore) Save(ctx context.Context, session *domain.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return domain.NewInternalError("Failed to encode session", err)
	}
	if err := r.client.Set(ctx, sessionKey(session.ID), payload, r.ttl).Err(); err != nil {
		return domain.NewInternalError(fmt.Sprintf("Failed to save session %s", session.ID), err)
	}
	return nil
}

// Delete implements domain.SessionStore
func (r *RedisStore) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return domain.NewInternalError("Failed to delete session", err)
	}
	return nil
}

var _ domain.SessionStore = (*RedisStore)(nil)
