package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"murray-moving/internal/data/entity"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const sessionKeyPrefix = "session:" // session:{token} -> JSON session

// redisSessionRepository stores each session under a key that expires with
// the session, so Redis does the cleanup.
type redisSessionRepository struct {
	client *redis.Client
	log    *zap.Logger
}

func NewRedisSessionRepository(client *redis.Client, log *zap.Logger) SessionRepository {
	return &redisSessionRepository{
		client: client,
		log:    log.With(zap.String("repository", "session_redis")),
	}
}

func (r *redisSessionRepository) Create(ctx context.Context, session *entity.Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("create session: already expired")
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := r.client.Set(ctx, sessionKey(session.Token.String()), data, ttl).Err(); err != nil {
		r.log.Error("Failed to create session",
			zap.Error(err),
			zap.Int64("user_id", session.UserID),
		)
		return fmt.Errorf("create session: %w", err)
	}

	return nil
}

func (r *redisSessionRepository) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	data, err := r.client.Get(ctx, sessionKey(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find valid session", zap.Error(err))
		return nil, fmt.Errorf("find session: %w", err)
	}

	var session entity.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}

	if !session.IsValid(time.Now()) {
		return nil, nil
	}

	return &session, nil
}

func (r *redisSessionRepository) Revoke(ctx context.Context, token string) error {
	deleted, err := r.client.Del(ctx, sessionKey(token)).Result()
	if err != nil {
		r.log.Error("Failed to revoke session", zap.Error(err))
		return fmt.Errorf("revoke session: %w", err)
	}

	if deleted == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// CleanExpiredSessions is a no-op: keys expire on their own.
func (r *redisSessionRepository) CleanExpiredSessions(ctx context.Context) (int64, error) {
	return 0, nil
}

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}
