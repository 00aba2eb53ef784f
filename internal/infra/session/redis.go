package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"consultation-booking/internal/domain/admin"
	"consultation-booking/internal/infra"
	"consultation-booking/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

type RedisStore struct {
	client redis.Cmdable
	prefix string
	now    func() time.Time
}

func NewRedisStore(client redis.Cmdable, cfg config.SessionConfig) *RedisStore {
	return &RedisStore{client: client, prefix: cfg.KeySpace, now: time.Now}
}

func (s *RedisStore) key(id uuid.UUID) string {
	return s.prefix + id.String()
}

// Save stores the session until its own ExpiresAt.
func (s *RedisStore) Save(ctx context.Context, sess admin.Session) error {
	ttl := sess.Remaining(s.now())
	if ttl <= 0 {
		return infra.WrapRepoErr("session already expired", admin.ErrSessionExpired)
	}
	data, err := json.Marshal(sess)
	if err != nil {
		return infra.WrapRepoErr("failed to encode session", err)
	}
	if err := s.client.Set(ctx, s.key(sess.ID), data, ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to save session", err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, id uuid.UUID) (*admin.Session, error) {
	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, infra.WrapRepoErr("session not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load session", err)
	}
	var sess admin.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, infra.WrapRepoErr("failed to decode session", err)
	}
	return &sess, nil
}

func (s *RedisStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return infra.WrapRepoErr("failed to delete session", err)
	}
	return nil
}
