package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"swasthya-backend/internal/domain/user"
)

// RedisStore keeps sessions in redis so they survive process restarts and
// are shared across replicas.
type RedisStore struct{ rdb *redis.Client }

func NewRedisStore(rdb *redis.Client) *RedisStore { return &RedisStore{rdb: rdb} }

func sessionKey(token string) string { return "session:" + token }

func (s *RedisStore) Put(ctx context.Context, token string, u user.User, ttl time.Duration) error {
	payload, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, sessionKey(token), payload, ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, token string) (*user.User, error) {
	v, err := s.rdb.Get(ctx, sessionKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var u user.User
	if err := json.Unmarshal(v, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, sessionKey(token)).Err()
}
