package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/meetspace/roomclient/internal/models"
)

const (
	redisTokenKey = "roomclient:session:token"
	redisUserKey  = "roomclient:session:user"
)

// RedisStorage keeps the session in Redis, for deployments where the client
// runs on a box with an existing Redis and the session should survive the
// machine's local disk. Mirrors the browser's two durable entries: one key
// for the token, one for the serialized identity.
type RedisStorage struct {
	rdb *redis.Client
}

// NewRedisStorage creates a Redis-backed storage on an existing client.
func NewRedisStorage(rdb *redis.Client) *RedisStorage {
	return &RedisStorage{rdb: rdb}
}

func (s *RedisStorage) Load(ctx context.Context) (models.Session, error) {
	vals, err := s.rdb.MGet(ctx, redisTokenKey, redisUserKey).Result()
	if err != nil {
		return models.Session{}, fmt.Errorf("load session from redis: %w", err)
	}

	var sess models.Session
	if token, ok := vals[0].(string); ok {
		sess.Token = token
	}
	raw, ok := vals[1].(string)
	if !ok {
		return sess, nil
	}
	var user models.Identity
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return models.Session{}, fmt.Errorf("parse stored identity: %w", err)
	}
	sess.User = &user
	return sess, nil
}

// Save writes both entries in one MSET so the pair is adopted atomically.
func (s *RedisStorage) Save(ctx context.Context, sess models.Session) error {
	if !sess.Valid() {
		return errors.New("refusing to persist partial session")
	}
	raw, err := json.Marshal(sess.User)
	if err != nil {
		return fmt.Errorf("encode identity: %w", err)
	}
	if err := s.rdb.MSet(ctx, redisTokenKey, sess.Token, redisUserKey, string(raw)).Err(); err != nil {
		return fmt.Errorf("save session to redis: %w", err)
	}
	return nil
}

func (s *RedisStorage) Clear(ctx context.Context) error {
	if err := s.rdb.Del(ctx, redisTokenKey, redisUserKey).Err(); err != nil {
		return fmt.Errorf("clear session in redis: %w", err)
	}
	return nil
}
