package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps sessions in redis with a per-user TTL, refreshed on every
// save. This bounds session memory, unlike the original process-wide map.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(addr, password string, db int, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (r *RedisStore) Ping(ctx context.Context) error {
	return r.rdb.Ping(ctx).Err()
}

func sessionKey(userID string) string {
	return fmt.Sprintf("session:%s", userID)
}

func (r *RedisStore) Get(ctx context.Context, userID string) (*Session, error) {
	raw, err := r.rdb.Get(ctx, sessionKey(userID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var s Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		// corrupt entry: drop it and start the user over
		_ = r.rdb.Del(ctx, sessionKey(userID)).Err()
		return nil, nil
	}
	s.normalize()
	return &s, nil
}

func (r *RedisStore) Save(ctx context.Context, s *Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, sessionKey(s.UserID), raw, r.ttl).Err()
}
