package scratch

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisStore implements Store with one Redis hash per session.
type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func key(sessionID string) string {
	return "scratch:" + sessionID
}

func (s *redisStore) Get(ctx context.Context, sessionID string) (map[string]string, error) {
	vals, err := s.client.HGetAll(ctx, key(sessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("scratch get %s: %w", sessionID, err)
	}
	if vals == nil {
		vals = map[string]string{}
	}
	return vals, nil
}

// Put sets the field and refreshes the TTL in one MULTI/EXEC.
func (s *redisStore) Put(ctx context.Context, sessionID, field, value string) error {
	k := key(sessionID)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, k, field, value)
		pipe.Expire(ctx, k, s.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("scratch put %s: %w", sessionID, err)
	}
	return nil
}

func (s *redisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, key(sessionID)).Err(); err != nil {
		return fmt.Errorf("scratch delete %s: %w", sessionID, err)
	}
	return nil
}
