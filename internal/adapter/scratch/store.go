// Package scratch keeps short-lived per-session values, such as the news
// introduction read out at launch, so a later turn in the same voice session
// can refer to it without regenerating it.
package scratch

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Well-known keys.
const (
	KeyIntroduction = "introduction"
	KeyLastAnswer   = "last_answer"
)

// Driver selects the backing implementation.
type Driver string

const (
	DriverMemory Driver = "memory"
	DriverRedis  Driver = "redis"
)

var (
	ErrInvalidDriver = errors.New("scratch: invalid driver")
	ErrInvalidConfig = errors.New("scratch: invalid configuration")
)

// Store holds string values per session. Values expire after the configured TTL
// since the last write.
type Store interface {
	// Get returns all values for the session. A missing session yields an empty map.
	Get(ctx context.Context, sessionID string) (map[string]string, error)
	// Put sets one value, keeping the others.
	Put(ctx context.Context, sessionID, key, value string) error
	// Delete drops the whole session.
	Delete(ctx context.Context, sessionID string) error
}

const defaultTTL = time.Hour

// Option configures NewStore.
type Option func(*options)

type options struct {
	redisClient *redis.Client
	ttl         time.Duration
	now         func() time.Time
}

// WithRedisClient sets the client used by DriverRedis.
func WithRedisClient(c *redis.Client) Option {
	return func(o *options) { o.redisClient = c }
}

// WithTTL sets how long values live after the last write.
func WithTTL(ttl time.Duration) Option {
	return func(o *options) { o.ttl = ttl }
}

// NewStore creates a Store for driver.
func NewStore(driver Driver, opts ...Option) (Store, error) {
	o := &options{now: time.Now}
	for _, opt := range opts {
		opt(o)
	}
	if o.ttl <= 0 {
		o.ttl = defaultTTL
	}

	switch driver {
	case DriverMemory, "":
		return newMemoryStore(o.ttl, o.now), nil
	case DriverRedis:
		if o.redisClient == nil {
			return nil, ErrInvalidConfig
		}
		return &redisStore{client: o.redisClient, ttl: o.ttl}, nil
	default:
		return nil, ErrInvalidDriver
	}
}
