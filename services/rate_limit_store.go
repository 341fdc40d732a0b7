package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/lac-hong-legacy/rehab_api/shared"
	"github.com/redis/go-redis/v9"
)

const (
	RateLimitStoreMemory = "memory"
	RateLimitStoreRedis  = "redis"
)

// rateLimitStoreKind reads RATE_LIMIT_STORE. Unset means memory.
func rateLimitStoreKind() (string, error) {
	kind := strings.ToLower(strings.TrimSpace(os.Getenv("RATE_LIMIT_STORE")))
	switch kind {
	case "":
		return RateLimitStoreMemory, nil
	case RateLimitStoreMemory, RateLimitStoreRedis:
		return kind, nil
	default:
		return "", fmt.Errorf("unsupported RATE_LIMIT_STORE %q", kind)
	}
}

// newCounterStore builds the store for kind. The redis store needs a client.
func newCounterStore(kind string, client *redis.Client, clock shared.Clock) (CounterStore, error) {
	switch kind {
	case RateLimitStoreRedis:
		if client == nil {
			return nil, errors.New("rate limit store is redis but no redis client is configured")
		}
		return NewRedisCounterStore(client), nil
	case RateLimitStoreMemory:
		return NewMemoryCounterStore(clock), nil
	default:
		return nil, fmt.Errorf("unsupported rate limit store %q", kind)
	}
}

// CounterStore increments a windowed counter and returns the value after the
// increment. The key already names the window, so ttl only bounds how long an
// idle counter is kept. Implementations must be safe for concurrent use.
type CounterStore interface {
	Increment(ctx context.Context, key string, ttl time.Duration) (int64, error)
}

type memoryCounter struct {
	count     int64
	expiresAt time.Time
}

// MemoryCounterStore keeps counters in process. Only correct for a single
// replica.
type MemoryCounterStore struct {
	mutex     sync.Mutex
	counters  map[string]*memoryCounter
	clock     shared.Clock
	nextSweep time.Time
}

func NewMemoryCounterStore(clock shared.Clock) *MemoryCounterStore {
	return &MemoryCounterStore{
		counters: make(map[string]*memoryCounter),
		clock:    clock,
	}
}

func (s *MemoryCounterStore) Increment(_ context.Context, key string, ttl time.Duration) (int64, error) {
	now := s.clock.Now()

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if now.After(s.nextSweep) {
		s.sweep(now)
		s.nextSweep = now.Add(ttl)
	}

	counter, ok := s.counters[key]
	if !ok || !now.Before(counter.expiresAt) {
		counter = &memoryCounter{expiresAt: now.Add(ttl)}
		s.counters[key] = counter
	}
	counter.count++

	return counter.count, nil
}

// sweep drops expired counters. Caller holds the mutex.
func (s *MemoryCounterStore) sweep(now time.Time) {
	for key, counter := range s.counters {
		if !now.Before(counter.expiresAt) {
			delete(s.counters, key)
		}
	}
}

func (s *MemoryCounterStore) size() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return len(s.counters)
}

// RedisCounterStore shares counters between replicas. INCR and PEXPIRE run in
// one MULTI/EXEC block.
type RedisCounterStore struct {
	client redis.UniversalClient
	prefix string
}

func NewRedisCounterStore(client redis.UniversalClient) *RedisCounterStore {
	return &RedisCounterStore{client: client, prefix: "rate_limit:"}
}

func (s *RedisCounterStore) Increment(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	var incr *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, s.prefix+key)
		pipe.PExpire(ctx, s.prefix+key, ttl)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return incr.Val(), nil
}
