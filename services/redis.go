package services

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	appContext "github.com/alphabatem/common/context"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// RedisService holds the shared client used for rate-limit counters when
// RATE_LIMIT_STORE=redis. With the memory store it stays idle.
type RedisService struct {
	appContext.DefaultService
	redis *redis.Client

	enabled bool
}

const REDIS_SVC = "redis_svc"

func (svc RedisService) Id() string {
	return REDIS_SVC
}

func (svc *RedisService) Configure(ctx *appContext.Context) error {
	kind, err := rateLimitStoreKind()
	if err != nil {
		return err
	}
	svc.enabled = kind == RateLimitStoreRedis
	if svc.enabled {
		if err := svc.initRedisClient(); err != nil {
			return err
		}
	}
	return svc.DefaultService.Configure(ctx)
}

func (svc *RedisService) Start() error {
	if svc.redis == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := svc.redis.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.WithField("addr", svc.redis.Options().Addr).Info("Connected to Redis")
	return nil
}

func (svc *RedisService) Shutdown() {
	if svc.redis != nil {
		_ = svc.redis.Close()
	}
}

func (svc *RedisService) initRedisClient() error {
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	redisPassword := os.Getenv("REDIS_PASSWORD")

	redisDB := 0
	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		db, err := strconv.Atoi(dbStr)
		if err != nil {
			return fmt.Errorf("invalid REDIS_DB %q", dbStr)
		}
		redisDB = db
	}

	svc.redis = redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       redisDB,
	})
	return nil
}

// GetClient returns nil unless the redis store is enabled.
func (svc *RedisService) GetClient() *redis.Client {
	return svc.redis
}
