package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/voxadev/voxa-assist-go/internal/constants"
	"github.com/voxadev/voxa-assist-go/pkg/errors"
)

// Service is the Redis-backed cache shared by the command-map store and the
// per-session dialog memory. Values are stored as JSON.
type Service struct {
	client *redis.Client
	logger *zap.Logger
}

type Config struct {
	Host     string
	Port     int
	Password string
	DB       int
}

func NewService(cfg Config, logger *zap.Logger) (*Service, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		MaxRetries:   constants.RedisDefaults.MaxRetries,
		DialTimeout:  constants.RedisDefaults.DialTimeout,
		ReadTimeout:  constants.RedisDefaults.ReadTimeout,
		WriteTimeout: constants.RedisDefaults.WriteTimeout,
		PoolSize:     constants.RedisDefaults.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.NewCacheError("failed to connect to Redis", "ping", "", err)
	}

	logger.Info("Redis connected",
		zap.String("addr", fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)),
		zap.Int("db", cfg.DB),
	)

	return &Service{client: client, logger: logger}, nil
}

// Get reads a key into dest. A missing key leaves dest untouched and
// returns (false, nil).
func (c *Service) Get(ctx context.Context, key string, dest any) (bool, error) {
	value, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		c.logger.Error("Cache get failed", zap.String("key", key), zap.Error(err))
		return false, errors.NewCacheError("get failed", "get", key, err)
	}

	if dest != nil {
		if err := json.Unmarshal([]byte(value), dest); err != nil {
			c.logger.Error("Cache unmarshal failed", zap.String("key", key), zap.Error(err))
			return false, errors.NewCacheError("unmarshal failed", "get", key, err)
		}
	}
	return true, nil
}

func (c *Service) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	jsonData, err := json.Marshal(value)
	if err != nil {
		return errors.NewCacheError("marshal failed", "set", key, err)
	}

	if err := c.client.Set(ctx, key, jsonData, ttl).Err(); err != nil {
		c.logger.Error("Cache set failed", zap.String("key", key), zap.Error(err))
		return errors.NewCacheError("set failed", "set", key, err)
	}
	return nil
}

func (c *Service) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Error("Cache delete failed", zap.Strings("keys", keys), zap.Error(err))
		return errors.NewCacheError("delete failed", "del", keys[0], err)
	}
	return nil
}

func (c *Service) IsConnected(ctx context.Context) bool {
	return c.client.Ping(ctx).Err() == nil
}

func (c *Service) Close() error {
	return c.client.Close()
}
