package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kaizensushi/storefront-backend/config"
	"github.com/kaizensushi/storefront-backend/pkg/logger"
)

// RedisStore is the alternative state backend for deployments where
// several kiosk processes share one device profile state.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore connects and pings the server before returning.
func NewRedisStore(cfg *config.RedisConfig) (*RedisStore, error) {
	logger.Info("Initializing Redis state store", map[string]interface{}{
		"host": cfg.Host,
		"port": cfg.Port,
		"db":   cfg.DB,
	})

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Failed to connect to Redis", err, map[string]interface{}{
			"host": cfg.Host,
			"port": cfg.Port,
		})
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Redis connection established successfully", nil)
	return &RedisStore{client: client, prefix: "storefront:state:"}, nil
}

func (s *RedisStore) Get(key string) ([]byte, bool, error) {
	data, err := s.client.Get(context.Background(), s.prefix+key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read state %q: %w", key, err)
	}
	return data, true, nil
}

func (s *RedisStore) Set(key string, value []byte) error {
	if err := s.client.Set(context.Background(), s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to write state %q: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Delete(key string) error {
	if err := s.client.Del(context.Background(), s.prefix+key).Err(); err != nil {
		return fmt.Errorf("failed to delete state %q: %w", key, err)
	}
	return nil
}

// Close closes the underlying connection.
func (s *RedisStore) Close() error {
	logger.Info("Closing Redis connection", nil)
	return s.client.Close()
}
