package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient backs the storefront rate limiter. It stays nil when Redis is
// not configured or unreachable, and the limiter then lets requests through.
var RedisClient *redis.Client

// ConnectRedis dials REDIS_URL (or a local default) and verifies it with PING.
func ConnectRedis() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
		log.Println("⚠️  REDIS_URL not set, using local Redis:", redisURL)
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return fmt.Errorf("invalid REDIS_URL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	RedisClient = client
	log.Println("✅ Connected to Redis")
	return nil
}

func CloseRedis() {
	if RedisClient != nil {
		_ = RedisClient.Close()
		RedisClient = nil
		log.Println("✅ Redis connection closed")
	}
}
