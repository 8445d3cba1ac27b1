package utils

import (
	"context"
	"log"
	"time"

	"medexam/config"

	"github.com/go-redis/redis/v8"
)

// SessionCacheClient holds picker sessions between render and commit.
var SessionCacheClient *redis.Client

// InitRedis initializes the session cache client.
func InitRedis() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := SessionCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (sessions): %v", err)
	}
}

// GetSessionCacheClient returns the session cache client.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitRedis()
	}
	return SessionCacheClient
}
