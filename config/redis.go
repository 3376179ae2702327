package config

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// RedisClient backs token revocation on logout. When nil the service still
// runs; logout degrades to a client-side token discard.
var RedisClient *redis.Client

func InitRedis() {
	if AppConfig.RedisAddr == "" {
		log.Println("REDIS_ADDR not set, running without token revocation store")
		return
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:     AppConfig.RedisAddr,
		Password: AppConfig.RedisPass,
		DB:       0,
	})

	if _, err := RedisClient.Ping(context.Background()).Result(); err != nil {
		log.Println("Redis connection failed:", err)
		log.Println("Running without token revocation store")
		RedisClient = nil
		return
	}

	log.Println("Redis connected")
}

func CloseRedis() {
	if RedisClient != nil {
		RedisClient.Close()
	}
}
