package database

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	RedisCtx    = context.Background()
	RedisURI    string
)

// InitRedis 初始化 Redis 連線, 連不上時不擋啟動 (dev mode 沒有 Redis 也能跑)
func InitRedis() {
	RedisURI = os.Getenv("REDIS_URI")
	if RedisURI == "" {
		RedisURI = "localhost:6379"
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:     RedisURI,
		Password: "",
		DB:       0,
	})
	if _, err := RedisClient.Ping(RedisCtx).Result(); err != nil {
		log.Println("⚠️ Redis not available:", err)
		RedisClient = nil
		return
	}
	log.Println("✅ Redis connected successfully")
}
