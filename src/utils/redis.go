package utils

import (
	"fmt"
	"time"

	DB "Backend-CourseSignin/src/database"

	"github.com/redis/go-redis/v9"
)

// StoreRefreshToken 把 refresh token 存進 Redis 並設定過期時間
// Returns nil if Redis is not available (development mode)
func StoreRefreshToken(userID, refreshToken string, expiresIn time.Duration) error {
	client := DB.RedisClient
	if client == nil {
		return nil
	}

	key := fmt.Sprintf("refresh_token:%s", userID)
	if err := client.Set(DB.RedisCtx, key, refreshToken, expiresIn).Err(); err != nil {
		return fmt.Errorf("failed to store refresh token: %v", err)
	}
	return nil
}

// ValidateRefreshToken 檢查 refresh token 是否與 Redis 中保存的一致
// Returns true if Redis is not available (development mode - skip validation)
func ValidateRefreshToken(userID, refreshToken string) (bool, error) {
	client := DB.RedisClient
	if client == nil {
		return true, nil
	}

	key := fmt.Sprintf("refresh_token:%s", userID)
	storedToken, err := client.Get(DB.RedisCtx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get refresh token: %v", err)
	}

	return storedToken == refreshToken, nil
}

// DeleteRefreshToken 登出時移除 refresh token
func DeleteRefreshToken(userID string) error {
	client := DB.RedisClient
	if client == nil {
		return nil
	}

	key := fmt.Sprintf("refresh_token:%s", userID)
	if err := client.Del(DB.RedisCtx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete refresh token: %v", err)
	}
	return nil
}

// BlacklistToken 登出時把 access token 加入黑名單
func BlacklistToken(token string, expiresIn time.Duration) error {
	client := DB.RedisClient
	if client == nil {
		return nil
	}

	key := fmt.Sprintf("blacklist:%s", token)
	if err := client.Set(DB.RedisCtx, key, "1", expiresIn).Err(); err != nil {
		return fmt.Errorf("failed to blacklist token: %v", err)
	}
	return nil
}

// IsTokenBlacklisted 檢查 token 是否在黑名單中
// Returns false if Redis is not available (development mode - allow all tokens)
func IsTokenBlacklisted(token string) (bool, error) {
	client := DB.RedisClient
	if client == nil {
		return false, nil
	}

	key := fmt.Sprintf("blacklist:%s", token)
	if _, err := client.Get(DB.RedisCtx, key).Result(); err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to check blacklist: %v", err)
	}
	return true, nil
}
