package database

import (
	"context"
	"log"
	"time"

	"hotel_manager/config"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

// ConnectRedis mở kết nối Redis dùng cho whitelist refresh token.
// Không có Redis thì logout chỉ thu hồi được trong bảng refresh_tokens.
func ConnectRedis() {
	addr := config.ConfigOr("REDIS_ADDR", "")
	if addr == "" {
		log.Println("REDIS_ADDR trống, bỏ qua Redis")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: config.Config("REDIS_PASSWORD"),
		DB:       config.ConfigInt("REDIS_DB", 0),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Không kết nối được Redis (%s): %v", addr, err)
		return
	}

	Redis = client
	log.Println("Connection Opened to Redis")
}

// CacheRefreshToken ghi token vào whitelist với TTL
func CacheRefreshToken(ctx context.Context, token string, accountId uint, ttl time.Duration) {
	if Redis == nil {
		return
	}
	if err := Redis.Set(ctx, "refresh:"+token, accountId, ttl).Err(); err != nil {
		log.Printf("redis set error: %v", err)
	}
}

// RevokeRefreshToken xoá token khỏi whitelist
func RevokeRefreshToken(ctx context.Context, token string) {
	if Redis == nil {
		return
	}
	if err := Redis.Del(ctx, "refresh:"+token).Err(); err != nil {
		log.Printf("redis del error: %v", err)
	}
}

// IsRefreshTokenCached kiểm tra token còn trong whitelist không.
// Trả về true kèm false nếu Redis không bật (fallback sang DB).
func IsRefreshTokenCached(ctx context.Context, token string) (bool, bool) {
	if Redis == nil {
		return false, false
	}
	n, err := Redis.Exists(ctx, "refresh:"+token).Result()
	if err != nil {
		log.Printf("redis exists error: %v", err)
		return false, false
	}
	return n > 0, true
}
