package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/ReasonJ01/admin-app/internal/logger"
	"github.com/ReasonJ01/admin-app/internal/utils"
)

// NewClient connects to the Redis instance that holds the admin settings blob.
func NewClient(log *logger.Logger) (*goredis.Client, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	clientLog := log.With("client", "Redis")

	addr := strings.TrimSpace(utils.GetEnv("REDIS_ADDR", "localhost:6379", log))
	password := utils.GetEnv("REDIS_PASSWORD", "", log)

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		Password:    password,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	clientLog.Info("Connected to Redis", "addr", addr)

	return rdb, nil
}
