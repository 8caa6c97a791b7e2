package cache

import (
	"context"
	"testing"
	"time"
)

func TestNewRedisCacheUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	// Port 1 refuses connections, so the ping must fail.
	if _, err := NewRedisCache(ctx, RedisConfig{Addr: "127.0.0.1:1"}); err == nil {
		t.Fatal("NewRedisCache should fail without a reachable server")
	}
}
