package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"altoque/internal/domain"
)

// GetJSON loads key and decodes it into dst. A missing key yields domain.ErrCacheMiss.
func GetJSON(ctx context.Context, c domain.Cache, key string, dst interface{}) error {
	data, err := c.Get(ctx, key)
	if err != nil {
		return err
	}
	if data == "" {
		return domain.ErrCacheMiss
	}
	if err := json.Unmarshal([]byte(data), dst); err != nil {
		return fmt.Errorf("failed to decode cached value for key %s: %w", key, err)
	}
	return nil
}

// SetJSON encodes v and stores it under key.
func SetJSON(ctx context.Context, c domain.Cache, key string, v interface{}, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode value for key %s: %w", key, err)
	}
	return c.Set(ctx, key, string(data), ttl)
}
