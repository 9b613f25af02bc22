package service

import (
	"context"
	"errors"
	"time"

	"altoque/internal/cache"
	"altoque/internal/domain"
	"altoque/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// sheetCache serves normalized rows of one sheet endpoint from the cache,
// fetching at most once per key when concurrent requests miss together.
type sheetCache[T any] struct {
	reader    domain.SheetReader
	cache     domain.Cache
	endpoint  string
	setting   string
	key       string
	ttl       time.Duration
	normalize func([]map[string]interface{}) []T
	group     singleflight.Group
}

func (s *sheetCache[T]) load(ctx context.Context) ([]T, error) {
	if s.endpoint == "" {
		return nil, domain.NewConfigMissingError(s.setting)
	}

	if s.cache != nil {
		var cached []T
		err := cache.GetJSON(ctx, s.cache, s.key, &cached)
		if err == nil {
			logger.Get().Debug("Sheet cache hit", zap.String("key", s.key), zap.Int("rows", len(cached)))
			return cached, nil
		}
		if !errors.Is(err, domain.ErrCacheMiss) {
			// A broken cache degrades to a direct fetch
			logger.Get().Warn("Failed to read sheet cache", zap.String("key", s.key), zap.Error(err))
		}
	}

	// The fetch is shared by every waiter, so it must outlive the caller that
	// started it. The reader's own timeout still bounds it.
	fetchCtx := context.WithoutCancel(ctx)
	v, err, shared := s.group.Do(s.key, func() (interface{}, error) {
		rows, err := s.reader.FetchRows(fetchCtx, s.endpoint)
		if err != nil {
			return nil, domain.NewUpstreamFailedError(err)
		}
		items := s.normalize(rows)
		if s.cache != nil {
			if err := cache.SetJSON(fetchCtx, s.cache, s.key, items, s.ttl); err != nil {
				logger.Get().Warn("Failed to write sheet cache", zap.String("key", s.key), zap.Error(err))
			}
		}
		return items, nil
	})
	if err != nil {
		logger.Get().Error("Failed to fetch sheet rows", zap.String("key", s.key), zap.Error(err))
		return nil, err
	}
	logger.Get().Debug("Fetched sheet rows", zap.String("key", s.key), zap.Bool("shared", shared))
	return v.([]T), nil
}

func (s *sheetCache[T]) invalidate(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	if err := s.cache.Delete(ctx, s.key); err != nil {
		return domain.NewInternalError("failed to invalidate sheet cache", err)
	}
	return nil
}
