package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/inmobilia/housing-api/internal/core/domain"
)

const (
	departmentsKey = "departments:active"
	cacheTTL       = time.Minute
)

// DepartmentCache caches the active-department listing in Redis. Every
// failure path degrades to a miss so an unavailable cache never breaks reads.
type DepartmentCache struct {
	client *redis.Client
	logger zerolog.Logger
}

func NewDepartmentCache(client *redis.Client, logger zerolog.Logger) *DepartmentCache {
	return &DepartmentCache{client: client, logger: logger}
}

func (c *DepartmentCache) Get(ctx context.Context) ([]domain.Department, bool) {
	raw, err := c.client.Get(ctx, departmentsKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn().Err(err).Msg("department cache read failed")
		}
		return nil, false
	}

	var departments []domain.Department
	if err := json.Unmarshal(raw, &departments); err != nil {
		c.logger.Warn().Err(err).Msg("department cache payload corrupt")
		return nil, false
	}
	return departments, true
}

func (c *DepartmentCache) Set(ctx context.Context, departments []domain.Department) {
	raw, err := json.Marshal(departments)
	if err != nil {
		c.logger.Warn().Err(err).Msg("department cache encode failed")
		return
	}
	if err := c.client.Set(ctx, departmentsKey, raw, cacheTTL).Err(); err != nil {
		c.logger.Warn().Err(err).Msg("department cache write failed")
	}
}

func (c *DepartmentCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, departmentsKey).Err(); err != nil {
		c.logger.Warn().Err(err).Msg("department cache invalidation failed")
	}
}
