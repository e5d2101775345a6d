package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/ds124wfegd/car-rental/internal/database"
	"github.com/ds124wfegd/car-rental/internal/entity"
	"github.com/redis/go-redis/v9"
)

const overviewKey = "overview:snapshot"

type OverviewCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewOverviewCache(client *redis.Client, ttl time.Duration) *OverviewCache {
	return &OverviewCache{
		client: client,
		ttl:    ttl,
	}
}

func (r *OverviewCache) Set(ctx context.Context, overview *entity.Overview) error {
	data, err := json.Marshal(overview)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, overviewKey, data, r.ttl).Err()
}

func (r *OverviewCache) Get(ctx context.Context) (*entity.Overview, error) {
	data, err := r.client.Get(ctx, overviewKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, database.ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}

	var overview entity.Overview
	if err := json.Unmarshal(data, &overview); err != nil {
		return nil, err
	}
	return &overview, nil
}

// Invalidate drops the snapshot after a booking or car write.
func (r *OverviewCache) Invalidate(ctx context.Context) error {
	return r.client.Del(ctx, overviewKey).Err()
}
