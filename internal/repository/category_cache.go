package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/marketplace-service/internal/domain"
)

const categoryListKey = "marketplace:categories:all"

// CategoryCache holds the full category list between reads.
type CategoryCache interface {
	Get(ctx context.Context) ([]domain.Document, bool, error)
	Set(ctx context.Context, categories []domain.Document) error
	Invalidate(ctx context.Context) error
}

type redisCategoryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCategoryCache returns a Redis-backed cache, or a no-op cache when client is nil.
func NewCategoryCache(client *redis.Client, ttl time.Duration) CategoryCache {
	if client == nil || ttl <= 0 {
		return noopCategoryCache{}
	}
	return &redisCategoryCache{client: client, ttl: ttl}
}

func (c *redisCategoryCache) Get(ctx context.Context) ([]domain.Document, bool, error) {
	raw, err := c.client.Get(ctx, categoryListKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var docs []domain.Document
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, false, err
	}
	return docs, true, nil
}

func (c *redisCategoryCache) Set(ctx context.Context, categories []domain.Document) error {
	payload, err := json.Marshal(categories)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, categoryListKey, payload, c.ttl).Err()
}

func (c *redisCategoryCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, categoryListKey).Err()
}

type noopCategoryCache struct{}

func (noopCategoryCache) Get(context.Context) ([]domain.Document, bool, error) { return nil, false, nil }
func (noopCategoryCache) Set(context.Context, []domain.Document) error         { return nil }
func (noopCategoryCache) Invalidate(context.Context) error                     { return nil }
