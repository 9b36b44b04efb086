package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shenikar/flood_response_system/internal/floodrisk"
)

const riskCacheKey = "flood_risk:latest"

// RiskCache хранит последний результат агрегации риска в Redis.
// Промах кеша (включая истекший TTL) - это (nil, nil), а не ошибка.
type RiskCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRiskCache создает кеш агрегации с заданным временем жизни
func NewRiskCache(client *redis.Client, ttl time.Duration) *RiskCache {
	return &RiskCache{
		client: client,
		ttl:    ttl,
	}
}

// Get читает закешированную агрегацию
func (c *RiskCache) Get(ctx context.Context) ([]floodrisk.DistrictRisk, error) {
	payload, err := c.client.Get(ctx, riskCacheKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read risk cache: %w", err)
	}

	var risks []floodrisk.DistrictRisk
	if err := json.Unmarshal([]byte(payload), &risks); err != nil {
		return nil, fmt.Errorf("failed to unmarshal risk cache: %w", err)
	}
	return risks, nil
}

// Set записывает агрегацию с TTL кеша
func (c *RiskCache) Set(ctx context.Context, risks []floodrisk.DistrictRisk) error {
	payload, err := json.Marshal(risks)
	if err != nil {
		return fmt.Errorf("failed to marshal risk cache: %w", err)
	}
	if err := c.client.Set(ctx, riskCacheKey, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write risk cache: %w", err)
	}
	return nil
}
