package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	domain "hr-agent-service/internal/domain/employee"
)

// EmployeeCache defines the interface for employee caching operations.
type EmployeeCache interface {
	// Get retrieves an employee from cache by ID.
	// Returns nil if the employee is not cached.
	Get(ctx context.Context, id int64) (*domain.Employee, error)

	// Set stores an employee in cache with the configured TTL.
	Set(ctx context.Context, e *domain.Employee) error

	// Delete removes an employee from cache by ID.
	Delete(ctx context.Context, id int64) error
}

// RedisEmployeeCache implements EmployeeCache using Redis as the backing store.
type RedisEmployeeCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

// NewRedisEmployeeCache creates a new Redis-backed employee cache.
func NewRedisEmployeeCache(client *redis.Client, ttl time.Duration, log *zap.Logger) EmployeeCache {
	return &RedisEmployeeCache{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

// cacheKey generates a Redis key for an employee ID.
func (c *RedisEmployeeCache) cacheKey(id int64) string {
	return fmt.Sprintf("employee:%d", id)
}

// Get retrieves an employee from Redis cache.
func (c *RedisEmployeeCache) Get(ctx context.Context, id int64) (*domain.Employee, error) {
	key := c.cacheKey(id)

	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		// Cache miss - not an error
		c.log.Debug("cache miss", zap.Int64("employee_id", id))
		return nil, nil
	}
	if err != nil {
		c.log.Error("failed to get from cache", zap.Int64("employee_id", id), zap.Error(err))
		return nil, err
	}

	var e domain.Employee
	if err := json.Unmarshal(data, &e); err != nil {
		c.log.Error("failed to unmarshal cached employee", zap.Int64("employee_id", id), zap.Error(err))
		return nil, err
	}

	c.log.Debug("cache hit", zap.Int64("employee_id", id))
	return &e, nil
}

// Set stores an employee in Redis cache with TTL.
func (c *RedisEmployeeCache) Set(ctx context.Context, e *domain.Employee) error {
	if e == nil {
		return fmt.Errorf("cannot cache nil employee")
	}

	key := c.cacheKey(e.ID)

	data, err := json.Marshal(e)
	if err != nil {
		c.log.Error("failed to marshal employee for cache", zap.Int64("employee_id", e.ID), zap.Error(err))
		return err
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.Error("failed to set cache", zap.Int64("employee_id", e.ID), zap.Error(err))
		return err
	}

	c.log.Debug("cached employee", zap.Int64("employee_id", e.ID), zap.Duration("ttl", c.ttl))
	return nil
}

// Delete removes an employee from Redis cache.
func (c *RedisEmployeeCache) Delete(ctx context.Context, id int64) error {
	key := c.cacheKey(id)

	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.log.Error("failed to delete from cache", zap.Int64("employee_id", id), zap.Error(err))
		return err
	}

	c.log.Debug("deleted from cache", zap.Int64("employee_id", id))
	return nil
}
