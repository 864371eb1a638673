package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	domain "hr-agent-service/internal/domain/employee"
)

// setupTestRedis creates a miniredis instance for testing
func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() {
		_ = client.Close()
	})
	return client, mr
}

func TestRedisEmployeeCache_Set_Success(t *testing.T) {
	client, _ := setupTestRedis(t)
	cache := NewRedisEmployeeCache(client, 5*time.Minute, zaptest.NewLogger(t))

	emp := &domain.Employee{
		ID:    1,
		Name:  "Alex Chen",
		Email: "alex@example.com",
		Role:  domain.RoleManager,
	}

	err := cache.Set(context.Background(), emp)
	require.NoError(t, err)

	// Verify data is in Redis
	data, err := client.Get(context.Background(), "employee:1").Bytes()
	require.NoError(t, err)

	var cached domain.Employee
	require.NoError(t, json.Unmarshal(data, &cached))
	assert.Equal(t, emp.ID, cached.ID)
	assert.Equal(t, emp.Name, cached.Name)
	assert.Equal(t, emp.Role, cached.Role)
}

func TestRedisEmployeeCache_Set_NilEmployee(t *testing.T) {
	client, _ := setupTestRedis(t)
	cache := NewRedisEmployeeCache(client, 5*time.Minute, zaptest.NewLogger(t))

	err := cache.Set(context.Background(), nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cannot cache nil employee")
}

func TestRedisEmployeeCache_Get_Success(t *testing.T) {
	client, _ := setupTestRedis(t)
	cache := NewRedisEmployeeCache(client, 5*time.Minute, zaptest.NewLogger(t))

	emp := &domain.Employee{ID: 1, Name: "Alex Chen", Email: "alex@example.com"}
	require.NoError(t, cache.Set(context.Background(), emp))

	cached, err := cache.Get(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, emp.Name, cached.Name)
	assert.Equal(t, emp.Email, cached.Email)
}

func TestRedisEmployeeCache_Get_CacheMiss(t *testing.T) {
	client, _ := setupTestRedis(t)
	cache := NewRedisEmployeeCache(client, 5*time.Minute, zaptest.NewLogger(t))

	cached, err := cache.Get(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, cached)
}

func TestRedisEmployeeCache_Delete_Success(t *testing.T) {
	client, _ := setupTestRedis(t)
	cache := NewRedisEmployeeCache(client, 5*time.Minute, zaptest.NewLogger(t))

	emp := &domain.Employee{ID: 1, Name: "Alex Chen", Email: "alex@example.com"}
	require.NoError(t, cache.Set(context.Background(), emp))

	require.NoError(t, cache.Delete(context.Background(), 1))

	cached, err := cache.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, cached)
}

func TestRedisEmployeeCache_TTL(t *testing.T) {
	client, mr := setupTestRedis(t)
	ttl := 2 * time.Second
	cache := NewRedisEmployeeCache(client, ttl, zaptest.NewLogger(t))

	emp := &domain.Employee{ID: 1, Name: "Alex Chen", Email: "alex@example.com"}
	require.NoError(t, cache.Set(context.Background(), emp))

	// Fast forward time in miniredis
	mr.FastForward(3 * time.Second)

	cached, err := cache.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, cached)
}
