package cached

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"hr-agent-service/internal/adapter/cache"
	domain "hr-agent-service/internal/domain/employee"
	"hr-agent-service/internal/usecase/employee"
)

// CachedEmployeeRepository implements employee.Repository with caching support.
// It wraps a persistent repository (DB) and a cache implementation.
type CachedEmployeeRepository struct {
	dbRepo employee.Repository
	cache  cache.EmployeeCache
	log    *zap.Logger
	group  singleflight.Group
}

// NewCachedEmployeeRepository creates a new instance of CachedEmployeeRepository.
func NewCachedEmployeeRepository(dbRepo employee.Repository, cache cache.EmployeeCache, log *zap.Logger) employee.Repository {
	return &CachedEmployeeRepository{
		dbRepo: dbRepo,
		cache:  cache,
		log:    log,
	}
}

// Create delegates to the DB repository.
func (r *CachedEmployeeRepository) Create(ctx context.Context, e *domain.Employee) (int64, error) {
	return r.dbRepo.Create(ctx, e)
}

// GetByID retrieves an employee by ID using the cache-aside pattern.
func (r *CachedEmployeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	if r.cache != nil {
		cachedEmployee, err := r.cache.Get(ctx, id)
		if err != nil {
			r.log.Warn("cache get error, falling back to database", zap.Int64("id", id), zap.Error(err))
		} else if cachedEmployee != nil {
			r.log.Debug("employee retrieved from cache", zap.Int64("id", id))
			return cachedEmployee, nil
		}
	}

	// Cache miss or cache disabled - use single-flight to prevent stampede
	key := fmt.Sprintf("employee:%d", id)
	result, err, _ := r.group.Do(key, func() (any, error) {
		// Double-check cache in case another request populated it while we were waiting
		if r.cache != nil {
			cachedEmployee, err := r.cache.Get(ctx, id)
			if err == nil && cachedEmployee != nil {
				r.log.Debug("employee retrieved from cache after single-flight wait", zap.Int64("id", id))
				return cachedEmployee, nil
			}
		}

		// Only one request hits the database
		e, err := r.dbRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}

		if r.cache != nil {
			if err := r.cache.Set(ctx, e); err != nil {
				r.log.Warn("failed to cache employee", zap.Int64("id", id), zap.Error(err))
			}
		}

		return e, nil
	})

	if err != nil {
		return nil, err
	}

	return result.(*domain.Employee), nil
}

// GetByEmail delegates to the DB repository.
func (r *CachedEmployeeRepository) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	return r.dbRepo.GetByEmail(ctx, email)
}

// Update updates the employee in DB and invalidates the cache.
func (r *CachedEmployeeRepository) Update(ctx context.Context, e *domain.Employee) (int64, error) {
	id, err := r.dbRepo.Update(ctx, e)
	if err != nil {
		return 0, err
	}

	if r.cache != nil {
		if err := r.cache.Delete(ctx, e.ID); err != nil {
			r.log.Warn("failed to invalidate cache after update", zap.Int64("id", e.ID), zap.Error(err))
		}
	}

	return id, nil
}

// Delete deletes the employee from DB and invalidates the cache.
func (r *CachedEmployeeRepository) Delete(ctx context.Context, id int64) (int64, error) {
	deletedID, err := r.dbRepo.Delete(ctx, id)
	if err != nil {
		return 0, err
	}

	if r.cache != nil {
		if err := r.cache.Delete(ctx, id); err != nil {
			r.log.Warn("failed to invalidate cache after delete", zap.Int64("id", id), zap.Error(err))
		}
	}

	return deletedID, nil
}

// List delegates to the DB repository.
func (r *CachedEmployeeRepository) List(ctx context.Context, query string, page, limit int64) ([]domain.Employee, int64, error) {
	return r.dbRepo.List(ctx, query, page, limit)
}

// ListAll delegates to the DB repository.
func (r *CachedEmployeeRepository) ListAll(ctx context.Context) ([]domain.Employee, error) {
	return r.dbRepo.ListAll(ctx)
}

// CountByRole delegates to the DB repository.
func (r *CachedEmployeeRepository) CountByRole(ctx context.Context) (map[string]int64, error) {
	return r.dbRepo.CountByRole(ctx)
}
