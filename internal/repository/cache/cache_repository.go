package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/trip-planner-service/internal/domain"
	"github.com/trip-planner-service/internal/domain/repository"
	"github.com/trip-planner-service/internal/pkg/errors"
	"go.uber.org/zap"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, errors.ErrCacheError.WithDetail(err.Error())
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return errors.ErrCacheError.WithDetail(err.Error())
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return errors.ErrCacheError.WithDetail(err.Error())
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

func (r *cacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	val, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		r.logger.Error("Failed to check cache existence", zap.String("key", key), zap.Error(err))
		return false, errors.ErrCacheError.WithDetail(err.Error())
	}

	return val > 0, nil
}

// GetPlaces получает каталог мест из кеша
func (r *cacheRepository) GetPlaces(ctx context.Context, key string) ([]domain.Place, error) {
	data, err := r.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var places []domain.Place
	if err := json.Unmarshal(data, &places); err != nil {
		r.logger.Error("Failed to unmarshal places from cache", zap.Error(err))
		return nil, errors.ErrCacheError.WithDetail(err.Error())
	}

	return places, nil
}

// SetPlaces сохраняет каталог мест в кеше
func (r *cacheRepository) SetPlaces(ctx context.Context, key string, places []domain.Place, ttl time.Duration) error {
	data, err := json.Marshal(places)
	if err != nil {
		r.logger.Error("Failed to marshal places", zap.Error(err))
		return errors.ErrCacheError.WithDetail(err.Error())
	}

	return r.Set(ctx, key, data, ttl)
}

// GetRouteResult получает сырой результат поиска маршрута из кеша
func (r *cacheRepository) GetRouteResult(ctx context.Context, key string) (*domain.RouteResult, error) {
	data, err := r.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var result domain.RouteResult
	if err := json.Unmarshal(data, &result); err != nil {
		r.logger.Error("Failed to unmarshal route result from cache", zap.Error(err))
		return nil, errors.ErrCacheError.WithDetail(err.Error())
	}

	return &result, nil
}

// SetRouteResult сохраняет сырой результат поиска маршрута в кеше
func (r *cacheRepository) SetRouteResult(ctx context.Context, key string, result *domain.RouteResult, ttl time.Duration) error {
	data, err := json.Marshal(result)
	if err != nil {
		r.logger.Error("Failed to marshal route result", zap.Error(err))
		return errors.ErrCacheError.WithDetail(err.Error())
	}

	return r.Set(ctx, key, data, ttl)
}
