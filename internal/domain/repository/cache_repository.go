package repository

import (
	"context"
	"time"

	"github.com/trip-planner-service/internal/domain"
)

// CacheRepository - кеш данных, получаемых от внешних источников
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)

	GetPlaces(ctx context.Context, key string) ([]domain.Place, error)
	SetPlaces(ctx context.Context, key string, places []domain.Place, ttl time.Duration) error

	GetRouteResult(ctx context.Context, key string) (*domain.RouteResult, error)
	SetRouteResult(ctx context.Context, key string, result *domain.RouteResult, ttl time.Duration) error
}
