package repository

import (
	"context"

	"github.com/trip-planner-service/internal/domain"
)

// PlaceRepository - доступ к каталогу точек интереса
type PlaceRepository interface {
	// GetAll возвращает весь каталог; limit <= 0 - без ограничения
	GetAll(ctx context.Context, limit int) ([]domain.Place, error)
	// GetByTags возвращает места с пересечением тегов
	GetByTags(ctx context.Context, tags []string, limit int) ([]domain.Place, error)
}
