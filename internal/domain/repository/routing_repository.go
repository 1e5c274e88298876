package repository

import (
	"context"

	"github.com/trip-planner-service/internal/domain"
)

// RoutingRepository - внешний сервис расчёта транспортных маршрутов
type RoutingRepository interface {
	SearchRoute(ctx context.Context, query domain.RouteQuery) (*domain.RouteResult, error)
}
