package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/trip-planner-service/internal/config"
	"github.com/trip-planner-service/internal/domain"
	"github.com/trip-planner-service/internal/domain/repository"
	"github.com/trip-planner-service/internal/usecase/dto"
)

// RouteUseCase - поиск транспортных маршрутов, нормализация результатов
// и история поисков в рамках сессии
type RouteUseCase struct {
	routingRepo repository.RoutingRepository
	cacheRepo   repository.CacheRepository
	historyRepo repository.HistoryRepository
	tables      *config.Tables
	cacheTTL    time.Duration
	logger      *zap.Logger
}

// NewRouteUseCase - создание нового RouteUseCase
func NewRouteUseCase(
	routingRepo repository.RoutingRepository,
	cacheRepo repository.CacheRepository,
	historyRepo repository.HistoryRepository,
	tables *config.Tables,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *RouteUseCase {
	return &RouteUseCase{
		routingRepo: routingRepo,
		cacheRepo:   cacheRepo,
		historyRepo: historyRepo,
		tables:      tables,
		cacheTTL:    cacheTTL,
		logger:      logger,
	}
}

// SearchRoute - запрос маршрута у внешнего сервиса (с кешем), нормализация
// и запись результата в историю сессии
func (uc *RouteUseCase) SearchRoute(
	ctx context.Context,
	req dto.RouteSearchRequest,
) (*dto.RouteSearchResponse, error) {
	query := domain.RouteQuery{
		From: domain.Stop{ID: req.From.ID, Name: req.From.Name, Lat: req.From.Lat, Lon: req.From.Lon},
		To:   domain.Stop{ID: req.To.ID, Name: req.To.Name, Lat: req.To.Lat, Lon: req.To.Lon},
		Date: req.Date,
		Time: req.Time,
	}

	raw, err := uc.fetchRoute(ctx, query)
	if err != nil {
		return nil, err
	}

	renderable := uc.Normalize(query, *raw)
	saved := uc.historyRepo.Record(req.SessionID, query, *raw)

	uc.logger.Info("Route search completed",
		zap.String("origin", query.From.Name),
		zap.String("destination", query.To.Name),
		zap.Bool("deep_link", renderable.DeepLink != nil),
	)

	return &dto.RouteSearchResponse{
		SavedID:   saved.ID,
		CreatedAt: saved.CreatedAt,
		Route:     renderable,
	}, nil
}

// fetchRoute - результат из кеша либо от внешнего сервиса
func (uc *RouteUseCase) fetchRoute(ctx context.Context, query domain.RouteQuery) (*domain.RouteResult, error) {
	key := routeCacheKey(query)

	cached, err := uc.cacheRepo.GetRouteResult(ctx, key)
	if err != nil {
		uc.logger.Warn("Route cache read failed", zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	raw, err := uc.routingRepo.SearchRoute(ctx, query)
	if err != nil {
		uc.logger.Error("Upstream route search failed", zap.Error(err))
		return nil, err
	}

	if err := uc.cacheRepo.SetRouteResult(ctx, key, raw, uc.cacheTTL); err != nil {
		uc.logger.Warn("Route cache write failed", zap.Error(err))
	}

	return raw, nil
}

func routeCacheKey(query domain.RouteQuery) string {
	return fmt.Sprintf("route:%.5f:%.5f:%.5f:%.5f:%s:%s",
		query.From.Lat, query.From.Lon, query.To.Lat, query.To.Lon, query.Date, query.Time)
}

// IsDeepLinkFallback - признак отсутствия структурного маршрута.
// Исторический контракт бэкенда: summary, начинающийся с "http",
// означает внешнюю ссылку на карту, а не текстовое описание.
func IsDeepLinkFallback(result domain.RouteResult) bool {
	return strings.HasPrefix(result.Summary, "http")
}

// Normalize переводит сырой результат в отображаемую модель: строковый
// сигнал deep link превращается в явный вариант на границе API, дальше
// по коду строка не анализируется
func (uc *RouteUseCase) Normalize(query domain.RouteQuery, raw domain.RouteResult) dto.RenderableRoute {
	if IsDeepLinkFallback(raw) {
		return dto.RenderableRoute{
			DeepLink: &dto.DeepLinkRoute{
				From:   query.From,
				To:     query.To,
				MapURL: raw.Summary,
			},
		}
	}

	legs := make([]dto.RenderableLeg, 0, len(raw.Legs))
	for _, leg := range raw.Legs {
		display := uc.tables.ResolveMode(string(leg.Mode))

		renderable := dto.RenderableLeg{
			Mode:            string(leg.Mode),
			Icon:            display.Icon,
			Label:           display.Label,
			Color:           display.Color,
			From:            leg.From,
			To:              leg.To,
			Departure:       leg.Departure,
			Arrival:         leg.Arrival,
			DurationMinutes: leg.DurationMinutes,
			Agency:          leg.Agency,
			Headsign:        leg.Headsign,
			RouteName:       leg.RouteName,
			Instructions:    leg.Instructions,
		}

		if leg.Mode != domain.ModeWalk {
			if entry, ok := uc.tables.ResolveTicket(leg.Agency); ok {
				renderable.Ticket = &dto.TicketLink{URL: entry.URL, Label: entry.Label}
			}
		}

		legs = append(legs, renderable)
	}

	transfers := 0
	if raw.Transfers != nil {
		transfers = *raw.Transfers
	} else {
		transfers = CountTransfers(raw.Legs)
	}

	return dto.RenderableRoute{
		Structured: &dto.StructuredRoute{
			Origin:          raw.Origin,
			Destination:     raw.Destination,
			Departure:       raw.Departure,
			Arrival:         raw.Arrival,
			DurationMinutes: raw.DurationMinutes,
			Transfers:       transfers,
			Summary:         raw.Summary,
			Legs:            legs,
		},
	}
}

// CountTransfers - количество пересадок: соседние не-пешие участки
// с разным маршрутом или перевозчиком
func CountTransfers(legs []domain.RouteLeg) int {
	count := 0
	for i := 1; i < len(legs); i++ {
		prev, cur := legs[i-1], legs[i]
		if prev.Mode == domain.ModeWalk || cur.Mode == domain.ModeWalk {
			continue
		}
		if prev.RouteName != cur.RouteName || prev.Agency != cur.Agency {
			count++
		}
	}
	return count
}

// ListHistory - сохранённые результаты сессии, свежие первыми
func (uc *RouteUseCase) ListHistory(sessionID string) *dto.HistoryResponse {
	routes := uc.historyRepo.List(sessionID)
	return &dto.HistoryResponse{
		Routes: routes,
		Total:  len(routes),
	}
}

// RemoveSaved - удаление записи из истории; отсутствие id не ошибка
func (uc *RouteUseCase) RemoveSaved(sessionID, id string) bool {
	removed := uc.historyRepo.Remove(sessionID, id)
	if removed {
		uc.logger.Debug("Saved route removed",
			zap.String("session_id", sessionID),
			zap.String("id", id),
		)
	}
	return removed
}
