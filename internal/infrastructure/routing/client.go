package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/trip-planner-service/internal/config"
	"github.com/trip-planner-service/internal/domain"
	"github.com/trip-planner-service/internal/domain/repository"
	"github.com/trip-planner-service/internal/pkg/errors"
	"go.uber.org/zap"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// errorBody - тело ошибки внешнего сервиса маршрутов
type errorBody struct {
	Detail string `json:"detail"`
}

// NewClient создает новый клиент для внешнего сервиса расчёта маршрутов
func NewClient(cfg *config.RoutingConfig, logger *zap.Logger) repository.RoutingRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL: cfg.BaseURL,
		logger:  logger,
	}
}

// SearchRoute запрашивает маршрут между двумя остановками на дату и время
func (c *client) SearchRoute(ctx context.Context, query domain.RouteQuery) (*domain.RouteResult, error) {
	params := url.Values{}
	params.Set("from_lat", fmt.Sprintf("%f", query.From.Lat))
	params.Set("from_lon", fmt.Sprintf("%f", query.From.Lon))
	params.Set("to_lat", fmt.Sprintf("%f", query.To.Lat))
	params.Set("to_lon", fmt.Sprintf("%f", query.To.Lon))
	params.Set("date", query.Date)
	params.Set("time", query.Time)

	requestURL := fmt.Sprintf("%s/routes?%s", c.baseURL, params.Encode())

	c.logger.Debug("Calling routing service",
		zap.String("origin", query.From.Name),
		zap.String("destination", query.To.Name),
		zap.String("date", query.Date),
		zap.String("time", query.Time))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, errors.ErrUpstreamFetch.WithDetail(err.Error())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, errors.ErrUpstreamFetch.WithDetail(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Routing service returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))

		// Сервис кладёт человекочитаемое сообщение в поле detail
		var parsed errorBody
		if err := json.Unmarshal(body, &parsed); err == nil && parsed.Detail != "" {
			return nil, errors.ErrUpstreamFetch.WithDetail(parsed.Detail)
		}
		return nil, errors.ErrUpstreamFetch.WithDetail(
			fmt.Sprintf("routing service error: status %d", resp.StatusCode))
	}

	var result domain.RouteResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		c.logger.Error("Failed to decode routing response", zap.Error(err))
		return nil, errors.ErrUpstreamFetch.WithDetail(err.Error())
	}

	c.logger.Debug("Routing service call successful",
		zap.Int("legs", len(result.Legs)),
		zap.Int("duration_minutes", result.DurationMinutes))

	return &result, nil
}
