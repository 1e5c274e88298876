package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/trip-planner-service/internal/config"
	"github.com/trip-planner-service/internal/pkg/errors"
	"github.com/trip-planner-service/internal/pkg/utils"
	"github.com/trip-planner-service/internal/pkg/validator"
	"github.com/trip-planner-service/internal/usecase"
	"github.com/trip-planner-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// RouteHandler - обработчик поиска транспортных маршрутов и истории
type RouteHandler struct {
	routeUC *usecase.RouteUseCase
	tables  *config.Tables
	logger  *zap.Logger
}

// NewRouteHandler - создание нового RouteHandler
func NewRouteHandler(routeUC *usecase.RouteUseCase, tables *config.Tables, logger *zap.Logger) *RouteHandler {
	return &RouteHandler{
		routeUC: routeUC,
		tables:  tables,
		logger:  logger,
	}
}

// SearchRoute - поиск маршрута между двумя остановками
// @Summary Search a transit route between two stops
// @Tags routes
// @Accept json
// @Produce json
// @Param request body dto.RouteSearchRequest true "Route search request"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/routes/search [post]
func (h *RouteHandler) SearchRoute(c *fiber.Ctx) error {
	var req dto.RouteSearchRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetail("Invalid request body"))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetail(err.Error()))
	}

	if !utils.ValidateCoordinates(req.From.Lat, req.From.Lon) ||
		!utils.ValidateCoordinates(req.To.Lat, req.To.Lon) {
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}

	result, err := h.routeUC.SearchRoute(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// GetModes - конфигурация отображения видов транспорта
// @Summary Transport mode display configuration
// @Tags routes
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/routes/modes [get]
func (h *RouteHandler) GetModes(c *fiber.Ctx) error {
	return utils.SendSuccess(c, fiber.Map{
		"modes": h.tables.Modes,
	}, &utils.Meta{
		Total: len(h.tables.Modes),
	})
}

// ListHistory - история поисков сессии
// @Summary Session route search history
// @Tags routes
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/routes/history/{session_id} [get]
func (h *RouteHandler) ListHistory(c *fiber.Ctx) error {
	sessionID := c.Params("session_id")
	if sessionID == "" {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetail("session_id is required"))
	}

	history := h.routeUC.ListHistory(sessionID)

	return utils.SendSuccess(c, history, &utils.Meta{
		Total: history.Total,
	})
}

// RemoveSaved - удаление сохранённого маршрута из истории сессии
// @Summary Remove a saved route from the session history
// @Tags routes
// @Produce json
// @Param session_id path string true "Session ID"
// @Param id path string true "Saved route ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/routes/history/{session_id}/{id} [delete]
func (h *RouteHandler) RemoveSaved(c *fiber.Ctx) error {
	sessionID := c.Params("session_id")
	id := c.Params("id")
	if sessionID == "" || id == "" {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetail("session_id and id are required"))
	}

	if !h.routeUC.RemoveSaved(sessionID, id) {
		return utils.SendError(c, errors.ErrSavedRouteNotFound)
	}

	return utils.SendSuccess(c, fiber.Map{
		"removed": true,
	}, nil)
}
