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

// PlanHandler - обработчик генерации туристических планов
type PlanHandler struct {
	plannerUC *usecase.PlannerUseCase
	tables    *config.Tables
	logger    *zap.Logger
}

// NewPlanHandler - создание нового PlanHandler
func NewPlanHandler(plannerUC *usecase.PlannerUseCase, tables *config.Tables, logger *zap.Logger) *PlanHandler {
	return &PlanHandler{
		plannerUC: plannerUC,
		tables:    tables,
		logger:    logger,
	}
}

// GeneratePlan - генерация многодневного плана тура
// @Summary Generate a multi-day tour plan
// @Tags plan
// @Accept json
// @Produce json
// @Param request body dto.GeneratePlanRequest true "Plan request"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/plan [post]
func (h *PlanHandler) GeneratePlan(c *fiber.Ctx) error {
	var req dto.GeneratePlanRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetail("Invalid request body"))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetail(err.Error()))
	}

	plan, err := h.plannerUC.GeneratePlan(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, plan, &utils.Meta{
		Total: plan.TotalPlaces,
	})
}

// GetThemes - список тем тура и их тегов
// @Summary List tour themes and their tag sets
// @Tags plan
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/plan/themes [get]
func (h *PlanHandler) GetThemes(c *fiber.Ctx) error {
	return utils.SendSuccess(c, fiber.Map{
		"themes": h.tables.Themes,
	}, &utils.Meta{
		Total: len(h.tables.Themes),
	})
}
