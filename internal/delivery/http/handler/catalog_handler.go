package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/trip-planner-service/internal/domain"
	"github.com/trip-planner-service/internal/domain/repository"
	"github.com/trip-planner-service/internal/pkg/utils"
	"go.uber.org/zap"
)

// CatalogHandler - чтение каталога точек интереса
type CatalogHandler struct {
	placeRepo repository.PlaceRepository
	logger    *zap.Logger
}

// NewCatalogHandler - создание нового CatalogHandler
func NewCatalogHandler(placeRepo repository.PlaceRepository, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		placeRepo: placeRepo,
		logger:    logger,
	}
}

// ListPlaces - места каталога, опционально по тегам
// @Summary List catalog places, optionally filtered by tags
// @Tags catalog
// @Produce json
// @Param tags query string false "Comma-separated tags"
// @Param limit query int false "Max results"
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/catalog/places [get]
func (h *CatalogHandler) ListPlaces(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 100)

	var tags []string
	if raw := c.Query("tags"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(t); trimmed != "" {
				tags = append(tags, trimmed)
			}
		}
	}

	places, err := h.fetch(c, tags, limit)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{
		"places": places,
	}, &utils.Meta{
		Total: len(places),
		Limit: limit,
	})
}

func (h *CatalogHandler) fetch(c *fiber.Ctx, tags []string, limit int) ([]domain.Place, error) {
	if len(tags) > 0 {
		return h.placeRepo.GetByTags(c.Context(), tags, limit)
	}
	return h.placeRepo.GetAll(c.Context(), limit)
}
