package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trip-planner-service/internal/pkg/validator"
	"github.com/trip-planner-service/internal/usecase/dto"
)

func validSearchRequest() dto.RouteSearchRequest {
	return dto.RouteSearchRequest{
		SessionID: "session-1",
		From:      dto.StopInput{Name: "Rossio", Lat: 38.7139, Lon: -9.1394},
		To:        dto.StopInput{Name: "Belém", Lat: 38.6972, Lon: -9.2064},
		Date:      "2025-06-01",
		Time:      "10:30",
	}
}

func TestRouteSearchRequest_Validation(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		req := validSearchRequest()
		assert.NoError(t, validator.Validate(&req))
	})

	t.Run("zero latitude is a valid coordinate", func(t *testing.T) {
		req := validSearchRequest()
		req.From = dto.StopInput{Name: "Equator stop", Lat: 0, Lon: 12.5}
		assert.NoError(t, validator.Validate(&req))
	})

	t.Run("zero longitude is a valid coordinate", func(t *testing.T) {
		req := validSearchRequest()
		req.To = dto.StopInput{Name: "Greenwich", Lat: 51.4779, Lon: 0}
		assert.NoError(t, validator.Validate(&req))
	})

	t.Run("latitude out of range", func(t *testing.T) {
		req := validSearchRequest()
		req.From.Lat = 91
		assert.Error(t, validator.Validate(&req))
	})

	t.Run("longitude out of range", func(t *testing.T) {
		req := validSearchRequest()
		req.To.Lon = -181
		assert.Error(t, validator.Validate(&req))
	})

	t.Run("missing stop name", func(t *testing.T) {
		req := validSearchRequest()
		req.From.Name = ""
		assert.Error(t, validator.Validate(&req))
	})

	t.Run("malformed date", func(t *testing.T) {
		req := validSearchRequest()
		req.Date = "01-06-2025"
		assert.Error(t, validator.Validate(&req))
	})

	t.Run("malformed time", func(t *testing.T) {
		req := validSearchRequest()
		req.Time = "10:30:00"
		assert.Error(t, validator.Validate(&req))
	})
}

func TestGeneratePlanRequest_Validation(t *testing.T) {
	t.Run("tour type is required", func(t *testing.T) {
		assert.Error(t, validator.Validate(&dto.GeneratePlanRequest{Days: 1}))
	})

	t.Run("day count is left to the planner", func(t *testing.T) {
		// Верхняя граница дней настраивается, теги её не дублируют
		req := dto.GeneratePlanRequest{TourType: "history", Days: 9}
		assert.NoError(t, validator.Validate(&req))
	})
}
