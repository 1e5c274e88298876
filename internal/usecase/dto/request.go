package dto

// GeneratePlanRequest - запрос на генерацию многодневного плана тура.
// Количество дней не проверяется тегами: верхняя граница настраивается
// (PlannerConfig.MaxDays), проверку целиком выполняет планировщик.
type GeneratePlanRequest struct {
	TourType   string   `json:"tour_type" validate:"required"`
	CustomTags []string `json:"custom_tags,omitempty"`
	Days       int      `json:"days"`
}

// StopInput - остановка в пользовательском запросе маршрута.
// Координаты без required: ноль - валидная широта и долгота.
type StopInput struct {
	ID   string  `json:"id"`
	Name string  `json:"name" validate:"required"`
	Lat  float64 `json:"lat" validate:"min=-90,max=90"`
	Lon  float64 `json:"lon" validate:"min=-180,max=180"`
}

// RouteSearchRequest - запрос на поиск транспортного маршрута
type RouteSearchRequest struct {
	SessionID string    `json:"session_id" validate:"required"`
	From      StopInput `json:"from_stop" validate:"required"`
	To        StopInput `json:"to_stop" validate:"required"`
	Date      string    `json:"date" validate:"required,datetime=2006-01-02"`
	Time      string    `json:"time" validate:"required,datetime=15:04"`
}
