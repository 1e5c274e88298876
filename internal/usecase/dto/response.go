package dto

import (
	"time"

	"github.com/trip-planner-service/internal/domain"
)

// RenderableRoute - нормализованный результат поиска маршрута.
// Заполнено ровно одно из полей: либо структурный маршрут,
// либо внешняя ссылка на карту.
type RenderableRoute struct {
	Structured *StructuredRoute `json:"structured,omitempty"`
	DeepLink   *DeepLinkRoute   `json:"deep_link,omitempty"`
}

// StructuredRoute - полный маршрут с участками и сводкой
type StructuredRoute struct {
	Origin          string          `json:"origin"`
	Destination     string          `json:"destination"`
	Departure       string          `json:"departure"`
	Arrival         string          `json:"arrival"`
	DurationMinutes int             `json:"duration_minutes"`
	Transfers       int             `json:"transfers"`
	Summary         string          `json:"summary"`
	Legs            []RenderableLeg `json:"legs"`
}

// RenderableLeg - участок маршрута с данными для отрисовки
type RenderableLeg struct {
	Mode            string      `json:"mode"`
	Icon            string      `json:"icon"`
	Label           string      `json:"label"`
	Color           string      `json:"color"`
	From            domain.Stop `json:"from"`
	To              domain.Stop `json:"to"`
	Departure       string      `json:"departure"`
	Arrival         string      `json:"arrival"`
	DurationMinutes int         `json:"duration_minutes"`
	Agency          string      `json:"agency,omitempty"`
	Headsign        string      `json:"headsign,omitempty"`
	RouteName       string      `json:"route_name,omitempty"`
	Instructions    string      `json:"instructions,omitempty"`
	Ticket          *TicketLink `json:"ticket,omitempty"`
}

// TicketLink - ссылка на покупку билета у перевозчика
type TicketLink struct {
	URL   string `json:"url"`
	Label string `json:"label"`
}

// DeepLinkRoute - отсутствие структурного маршрута: только точки
// отправления/назначения и внешняя ссылка на карту
type DeepLinkRoute struct {
	From   domain.Stop `json:"from"`
	To     domain.Stop `json:"to"`
	MapURL string      `json:"map_url"`
}

// RouteSearchResponse - ответ на поиск маршрута
type RouteSearchResponse struct {
	SavedID   string          `json:"saved_id"`
	CreatedAt time.Time       `json:"created_at"`
	Route     RenderableRoute `json:"route"`
}

// HistoryResponse - история поисков в рамках сессии
type HistoryResponse struct {
	Routes []domain.SavedRoute `json:"routes"`
	Total  int                 `json:"total"`
}
