package domain

import "time"

// Stop - остановка общественного транспорта
type Stop struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// RouteLeg - один участок мультимодального маршрута
type RouteLeg struct {
	Mode            TransportMode `json:"mode"`
	From            Stop          `json:"from"`
	To              Stop          `json:"to"`
	Departure       string        `json:"departure"`
	Arrival         string        `json:"arrival"`
	DurationMinutes int           `json:"duration_minutes"`
	Agency          string        `json:"agency,omitempty"`
	Headsign        string        `json:"headsign,omitempty"`
	RouteName       string        `json:"route_name,omitempty"`
	Instructions    string        `json:"instructions,omitempty"`
}

// RouteResult - сырой результат поиска маршрута от внешнего сервиса.
// Summary, начинающийся с "http", означает отсутствие структурного
// маршрута: клиенту отдаётся внешняя ссылка на карту.
type RouteResult struct {
	Legs            []RouteLeg `json:"legs"`
	DurationMinutes int        `json:"duration_minutes"`
	Transfers       *int       `json:"transfers,omitempty"`
	Departure       string     `json:"departure"`
	Arrival         string     `json:"arrival"`
	Origin          string     `json:"origin"`
	Destination     string     `json:"destination"`
	Summary         string     `json:"summary"`
}

// RouteQuery - исходный пользовательский запрос маршрута
type RouteQuery struct {
	From Stop   `json:"from"`
	To   Stop   `json:"to"`
	Date string `json:"date"`
	Time string `json:"time"`
}

// SavedRoute - результат поиска, сохранённый в истории сессии
type SavedRoute struct {
	ID        string      `json:"id"`
	Query     RouteQuery  `json:"query"`
	Result    RouteResult `json:"result"`
	CreatedAt time.Time   `json:"created_at"`
}
