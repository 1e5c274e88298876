package repository

import "github.com/trip-planner-service/internal/domain"

// HistoryRepository - история поисков маршрутов в рамках сессии.
// Хранение только в памяти, данные живут до конца сессии.
type HistoryRepository interface {
	List(sessionID string) []domain.SavedRoute
	Record(sessionID string, query domain.RouteQuery, result domain.RouteResult) domain.SavedRoute
	Remove(sessionID string, id string) bool
}
