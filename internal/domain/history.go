package domain

import (
	"time"

	"github.com/google/uuid"
)

// RecordSearch добавляет новый результат в начало истории.
// Входной срез не мутируется, возвращается новый.
func RecordSearch(history []SavedRoute, query RouteQuery, result RouteResult) []SavedRoute {
	saved := SavedRoute{
		ID:        uuid.NewString(),
		Query:     query,
		Result:    result,
		CreatedAt: time.Now().UTC(),
	}

	updated := make([]SavedRoute, 0, len(history)+1)
	updated = append(updated, saved)
	updated = append(updated, history...)
	return updated
}

// RemoveSaved удаляет запись с указанным id.
// Отсутствующий id не является ошибкой: возвращается эквивалентная история.
func RemoveSaved(history []SavedRoute, id string) []SavedRoute {
	updated := make([]SavedRoute, 0, len(history))
	for _, saved := range history {
		if saved.ID != id {
			updated = append(updated, saved)
		}
	}
	return updated
}
