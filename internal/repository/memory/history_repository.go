package memory

import (
	"sync"

	"github.com/trip-planner-service/internal/domain"
	"github.com/trip-planner-service/internal/domain/repository"
	"go.uber.org/zap"
)

// historyRepository - история поисков в памяти процесса. Сами операции
// над историей - чистые функции domain.RecordSearch/RemoveSaved; хранилище
// лишь сериализует доступ к спискам сессий со стороны HTTP-обработчиков.
type historyRepository struct {
	mu       sync.Mutex
	sessions map[string][]domain.SavedRoute
	logger   *zap.Logger
}

func NewHistoryRepository(logger *zap.Logger) repository.HistoryRepository {
	return &historyRepository{
		sessions: make(map[string][]domain.SavedRoute),
		logger:   logger,
	}
}

func (r *historyRepository) List(sessionID string) []domain.SavedRoute {
	r.mu.Lock()
	defer r.mu.Unlock()

	history := r.sessions[sessionID]
	out := make([]domain.SavedRoute, len(history))
	copy(out, history)
	return out
}

func (r *historyRepository) Record(
	sessionID string,
	query domain.RouteQuery,
	result domain.RouteResult,
) domain.SavedRoute {
	r.mu.Lock()
	defer r.mu.Unlock()

	updated := domain.RecordSearch(r.sessions[sessionID], query, result)
	r.sessions[sessionID] = updated

	r.logger.Debug("Route recorded in session history",
		zap.String("session_id", sessionID),
		zap.Int("history_size", len(updated)),
	)

	return updated[0]
}

func (r *historyRepository) Remove(sessionID string, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	history := r.sessions[sessionID]
	updated := domain.RemoveSaved(history, id)
	if len(updated) == len(history) {
		return false
	}

	r.sessions[sessionID] = updated
	return true
}
