package memory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/trip-planner-service/internal/domain"
	"github.com/trip-planner-service/internal/repository/memory"
)

func testQuery(origin string) domain.RouteQuery {
	return domain.RouteQuery{
		From: domain.Stop{Name: origin, Lat: 38.7139, Lon: -9.1394},
		To:   domain.Stop{Name: "Belém", Lat: 38.6972, Lon: -9.2064},
		Date: "2025-06-01",
		Time: "10:30",
	}
}

func TestHistoryRepository(t *testing.T) {
	result := domain.RouteResult{DurationMinutes: 35, Summary: "Tram 15E towards Algés"}

	t.Run("record and list newest first", func(t *testing.T) {
		repo := memory.NewHistoryRepository(zap.NewNop())

		first := repo.Record("s1", testQuery("Rossio"), result)
		second := repo.Record("s1", testQuery("Alfama"), result)

		assert.NotEqual(t, first.ID, second.ID)

		history := repo.List("s1")
		require.Len(t, history, 2)
		assert.Equal(t, second.ID, history[0].ID)
		assert.Equal(t, "Alfama", history[0].Query.From.Name)
		assert.Equal(t, first.ID, history[1].ID)
	})

	t.Run("sessions are isolated", func(t *testing.T) {
		repo := memory.NewHistoryRepository(zap.NewNop())

		repo.Record("s1", testQuery("Rossio"), result)
		repo.Record("s2", testQuery("Alfama"), result)

		assert.Len(t, repo.List("s1"), 1)
		assert.Len(t, repo.List("s2"), 1)
		assert.Empty(t, repo.List("s3"))
	})

	t.Run("remove", func(t *testing.T) {
		repo := memory.NewHistoryRepository(zap.NewNop())

		saved := repo.Record("s1", testQuery("Rossio"), result)
		repo.Record("s1", testQuery("Alfama"), result)

		assert.True(t, repo.Remove("s1", saved.ID))
		assert.Len(t, repo.List("s1"), 1)

		assert.False(t, repo.Remove("s1", saved.ID))
		assert.False(t, repo.Remove("s1", "missing"))
		assert.False(t, repo.Remove("unknown-session", saved.ID))
	})

	t.Run("list returns a copy", func(t *testing.T) {
		repo := memory.NewHistoryRepository(zap.NewNop())

		repo.Record("s1", testQuery("Rossio"), result)

		history := repo.List("s1")
		history[0].ID = "mutated"

		assert.NotEqual(t, "mutated", repo.List("s1")[0].ID)
	})
}
