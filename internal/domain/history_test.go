package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuery() RouteQuery {
	return RouteQuery{
		From: Stop{ID: "s1", Name: "Rossio", Lat: 38.7139, Lon: -9.1394},
		To:   Stop{ID: "s2", Name: "Belém", Lat: 38.6972, Lon: -9.2064},
		Date: "2025-06-01",
		Time: "10:30",
	}
}

func sampleResult() RouteResult {
	return RouteResult{
		DurationMinutes: 35,
		Origin:          "Rossio",
		Destination:     "Belém",
		Summary:         "Tram 15E towards Algés",
	}
}

func TestRecordSearch(t *testing.T) {
	t.Run("prepends new entry without mutating input", func(t *testing.T) {
		first := RecordSearch(nil, sampleQuery(), sampleResult())
		require.Len(t, first, 1)

		snapshot := make([]SavedRoute, len(first))
		copy(snapshot, first)

		updated := RecordSearch(first, sampleQuery(), sampleResult())

		assert.Len(t, first, 1)
		assert.Equal(t, snapshot, first)
		assert.Len(t, updated, 2)
		assert.Equal(t, first[0].ID, updated[1].ID)
	})

	t.Run("new entry is first and carries fresh id", func(t *testing.T) {
		history := RecordSearch(nil, sampleQuery(), sampleResult())
		updated := RecordSearch(history, sampleQuery(), sampleResult())

		assert.NotEqual(t, updated[0].ID, updated[1].ID)
		assert.NotEmpty(t, updated[0].ID)
		assert.False(t, updated[0].CreatedAt.IsZero())
		assert.Equal(t, "Rossio", updated[0].Query.From.Name)
	})
}

func TestRemoveSaved(t *testing.T) {
	t.Run("removes matching id", func(t *testing.T) {
		history := RecordSearch(nil, sampleQuery(), sampleResult())
		history = RecordSearch(history, sampleQuery(), sampleResult())

		updated := RemoveSaved(history, history[1].ID)

		assert.Len(t, updated, 1)
		assert.Equal(t, history[0].ID, updated[0].ID)
		assert.Len(t, history, 2)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		history := RecordSearch(nil, sampleQuery(), sampleResult())

		updated := RemoveSaved(history, "missing")

		assert.Equal(t, history, updated)
	})

	t.Run("empty history", func(t *testing.T) {
		updated := RemoveSaved(nil, "anything")
		assert.Empty(t, updated)
	})
}
