package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTables_ResolveTicket(t *testing.T) {
	tables := DefaultTables()

	t.Run("exact match wins", func(t *testing.T) {
		entry, ok := tables.ResolveTicket("Fertagus")
		require.True(t, ok)
		assert.Equal(t, "Fertagus", entry.Label)
	})

	t.Run("case-insensitive prefix match", func(t *testing.T) {
		entry, ok := tables.ResolveTicket("CarrisMetropolitana Lisboa")
		require.True(t, ok)
		assert.Equal(t, "CarrisMet", entry.Key)
	})

	t.Run("first declared entry wins on multiple prefix matches", func(t *testing.T) {
		// "carrismetropolitana" подходит и под CarrisMet, и под Carris;
		// выигрывает запись, объявленная раньше
		entry, ok := tables.ResolveTicket("carrismetropolitana norte")
		require.True(t, ok)
		assert.Equal(t, "CarrisMet", entry.Key)
	})

	t.Run("plain carris falls through to second entry", func(t *testing.T) {
		entry, ok := tables.ResolveTicket("Carris Lisboa")
		require.True(t, ok)
		assert.Equal(t, "Carris", entry.Key)
	})

	t.Run("unknown agency has no ticket link", func(t *testing.T) {
		_, ok := tables.ResolveTicket("RandomBus99")
		assert.False(t, ok)
	})

	t.Run("empty agency has no ticket link", func(t *testing.T) {
		_, ok := tables.ResolveTicket("")
		assert.False(t, ok)
	})
}

func TestTables_ResolveTheme(t *testing.T) {
	tables := DefaultTables()

	tags, ok := tables.ResolveTheme("History")
	require.True(t, ok)
	assert.Contains(t, tags, "monument")

	_, ok = tables.ResolveTheme("space-travel")
	assert.False(t, ok)
}

func TestTables_ResolveMode(t *testing.T) {
	tables := DefaultTables()

	display := tables.ResolveMode("tram")
	assert.Equal(t, "Tram", display.Label)

	fallback := tables.ResolveMode("ferry")
	assert.Equal(t, "ferry", fallback.Label)
	assert.NotEmpty(t, fallback.Color)
}

func TestLoadTables(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		tables, err := LoadTables("")
		require.NoError(t, err)
		assert.NotEmpty(t, tables.Themes)
		assert.NotEmpty(t, tables.Tickets)
		assert.NotEmpty(t, tables.Modes)
	})

	t.Run("file overrides themes, missing sections fall back", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tables.json")
		content := `{"themes": {"wine": ["winery", "vineyard"]}}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		tables, err := LoadTables(path)
		require.NoError(t, err)

		tags, ok := tables.ResolveTheme("wine")
		require.True(t, ok)
		assert.Equal(t, []string{"winery", "vineyard"}, tags)
		assert.NotEmpty(t, tables.Tickets)
		assert.NotEmpty(t, tables.Modes)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := LoadTables("/nonexistent/tables.json")
		assert.Error(t, err)
	})
}
