package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// TicketEntry - запись таблицы покупки билетов.
// Key сравнивается с названием перевозчика: сначала точное совпадение,
// затем регистронезависимый префикс. Порядок записей определяет
// приоритет при нескольких префиксных совпадениях.
type TicketEntry struct {
	Key   string `json:"key"`
	URL   string `json:"url"`
	Label string `json:"label"`
}

// ModeDisplay - отображение вида транспорта в клиенте
type ModeDisplay struct {
	Icon  string `json:"icon"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// Tables - статические справочники: тема тура -> теги,
// перевозчик -> ссылка на билеты, вид транспорта -> отображение.
// Загружаются из JSON-файла, при его отсутствии - значения по умолчанию.
type Tables struct {
	Themes  map[string][]string    `json:"themes"`
	Tickets []TicketEntry          `json:"tickets"`
	Modes   map[string]ModeDisplay `json:"modes"`
}

// DefaultTables - справочники по умолчанию
func DefaultTables() *Tables {
	return &Tables{
		Themes: map[string][]string{
			"beautiful": {"scenic", "viewpoint", "architecture"},
			"food":      {"restaurant", "cafe", "market"},
			"history":   {"history", "monument", "museum"},
			"nature":    {"park", "garden", "nature"},
			"culture":   {"museum", "gallery", "theatre"},
			"family":    {"park", "zoo", "aquarium"},
		},
		Tickets: []TicketEntry{
			{Key: "CarrisMet", URL: "https://www.carrismetropolitana.pt/tickets", Label: "Carris Metropolitana"},
			{Key: "Carris", URL: "https://www.carris.pt/viaje/tarifas", Label: "Carris"},
			{Key: "CP", URL: "https://www.cp.pt/passageiros/pt/comprar-bilhetes", Label: "CP Comboios"},
			{Key: "Metropolitano", URL: "https://www.metrolisboa.pt/comprar", Label: "Metro Lisboa"},
			{Key: "Fertagus", URL: "https://www.fertagus.pt/pt/tarifario", Label: "Fertagus"},
		},
		Modes: map[string]ModeDisplay{
			"walk":   {Icon: "walk", Label: "Walk", Color: "#9E9E9E"},
			"bus":    {Icon: "bus", Label: "Bus", Color: "#FFB300"},
			"train":  {Icon: "train", Label: "Train", Color: "#43A047"},
			"tram":   {Icon: "tram", Label: "Tram", Color: "#E53935"},
			"subway": {Icon: "subway", Label: "Subway", Color: "#1E88E5"},
		},
	}
}

// LoadTables загружает справочники из файла, пустой путь - значения по умолчанию
func LoadTables(path string) (*Tables, error) {
	if path == "" {
		return DefaultTables(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tables file: %w", err)
	}

	var tables Tables
	if err := json.Unmarshal(data, &tables); err != nil {
		return nil, fmt.Errorf("failed to parse tables file: %w", err)
	}

	// Недостающие секции добираются из значений по умолчанию
	defaults := DefaultTables()
	if len(tables.Themes) == 0 {
		tables.Themes = defaults.Themes
	}
	if len(tables.Tickets) == 0 {
		tables.Tickets = defaults.Tickets
	}
	if len(tables.Modes) == 0 {
		tables.Modes = defaults.Modes
	}

	return &tables, nil
}

// ResolveTheme - набор тегов для темы тура
func (t *Tables) ResolveTheme(theme string) ([]string, bool) {
	tags, ok := t.Themes[strings.ToLower(strings.TrimSpace(theme))]
	return tags, ok
}

// ResolveTicket - подбор ссылки на покупку билета по названию перевозчика.
// Точное совпадение имеет приоритет над префиксным, при нескольких
// префиксных совпадениях выигрывает первая запись таблицы.
func (t *Tables) ResolveTicket(agency string) (*TicketEntry, bool) {
	if agency == "" {
		return nil, false
	}

	for i := range t.Tickets {
		if t.Tickets[i].Key == agency {
			return &t.Tickets[i], true
		}
	}

	lower := strings.ToLower(agency)
	for i := range t.Tickets {
		if strings.HasPrefix(lower, strings.ToLower(t.Tickets[i].Key)) {
			return &t.Tickets[i], true
		}
	}

	return nil, false
}

// ResolveMode - отображение вида транспорта, с запасным вариантом
func (t *Tables) ResolveMode(mode string) ModeDisplay {
	if display, ok := t.Modes[mode]; ok {
		return display
	}
	return ModeDisplay{Icon: "transit", Label: mode, Color: "#607D8B"}
}
