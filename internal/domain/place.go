package domain

import "strings"

// CostLevel - уровень стоимости посещения места
type CostLevel string

const (
	CostFree   CostLevel = "free"
	CostLow    CostLevel = "low"
	CostMedium CostLevel = "medium"
	CostHigh   CostLevel = "high"
)

// IntensityLevel - уровень физической нагрузки при посещении
type IntensityLevel string

const (
	IntensityLow    IntensityLevel = "low"
	IntensityMedium IntensityLevel = "medium"
	IntensityHigh   IntensityLevel = "high"
)

// Place представляет точку интереса из каталога
type Place struct {
	ID            int64          `json:"id" db:"id"`
	Name          string         `json:"name" db:"name"`
	Lat           float64        `json:"latitude" db:"lat"`
	Lon           float64        `json:"longitude" db:"lon"`
	Category      string         `json:"type" db:"category"`
	VisitDuration int            `json:"visit_duration_minutes" db:"visit_duration_minutes"`
	Tags          []string       `json:"tags" db:"tags"`
	Description   string         `json:"description,omitempty" db:"description"`
	CostLevel     CostLevel      `json:"cost_level" db:"cost_level"`
	Indoor        bool           `json:"indoor" db:"indoor"`
	Intensity     IntensityLevel `json:"intensity" db:"intensity"`
	Popularity    float64        `json:"popularity" db:"popularity"`
}

// IsMealStop - места питания всегда попадают в выборку плана,
// чтобы каждый день содержал варианты для еды
func (p Place) IsMealStop() bool {
	return strings.EqualFold(p.Category, "restaurant") ||
		strings.EqualFold(p.Category, "cafe") ||
		strings.EqualFold(p.Category, "café")
}

// HasAnyTag - есть ли пересечение тегов места с набором
func (p Place) HasAnyTag(tags map[string]struct{}) bool {
	for _, t := range p.Tags {
		if _, ok := tags[strings.ToLower(t)]; ok {
			return true
		}
	}
	return false
}
