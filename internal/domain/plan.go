package domain

// TransportMode - способ передвижения на участке маршрута
type TransportMode string

const (
	ModeWalk   TransportMode = "walk"
	ModeBus    TransportMode = "bus"
	ModeTrain  TransportMode = "train"
	ModeTram   TransportMode = "tram"
	ModeSubway TransportMode = "subway"
)

// Segment - пеший переход между соседними местами одного дня
type Segment struct {
	Order          int           `json:"order"`
	FromPlaceID    int64         `json:"from_place_id"`
	ToPlaceID      int64         `json:"to_place_id"`
	DistanceMeters float64       `json:"distance_meters"`
	WalkingMinutes int           `json:"walking_minutes"`
	Mode           TransportMode `json:"mode"`
}

// DayPlan - план одного дня: места в порядке посещения и переходы между ними
type DayPlan struct {
	Day                 int       `json:"day"`
	Places              []Place   `json:"places"`
	Segments            []Segment `json:"segments"`
	TotalMinutes        int       `json:"total_minutes"`
	TotalDistanceMeters float64   `json:"total_distance_meters"`
}

// TravelPlan - итоговый многодневный план тура
type TravelPlan struct {
	TourType            string    `json:"tour_type"`
	Tags                []string  `json:"tags"`
	Days                []DayPlan `json:"days"`
	TotalPlaces         int       `json:"total_places"`
	TotalMinutes        int       `json:"total_minutes"`
	TotalDistanceMeters float64   `json:"total_distance_meters"`
}
