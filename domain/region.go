package domain

// Region describes one supported region: its language, the capital used as
// the "region" shown to users, festivals, and local specialties.
type Region struct {
	Key         string     `json:"key"`
	Language    string     `json:"language"`
	Capital     string     `json:"capital"`
	Festivals   []Festival `json:"festivals"`
	LocalDishes []string   `json:"local_dishes"`
	FamousAreas []string   `json:"famous_areas"`
}

type Festival struct {
	Name         string `json:"name"`
	Month        int    `json:"month"`
	DurationDays int    `json:"duration_days"`
}

type FestiveSpecial struct {
	Name           string `json:"name"`
	IsOngoing      bool   `json:"is_ongoing"`
	SpecialMessage string `json:"special_message"`
}

// LocalDish is a region-and-time-of-day specific suggestion, independent of
// the personalized recommendation engine.
type LocalDish struct {
	Name        string `json:"name"`
	Language    string `json:"language"`
	Region      string `json:"region"`
	Description string `json:"description"`
}

type Language struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	IsRTL bool   `json:"is_rtl"`
}
