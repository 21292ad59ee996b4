package domain

import (
	"time"
)

// CREATE TABLE public.menu_items (
//     id              TEXT PRIMARY KEY,
//     provider_id     TEXT,
//     name            TEXT NOT NULL,
//     description     TEXT,
//     cuisine         TEXT,
//     price           NUMERIC,
//     rating          NUMERIC DEFAULT 0,
//     order_count     BIGINT DEFAULT 0,
//     is_vegetarian   BOOLEAN DEFAULT FALSE,
//     is_vegan        BOOLEAN DEFAULT FALSE,
//     is_gluten_free  BOOLEAN DEFAULT FALSE,
//     tags            TEXT,
//     ingredients     TEXT,
//     city            TEXT,
//     meal_time       TEXT,
//     is_available    BOOLEAN DEFAULT TRUE,
//     created_at      TIMESTAMPTZ DEFAULT NOW()
// );

type MenuItem struct {
	ID           string    `gorm:"primaryKey;column:id" json:"id"`
	ProviderID   string    `gorm:"column:provider_id" json:"provider_id"`
	Name         string    `gorm:"column:name;type:text" json:"name"`
	Description  string    `gorm:"column:description;type:text" json:"description"`
	Cuisine      string    `gorm:"column:cuisine;type:text" json:"cuisine"`
	Price        float64   `gorm:"column:price;type:numeric" json:"price"`
	Rating       float64   `gorm:"column:rating;type:numeric" json:"rating"`
	OrderCount   int64     `gorm:"column:order_count" json:"order_count"`
	IsVegetarian bool      `gorm:"column:is_vegetarian;default:false" json:"is_vegetarian"`
	IsVegan      bool      `gorm:"column:is_vegan;default:false" json:"is_vegan"`
	IsGlutenFree bool      `gorm:"column:is_gluten_free;default:false" json:"is_gluten_free"`
	Tags         string    `gorm:"column:tags;type:text" json:"tags"`
	Ingredients  string    `gorm:"column:ingredients;type:text" json:"ingredients"`
	City         string    `gorm:"column:city;type:text" json:"city"`
	MealTime     string    `gorm:"column:meal_time;type:text" json:"meal_time"`
	IsAvailable  bool      `gorm:"column:is_available;default:true" json:"is_available"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

func (MenuItem) TableName() string {
	return "menu_items"
}

// MealRating is one historical (user, meal, rating) triple.
type MealRating struct {
	ID     uint    `gorm:"primaryKey" json:"id"`
	UserID uint    `gorm:"column:user_id;not null" json:"user_id"`
	MealID string  `gorm:"column:meal_id;not null" json:"meal_id"`
	Rating float64 `gorm:"column:rating;not null" json:"rating"`
}

func (MealRating) TableName() string {
	return "user_ratings"
}

// Recommendation is the engine output: the underlying menu item plus the
// score, the explanation shown to the user, and the algorithm that
// produced it.
type Recommendation struct {
	MenuItem
	Score        float64 `json:"score"`
	Explanation  string  `json:"explanation"`
	Algorithm    string  `json:"algorithm"`
	RegionalNote string  `json:"regional_note,omitempty"`
}
