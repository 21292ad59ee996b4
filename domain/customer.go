package domain

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

type Customer struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FullName   string    `gorm:"column:full_name;type:text" json:"full_name"`
	Email      string    `gorm:"column:email;uniqueIndex;not null" json:"email"`
	Password   string    `gorm:"column:password;not null" json:"password,omitempty"`
	Phone      string    `gorm:"column:phone;type:text" json:"phone"`
	City       string    `gorm:"column:city;type:text" json:"city"`
	Role       string    `gorm:"column:role;default:customer" json:"role"`
	IsVerified bool      `gorm:"column:is_verified;default:false" json:"is_verified"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Customer) TableName() string {
	return "customers"
}

// PreferenceProfile is the stated taste profile the recommender scores
// against. Supplied per request; the engine never mutates it.
type PreferenceProfile struct {
	FavoriteCuisines     []string          `json:"favorite_cuisines"`
	DietaryRestrictions  []string          `json:"dietary_restrictions"`
	PreferredIngredients []string          `json:"preferred_ingredients"`
	DislikedIngredients  []string          `json:"disliked_ingredients"`
	HealthGoals          datatypes.JSONMap `json:"health_goals"`
	Language             string            `json:"language"`
}

// CustomerPreferences is the persisted form of PreferenceProfile.
type CustomerPreferences struct {
	UserID               uint              `gorm:"column:user_id;primaryKey" json:"user_id"`
	FavoriteCuisines     datatypes.JSON    `gorm:"column:favorite_cuisines;type:jsonb" json:"favorite_cuisines"`
	DietaryRestrictions  datatypes.JSON    `gorm:"column:dietary_restrictions;type:jsonb" json:"dietary_restrictions"`
	PreferredIngredients datatypes.JSON    `gorm:"column:preferred_ingredients;type:jsonb" json:"preferred_ingredients"`
	DislikedIngredients  datatypes.JSON    `gorm:"column:disliked_ingredients;type:jsonb" json:"disliked_ingredients"`
	HealthGoals          datatypes.JSONMap `gorm:"column:health_goals;type:jsonb" json:"health_goals"`
	Language             string            `gorm:"column:language;default:en" json:"language"`
	UpdatedAt            time.Time         `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (CustomerPreferences) TableName() string {
	return "customer_preferences"
}

// Profile converts the stored row into the per-request profile. Corrupt
// columns decode to empty sets rather than failing the request.
func (p CustomerPreferences) Profile() PreferenceProfile {
	profile := PreferenceProfile{
		HealthGoals: p.HealthGoals,
		Language:    p.Language,
	}
	_ = json.Unmarshal(p.FavoriteCuisines, &profile.FavoriteCuisines)
	_ = json.Unmarshal(p.DietaryRestrictions, &profile.DietaryRestrictions)
	_ = json.Unmarshal(p.PreferredIngredients, &profile.PreferredIngredients)
	_ = json.Unmarshal(p.DislikedIngredients, &profile.DislikedIngredients)
	if profile.Language == "" {
		profile.Language = "en"
	}
	return profile
}

// PreferencesRow builds the persisted form of a profile for a user.
func PreferencesRow(userID uint, profile PreferenceProfile) CustomerPreferences {
	marshal := func(v []string) datatypes.JSON {
		if v == nil {
			v = []string{}
		}
		raw, _ := json.Marshal(v)
		return raw
	}
	return CustomerPreferences{
		UserID:               userID,
		FavoriteCuisines:     marshal(profile.FavoriteCuisines),
		DietaryRestrictions:  marshal(profile.DietaryRestrictions),
		PreferredIngredients: marshal(profile.PreferredIngredients),
		DislikedIngredients:  marshal(profile.DislikedIngredients),
		HealthGoals:          profile.HealthGoals,
		Language:             profile.Language,
	}
}
