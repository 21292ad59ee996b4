package domain

import (
	"time"

	"gorm.io/datatypes"
)

const (
	InteractionView    = "view"
	InteractionLike    = "like"
	InteractionDislike = "dislike"
)

// InteractionEvent is one piece of recommendation feedback. Append-only:
// created by the feedback endpoint and optionally replayed to seed the
// exploration statistics on cold start.
type InteractionEvent struct {
	ID        string            `gorm:"primaryKey;column:id" json:"id"`
	UserID    uint              `gorm:"column:user_id;not null" json:"user_id"`
	MealID    string            `gorm:"column:meal_id;not null" json:"meal_id"`
	Action    string            `gorm:"column:action;not null" json:"action"`
	Rating    *float64          `gorm:"column:rating" json:"rating,omitempty"`
	Context   datatypes.JSONMap `gorm:"column:context;type:jsonb" json:"context"`
	CreatedAt time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (InteractionEvent) TableName() string {
	return "user_interactions"
}
