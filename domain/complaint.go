package domain

import (
	"time"

	"gorm.io/datatypes"
)

const (
	ComplaintStatusOpen      = "open"
	ComplaintStatusEscalated = "escalated"
	ComplaintStatusResolved  = "resolved"
)

type Complaint struct {
	ID        string            `gorm:"primaryKey;column:id" json:"id"`
	UserID    uint              `gorm:"column:user_id;not null" json:"user_id"`
	OrderID   uint              `gorm:"column:order_id" json:"order_id"`
	Category  string            `gorm:"column:category" json:"category"`
	Subject   string            `gorm:"column:subject;type:text" json:"subject"`
	Status    string            `gorm:"column:status;default:open" json:"status"`
	Messages  datatypes.JSONMap `gorm:"column:messages;type:jsonb" json:"messages"`
	CreatedAt time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time         `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Complaint) TableName() string {
	return "complaints"
}
