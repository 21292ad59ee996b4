package domain

import "time"

type Order struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"column:user_id;not null" json:"user_id"`
	MealID       string    `gorm:"column:meal_id;not null" json:"meal_id"`
	ProviderID   string    `gorm:"column:provider_id" json:"provider_id"`
	Quantity     int       `gorm:"column:quantity" json:"quantity"`
	PriceEach    float64   `gorm:"column:price_each;type:numeric" json:"price_each"`
	Subtotal     float64   `gorm:"column:subtotal;type:numeric" json:"subtotal"`
	OrderStatus  string    `gorm:"column:order_status" json:"order_status"`
	DeliveryCity string    `gorm:"column:delivery_city" json:"delivery_city"`
	MealTime     string    `gorm:"column:meal_time" json:"meal_time"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Order) TableName() string {
	return "orders"
}
