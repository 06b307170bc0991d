package domain

import (
	"time"

	carddomain "cardshop-backend/internal/card/domain"
)

type Order struct {
	ID        string            `json:"id" gorm:"primaryKey"`
	UserID    string            `json:"user_id" gorm:"index;not null"`
	IsActive  bool              `json:"is_active" gorm:"default:true"`
	Cards     []carddomain.Card `json:"cards" gorm:"many2many:order_cards"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}
