package domain

import (
	"time"

	carddomain "cardshop-backend/internal/card/domain"
)

// Cart holds the cards a user intends to order. One cart per user.
type Cart struct {
	ID        string            `json:"id" gorm:"primaryKey"`
	UserID    string            `json:"user_id" gorm:"uniqueIndex;not null"`
	Cards     []carddomain.Card `json:"cards" gorm:"many2many:cart_cards"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}
