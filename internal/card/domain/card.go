package domain

import (
	"time"

	"github.com/lib/pq"
)

// CardType categorizes catalog cards
type CardType string

const (
	CardTypeRoll    CardType = "roll"
	CardTypeSet     CardType = "set"
	CardTypeDrink   CardType = "drink"
	CardTypeDessert CardType = "dessert"
)

type Card struct {
	ID          string         `json:"id" gorm:"primaryKey"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description"`
	ImageURL    string         `json:"image_url"`
	Type        CardType       `json:"type" gorm:"index"`
	Price       *int           `json:"price,omitempty"`
	Weight      *int           `json:"weight,omitempty"`
	Kcal        *int           `json:"kcal,omitempty"`
	Components  pq.StringArray `json:"components" gorm:"type:text[]"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
