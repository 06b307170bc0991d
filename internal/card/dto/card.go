package dto

import carddomain "cardshop-backend/internal/card/domain"

type CreateCardRequest struct {
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description"`
	ImageURL    string              `json:"image_url" binding:"omitempty,url"`
	Type        carddomain.CardType `json:"type" binding:"required"`
	Price       *int                `json:"price"`
	Weight      *int                `json:"weight"`
	Kcal        *int                `json:"kcal"`
	Components  []string            `json:"components" binding:"min=1"`
}

type CardsResponse struct {
	Cards  []*carddomain.Card `json:"cards"`
	Page   int                `json:"page"`
	Offset int                `json:"offset"`
}
