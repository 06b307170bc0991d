package repository

import carddomain "cardshop-backend/internal/card/domain"

// CardRepository defines the data access interface for catalog cards
type CardRepository interface {
	// Create persists a new card
	Create(card *carddomain.Card) error

	// FindByID finds a card by its ID
	FindByID(id string) (*carddomain.Card, error)

	// FindPage lists cards ordered by id with skip/take pagination and
	// an optional type filter
	FindPage(skip, take int, cardType *carddomain.CardType) ([]*carddomain.Card, error)
}
