package usecase

import (
	carddomain "cardshop-backend/internal/card/domain"
	"cardshop-backend/internal/card/repository"
)

// CardUsecase defines the interface for catalog use cases
type CardUsecase interface {
	Create(card *carddomain.Card) error
	GetAllOrByType(page, offset int, cardType *carddomain.CardType) ([]*carddomain.Card, error)
	GetOneByID(id string) (*carddomain.Card, error)
}

// cardUsecase implements CardUsecase interface
type cardUsecase struct {
	cardRepo repository.CardRepository
}

// NewCardUsecase creates a new instance of cardUsecase
func NewCardUsecase(cardRepo repository.CardRepository) CardUsecase {
	return &cardUsecase{
		cardRepo: cardRepo,
	}
}

func (u *cardUsecase) Create(card *carddomain.Card) error {
	return u.cardRepo.Create(card)
}

func (u *cardUsecase) GetAllOrByType(page, offset int, cardType *carddomain.CardType) ([]*carddomain.Card, error) {
	if page < 1 {
		page = 1
	}
	if offset <= 0 {
		offset = 10
	}
	skip := (page - 1) * offset

	return u.cardRepo.FindPage(skip, offset, cardType)
}

func (u *cardUsecase) GetOneByID(id string) (*carddomain.Card, error) {
	return u.cardRepo.FindByID(id)
}
