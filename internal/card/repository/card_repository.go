package repository

import (
	"errors"
	"time"

	carddomain "cardshop-backend/internal/card/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// cardRepository implements CardRepository using GORM
type cardRepository struct {
	db *gorm.DB
}

// NewCardRepository creates a new instance of cardRepository
func NewCardRepository(db *gorm.DB) CardRepository {
	return &cardRepository{
		db: db,
	}
}

func (r *cardRepository) Create(card *carddomain.Card) error {
	if card.ID == "" {
		card.ID = uuid.New().String()
	}
	card.CreatedAt = time.Now()
	card.UpdatedAt = time.Now()
	return r.db.Create(card).Error
}

func (r *cardRepository) FindByID(id string) (*carddomain.Card, error) {
	var card carddomain.Card
	err := r.db.Where("id = ?", id).First(&card).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &card, nil
}

func (r *cardRepository) FindPage(skip, take int, cardType *carddomain.CardType) ([]*carddomain.Card, error) {
	var cards []*carddomain.Card

	query := r.db.Order("id asc").Offset(skip).Limit(take)
	if cardType != nil {
		query = query.Where("type = ?", *cardType)
	}

	if err := query.Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}
