package repository

import (
	"errors"
	"time"

	carddomain "cardshop-backend/internal/card/domain"
	cartdomain "cardshop-backend/internal/cart/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// cartRepository implements CartRepository using GORM
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a new instance of cartRepository
func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{
		db: db,
	}
}

func (r *cartRepository) FindByUser(userID string) (*cartdomain.Cart, error) {
	var cart cartdomain.Cart
	err := r.db.Preload("Cards").Where("user_id = ?", userID).First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) AddCard(userID, cardID string) (*cartdomain.Cart, error) {
	var cart cartdomain.Cart

	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ?", userID).First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			cart = cartdomain.Cart{
				ID:        uuid.New().String(),
				UserID:    userID,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			}
			if err := tx.Create(&cart).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		return tx.Model(&cart).Association("Cards").Append(&carddomain.Card{ID: cardID})
	})
	if err != nil {
		return nil, err
	}

	return &cart, nil
}

func (r *cartRepository) RemoveCard(userID, cardID string) (*cartdomain.Cart, error) {
	var cart cartdomain.Cart
	err := r.db.Where("user_id = ?", userID).First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if err := r.db.Model(&cart).Association("Cards").Delete(&carddomain.Card{ID: cardID}); err != nil {
		return nil, err
	}

	return &cart, nil
}

func (r *cartRepository) Clear(cart *cartdomain.Cart) error {
	return r.db.Model(cart).Association("Cards").Clear()
}
