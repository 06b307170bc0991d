package usecase

import (
	"errors"

	carddomain "cardshop-backend/internal/card/domain"
	"cardshop-backend/internal/cart/repository"
)

var (
	// ErrCartNotFound is returned when the user has no cart yet
	ErrCartNotFound = errors.New("cart not found")

	// ErrCartEmpty is returned by Clear when there is nothing to remove
	ErrCartEmpty = errors.New("cart is empty")
)

// CartUsecase defines the interface for cart use cases
type CartUsecase interface {
	GetAll(userID string) ([]carddomain.Card, error)
	Add(userID, cardID string) (cartID string, err error)
	Remove(userID, cardID string) (cartID string, err error)
	Clear(userID string) error
}

// cartUsecase implements CartUsecase interface
type cartUsecase struct {
	cartRepo repository.CartRepository
}

// NewCartUsecase creates a new instance of cartUsecase
func NewCartUsecase(cartRepo repository.CartRepository) CartUsecase {
	return &cartUsecase{
		cartRepo: cartRepo,
	}
}

func (u *cartUsecase) GetAll(userID string) ([]carddomain.Card, error) {
	cart, err := u.cartRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return []carddomain.Card{}, nil
	}
	return cart.Cards, nil
}

func (u *cartUsecase) Add(userID, cardID string) (string, error) {
	cart, err := u.cartRepo.AddCard(userID, cardID)
	if err != nil {
		return "", err
	}
	return cart.ID, nil
}

func (u *cartUsecase) Remove(userID, cardID string) (string, error) {
	cart, err := u.cartRepo.RemoveCard(userID, cardID)
	if err != nil {
		return "", err
	}
	if cart == nil {
		return "", ErrCartNotFound
	}
	return cart.ID, nil
}

func (u *cartUsecase) Clear(userID string) error {
	cart, err := u.cartRepo.FindByUser(userID)
	if err != nil {
		return err
	}
	if cart == nil {
		return ErrCartNotFound
	}
	if len(cart.Cards) == 0 {
		return ErrCartEmpty
	}
	return u.cartRepo.Clear(cart)
}
