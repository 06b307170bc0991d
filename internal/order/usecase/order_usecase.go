package usecase

import (
	"errors"

	cartusecase "cardshop-backend/internal/cart/usecase"
	orderdomain "cardshop-backend/internal/order/domain"
	"cardshop-backend/internal/order/repository"
)

var (
	// ErrOrderNotFound is returned when the order does not exist or
	// belongs to another user
	ErrOrderNotFound = errors.New("order not found")

	// ErrOrderInactive is returned when cancelling an order that is
	// already cancelled
	ErrOrderInactive = errors.New("order is not active")

	// ErrEmptyCart is returned when creating an order from an empty cart
	ErrEmptyCart = errors.New("cart is empty")
)

// OrderUsecase defines the interface for order use cases
type OrderUsecase interface {
	GetAll(userID string) ([]*orderdomain.Order, error)
	Create(userID string) (*orderdomain.Order, error)
	Cancel(userID, orderID string) (*orderdomain.Order, error)
}

// orderUsecase implements OrderUsecase interface
type orderUsecase struct {
	orderRepo repository.OrderRepository
	cart      cartusecase.CartUsecase
}

// NewOrderUsecase creates a new instance of orderUsecase
func NewOrderUsecase(orderRepo repository.OrderRepository, cart cartusecase.CartUsecase) OrderUsecase {
	return &orderUsecase{
		orderRepo: orderRepo,
		cart:      cart,
	}
}

func (u *orderUsecase) GetAll(userID string) ([]*orderdomain.Order, error) {
	return u.orderRepo.FindByUser(userID)
}

func (u *orderUsecase) Create(userID string) (*orderdomain.Order, error) {
	cards, err := u.cart.GetAll(userID)
	if err != nil {
		return nil, err
	}
	if len(cards) == 0 {
		return nil, ErrEmptyCart
	}

	order := &orderdomain.Order{
		UserID: userID,
		Cards:  cards,
	}
	if err := u.orderRepo.Create(order); err != nil {
		return nil, err
	}

	if err := u.cart.Clear(userID); err != nil {
		return nil, err
	}

	return order, nil
}

func (u *orderUsecase) Cancel(userID, orderID string) (*orderdomain.Order, error) {
	order, err := u.orderRepo.FindByIDAndUser(orderID, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if !order.IsActive {
		return nil, ErrOrderInactive
	}

	if err := u.orderRepo.Deactivate(order); err != nil {
		return nil, err
	}

	return order, nil
}
