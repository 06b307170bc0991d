package repository

import orderdomain "cardshop-backend/internal/order/domain"

// OrderRepository defines the data access interface for orders
type OrderRepository interface {
	// Create persists a new order with its cards attached
	Create(order *orderdomain.Order) error

	// FindByUser lists a user's orders with their cards preloaded
	FindByUser(userID string) ([]*orderdomain.Order, error)

	// FindByIDAndUser finds one order owned by the user
	FindByIDAndUser(orderID, userID string) (*orderdomain.Order, error)

	// Deactivate marks an order inactive
	Deactivate(order *orderdomain.Order) error
}
