package repository

import cartdomain "cardshop-backend/internal/cart/domain"

// CartRepository defines the data access interface for carts
type CartRepository interface {
	// FindByUser returns the user's cart with its cards preloaded, or
	// nil when the user has no cart yet
	FindByUser(userID string) (*cartdomain.Cart, error)

	// AddCard attaches a card to the user's cart, creating the cart on
	// first use
	AddCard(userID, cardID string) (*cartdomain.Cart, error)

	// RemoveCard detaches a card from the user's cart
	RemoveCard(userID, cardID string) (*cartdomain.Cart, error)

	// Clear detaches every card from the cart
	Clear(cart *cartdomain.Cart) error
}
