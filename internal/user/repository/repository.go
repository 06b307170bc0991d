package repository

import userdomain "cardshop-backend/internal/user/domain"

// UserRepository defines the data access interface for users
type UserRepository interface {
	// Create persists a new user; the store's unique constraint on
	// phone_number is the final guarantee against duplicates
	Create(user *userdomain.User) error

	// FindByIDOrPhone finds a user whose id or phone number equals key
	FindByIDOrPhone(key string) (*userdomain.User, error)

	// Delete removes a user by id
	Delete(id string) error
}
