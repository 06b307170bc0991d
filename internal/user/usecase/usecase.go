package usecase

import (
	"context"
	"errors"

	userdomain "cardshop-backend/internal/user/domain"
)

// ErrPhoneTaken is returned by Save when the phone number is already
// registered (unique-constraint violation in the store).
var ErrPhoneTaken = errors.New("phone number already registered")

// UserUsecase is the user directory consumed by the auth service and
// other modules. Lookups go through a read-through cache; the
// relational store stays authoritative.
type UserUsecase interface {
	// FindOne resolves a user by id or phone number. With forceRefresh
	// the cached entry is dropped before the lookup so the result
	// reflects the latest store state. Returns (nil, nil) when no user
	// matches; negative results are never cached.
	FindOne(ctx context.Context, key string, forceRefresh bool) (*userdomain.User, error)

	// Save hashes the password and persists a new user
	Save(ctx context.Context, phoneNumber, password string) (*userdomain.User, error)

	// Delete removes a user and invalidates its cache entries
	Delete(ctx context.Context, id string) error
}
