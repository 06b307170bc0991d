package repository

import authdomain "cardshop-backend/internal/auth/domain"

// TokenRepository defines the data access interface for refresh-token
// session records
type TokenRepository interface {
	// UpsertForDevice persists token as the single live record for its
	// (user_id, device_key) pair. An existing record for the pair is
	// rotated in place, keyed by its current token value, so a
	// concurrent rotation cannot create a duplicate for the device.
	UpsertForDevice(token *authdomain.RefreshToken) error

	// FindByToken finds a record by its opaque token value
	FindByToken(token string) (*authdomain.RefreshToken, error)

	// DeleteByToken atomically removes and returns the record.
	// Returns (nil, nil) when the token is unknown.
	DeleteByToken(token string) (*authdomain.RefreshToken, error)
}
