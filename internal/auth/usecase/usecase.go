package usecase

import (
	"context"
	"errors"

	authdto "cardshop-backend/internal/auth/dto"
	userdomain "cardshop-backend/internal/user/domain"
)

var (
	// ErrUserExists is returned by Register for a phone number that is
	// already taken.
	ErrUserExists = errors.New("user already exists")

	// ErrInvalidCredentials covers both unknown phone number and wrong
	// password; login never distinguishes the two.
	ErrInvalidCredentials = errors.New("invalid phone or password")

	// ErrInvalidToken is returned for an unknown, malformed or consumed
	// token.
	ErrInvalidToken = errors.New("invalid token")

	// ErrSessionExpired is returned when a presented refresh token has
	// passed its expiry. The token is consumed regardless.
	ErrSessionExpired = errors.New("session expired")
)

// Claims is what an access token asserts about its bearer.
type Claims struct {
	UserID      string
	PhoneNumber string
}

// AuthUsecase drives the session lifecycle: register, login,
// refresh-token rotation and logout, plus access token verification
// for the protected modules.
type AuthUsecase interface {
	Register(ctx context.Context, phoneNumber, password string) (*userdomain.User, error)
	Login(ctx context.Context, phoneNumber, password, deviceKey string) (*authdto.TokenPair, error)
	RefreshTokens(ctx context.Context, refreshToken, deviceKey string) (*authdto.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error

	// ValidateToken checks signature and expiry of an access token and
	// returns its claims. Purely stateless; no store round-trip.
	ValidateToken(tokenString string) (*Claims, error)
}
