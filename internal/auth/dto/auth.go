package dto

import (
	"time"

	authdomain "cardshop-backend/internal/auth/domain"
)

type RegisterRequest struct {
	PhoneNumber    string `json:"phone_number" binding:"required,e164"`
	Password       string `json:"password" binding:"required,min=6"`
	PasswordRepeat string `json:"password_repeat" binding:"required,eqfield=Password"`
}

type LoginRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required,e164"`
	Password    string `json:"password" binding:"required,min=6"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// TokenPair bundles a freshly minted access token with its session record.
type TokenPair struct {
	AccessToken  string
	RefreshToken *authdomain.RefreshToken
}

// TokenResponse is the public shape of a token pair.
type TokenResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

func NewTokenResponse(pair *TokenPair) *TokenResponse {
	return &TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken.Token,
		ExpiresAt:    pair.RefreshToken.ExpiresAt,
	}
}
