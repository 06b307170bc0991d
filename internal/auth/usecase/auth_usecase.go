package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	authdomain "cardshop-backend/internal/auth/domain"
	authdto "cardshop-backend/internal/auth/dto"
	"cardshop-backend/internal/auth/repository"
	userdomain "cardshop-backend/internal/user/domain"
	userrepo "cardshop-backend/internal/user/repository"
	userusecase "cardshop-backend/internal/user/usecase"
	"cardshop-backend/pkg/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	users     userusecase.UserUsecase
	tokenRepo repository.TokenRepository
	config    *config.Config
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(users userusecase.UserUsecase, tokenRepo repository.TokenRepository, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		users:     users,
		tokenRepo: tokenRepo,
		config:    cfg,
	}
}

func (u *authUsecase) Register(ctx context.Context, phoneNumber, password string) (*userdomain.User, error) {
	existing, err := u.users.FindOne(ctx, phoneNumber, false)
	if err != nil {
		// Fail open on the lookup: the unique constraint in the store
		// is the final guarantee against duplicates.
		log.Printf("user lookup failed during register for %s: %v", phoneNumber, err)
		existing = nil
	}

	if existing != nil {
		return nil, ErrUserExists
	}

	user, err := u.users.Save(ctx, phoneNumber, password)
	if err != nil {
		if errors.Is(err, userusecase.ErrPhoneTaken) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	return user, nil
}

func (u *authUsecase) Login(ctx context.Context, phoneNumber, password, deviceKey string) (*authdto.TokenPair, error) {
	user, err := u.users.FindOne(ctx, phoneNumber, false)
	if err != nil {
		log.Printf("user lookup failed during login for %s: %v", phoneNumber, err)
		user = nil
	}

	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if !userrepo.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	return u.generateTokens(user, deviceKey)
}

func (u *authUsecase) RefreshTokens(ctx context.Context, refreshToken, deviceKey string) (*authdto.TokenPair, error) {
	// Consume the presented token first. A refresh token is single-use
	// no matter how the rest of this call turns out.
	stored, err := u.tokenRepo.DeleteByToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, ErrInvalidToken
	}

	if stored.ExpiresAt.Before(time.Now()) {
		return nil, ErrSessionExpired
	}

	user, err := u.users.FindOne(ctx, stored.UserID, false)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidToken
	}

	return u.generateTokens(user, deviceKey)
}

func (u *authUsecase) Logout(ctx context.Context, refreshToken string) error {
	deleted, err := u.tokenRepo.DeleteByToken(refreshToken)
	if err != nil {
		return err
	}
	if deleted == nil {
		return ErrInvalidToken
	}
	return nil
}

func (u *authUsecase) generateTokens(user *userdomain.User, deviceKey string) (*authdto.TokenPair, error) {
	accessToken, err := u.generateAccessToken(user)
	if err != nil {
		return nil, err
	}

	refreshToken := &authdomain.RefreshToken{
		Token:     uuid.New().String(),
		UserID:    user.ID,
		DeviceKey: deviceKey,
		ExpiresAt: time.Now().Add(u.config.JWTRefreshExpiry),
	}
	if err := u.tokenRepo.UpsertForDevice(refreshToken); err != nil {
		return nil, err
	}

	return &authdto.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (u *authUsecase) generateAccessToken(user *userdomain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":      user.ID,
		"phone_number": user.PhoneNumber,
		"exp":          time.Now().Add(u.config.JWTAccessExpiry).Unix(),
		"iat":          time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.JWTSecret))
}

func (u *authUsecase) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(u.config.JWTSecret), nil
	})

	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	phoneNumber, _ := claims["phone_number"].(string)

	return &Claims{
		UserID:      userID,
		PhoneNumber: phoneNumber,
	}, nil
}
