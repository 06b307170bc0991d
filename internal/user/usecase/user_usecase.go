package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	userdomain "cardshop-backend/internal/user/domain"
	"cardshop-backend/internal/user/repository"
	"cardshop-backend/pkg/cache"

	"gorm.io/gorm"
)

// cachedUser is the cache serialization of a user. The domain struct
// hides the password hash from JSON, but the cache must keep it or
// logins served from cache could never verify.
type cachedUser struct {
	ID          string    `json:"id"`
	PhoneNumber string    `json:"phone_number"`
	Password    string    `json:"password"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toCached(user *userdomain.User) *cachedUser {
	return &cachedUser{
		ID:          user.ID,
		PhoneNumber: user.PhoneNumber,
		Password:    user.Password,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

func (c *cachedUser) toDomain() *userdomain.User {
	return &userdomain.User{
		ID:          c.ID,
		PhoneNumber: c.PhoneNumber,
		Password:    c.Password,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// userUsecase implements UserUsecase interface
type userUsecase struct {
	userRepo repository.UserRepository
	cache    cache.Cache
	cacheTTL time.Duration
}

// NewUserUsecase creates a new instance of userUsecase
func NewUserUsecase(userRepo repository.UserRepository, c cache.Cache, cacheTTL time.Duration) UserUsecase {
	return &userUsecase{
		userRepo: userRepo,
		cache:    c,
		cacheTTL: cacheTTL,
	}
}

func (u *userUsecase) FindOne(ctx context.Context, key string, forceRefresh bool) (*userdomain.User, error) {
	if forceRefresh {
		if err := u.cache.Del(ctx, key); err != nil {
			log.Printf("failed to invalidate user cache for %s: %v", key, err)
		}
	}

	if data, err := u.cache.Get(ctx, key); err == nil {
		var cached cachedUser
		if err := json.Unmarshal(data, &cached); err != nil {
			// corrupt entry, fall through to the store
			log.Printf("failed to decode cached user for %s: %v", key, err)
		} else {
			return cached.toDomain(), nil
		}
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		log.Printf("user cache lookup failed for %s: %v", key, err)
	}

	user, err := u.userRepo.FindByIDOrPhone(key)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	if data, err := json.Marshal(toCached(user)); err == nil {
		if err := u.cache.Set(ctx, key, data, u.cacheTTL); err != nil {
			log.Printf("failed to cache user %s: %v", key, err)
		}
	}

	return user, nil
}

func (u *userUsecase) Save(ctx context.Context, phoneNumber, password string) (*userdomain.User, error) {
	hashedPassword, err := repository.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &userdomain.User{
		PhoneNumber: phoneNumber,
		Password:    hashedPassword,
	}

	if err := u.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrPhoneTaken
		}
		return nil, err
	}

	return user, nil
}

func (u *userUsecase) Delete(ctx context.Context, id string) error {
	// Look the user up first so the phone-number cache entry can be
	// dropped along with the id entry.
	user, err := u.FindOne(ctx, id, false)
	if err != nil {
		return err
	}

	if err := u.userRepo.Delete(id); err != nil {
		return err
	}

	if err := u.cache.Del(ctx, id); err != nil {
		log.Printf("failed to invalidate user cache for %s: %v", id, err)
	}
	if user != nil {
		if err := u.cache.Del(ctx, user.PhoneNumber); err != nil {
			log.Printf("failed to invalidate user cache for %s: %v", user.PhoneNumber, err)
		}
	}

	return nil
}
