package repository

import (
	"errors"

	authdomain "cardshop-backend/internal/auth/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// tokenRepository implements TokenRepository using GORM
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates a new instance of tokenRepository
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{
		db: db,
	}
}

func (r *tokenRepository) UpsertForDevice(token *authdomain.RefreshToken) error {
	// Use a transaction to ensure atomicity of the find-then-rotate step
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing authdomain.RefreshToken
		err := tx.Where("user_id = ? AND device_key = ?", token.UserID, token.DeviceKey).
			First(&existing).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return tx.Create(token).Error
			}
			return err
		}

		// Rotate the existing record in place, keyed by its current
		// token value.
		return tx.Model(&authdomain.RefreshToken{}).
			Where("token = ?", existing.Token).
			Updates(map[string]interface{}{
				"token":      token.Token,
				"expires_at": token.ExpiresAt,
			}).Error
	})
}

func (r *tokenRepository) FindByToken(token string) (*authdomain.RefreshToken, error) {
	var refreshToken authdomain.RefreshToken
	err := r.db.Where("token = ?", token).First(&refreshToken).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &refreshToken, nil
}

func (r *tokenRepository) DeleteByToken(token string) (*authdomain.RefreshToken, error) {
	var deleted []authdomain.RefreshToken
	result := r.db.Clauses(clause.Returning{}).Where("token = ?", token).Delete(&deleted)
	if result.Error != nil {
		return nil, result.Error
	}
	if len(deleted) == 0 {
		return nil, nil
	}
	return &deleted[0], nil
}
