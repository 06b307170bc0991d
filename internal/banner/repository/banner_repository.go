package repository

import (
	bannerdomain "cardshop-backend/internal/banner/domain"

	"gorm.io/gorm"
)

// BannerRepository defines the data access interface for banners
type BannerRepository interface {
	FindAll() ([]*bannerdomain.Banner, error)
}

// bannerRepository implements BannerRepository using GORM
type bannerRepository struct {
	db *gorm.DB
}

// NewBannerRepository creates a new instance of bannerRepository
func NewBannerRepository(db *gorm.DB) BannerRepository {
	return &bannerRepository{
		db: db,
	}
}

func (r *bannerRepository) FindAll() ([]*bannerdomain.Banner, error) {
	var banners []*bannerdomain.Banner
	if err := r.db.Find(&banners).Error; err != nil {
		return nil, err
	}
	return banners, nil
}
