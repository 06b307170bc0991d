package delivery

import (
	"net/http"

	"cardshop-backend/internal/banner/repository"

	"github.com/gin-gonic/gin"
)

type BannerHandler struct {
	bannerRepo repository.BannerRepository
}

func NewBannerHandler(bannerRepo repository.BannerRepository) *BannerHandler {
	return &BannerHandler{
		bannerRepo: bannerRepo,
	}
}

func (h *BannerHandler) GetAll(c *gin.Context) {
	banners, err := h.bannerRepo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"banners": banners})
}
