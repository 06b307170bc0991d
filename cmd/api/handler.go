package api

import (
	authUsecase "cardshop-backend/internal/auth/usecase"
	bannerRepo "cardshop-backend/internal/banner/repository"
	cardUsecase "cardshop-backend/internal/card/usecase"
	cartUsecase "cardshop-backend/internal/cart/usecase"
	orderUsecase "cardshop-backend/internal/order/usecase"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase  authUsecase.AuthUsecase
	cardUsecase  cardUsecase.CardUsecase
	cartUsecase  cartUsecase.CartUsecase
	orderUsecase orderUsecase.OrderUsecase
	bannerRepo   bannerRepo.BannerRepository
}

func NewHandler(authUc authUsecase.AuthUsecase, cardUc cardUsecase.CardUsecase, cartUc cartUsecase.CartUsecase, orderUc orderUsecase.OrderUsecase, bannerRepository bannerRepo.BannerRepository) *Handler {
	return &Handler{
		authUsecase:  authUc,
		cardUsecase:  cardUc,
		cartUsecase:  cartUc,
		orderUsecase: orderUc,
		bannerRepo:   bannerRepository,
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
		}

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h)

	return r.Run(addr)
}
