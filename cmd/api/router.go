package api

import (
	"net/http"

	authDelivery "cardshop-backend/internal/auth/delivery"
	bannerDelivery "cardshop-backend/internal/banner/delivery"
	cardDelivery "cardshop-backend/internal/card/delivery"
	cartDelivery "cardshop-backend/internal/cart/delivery"
	orderDelivery "cardshop-backend/internal/order/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *Handler) {
	authHandler := authDelivery.NewAuthHandler(h.authUsecase)
	cardHandler := cardDelivery.NewCardHandler(h.cardUsecase)
	cartHandler := cartDelivery.NewCartHandler(h.cartUsecase)
	orderHandler := orderDelivery.NewOrderHandler(h.orderUsecase)
	bannerHandler := bannerDelivery.NewBannerHandler(h.bannerRepo)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.Refresh)
			auth.POST("/logout", authHandler.Logout)
		}

		// Catalog routes (listing is public, creation is protected)
		cards := api.Group("/cards")
		{
			cards.GET("", cardHandler.List)
			cards.GET("/:id", cardHandler.GetByID)
			cards.POST("", authDelivery.AuthMiddleware(h.authUsecase), cardHandler.Create)
		}

		// Banner routes (public)
		api.GET("/banners", bannerHandler.GetAll)

		// Cart routes (protected)
		cart := api.Group("/cart")
		cart.Use(authDelivery.AuthMiddleware(h.authUsecase))
		{
			cart.GET("", cartHandler.GetAll)
			cart.POST("/:cardId", cartHandler.Add)
			cart.DELETE("/:cardId", cartHandler.Remove)
			cart.DELETE("", cartHandler.Clear)
		}

		// Order routes (protected)
		orders := api.Group("/orders")
		orders.Use(authDelivery.AuthMiddleware(h.authUsecase))
		{
			orders.GET("", orderHandler.GetAll)
			orders.POST("", orderHandler.Create)
			orders.PATCH("/:id/cancel", orderHandler.Cancel)
		}
	}
}
