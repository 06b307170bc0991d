package main

import (
	"log"

	api "cardshop-backend/cmd/api"
	authdomain "cardshop-backend/internal/auth/domain"
	authRepo "cardshop-backend/internal/auth/repository"
	authUsecase "cardshop-backend/internal/auth/usecase"
	bannerdomain "cardshop-backend/internal/banner/domain"
	bannerRepo "cardshop-backend/internal/banner/repository"
	carddomain "cardshop-backend/internal/card/domain"
	cardRepo "cardshop-backend/internal/card/repository"
	cardUsecase "cardshop-backend/internal/card/usecase"
	cartdomain "cardshop-backend/internal/cart/domain"
	cartRepo "cardshop-backend/internal/cart/repository"
	cartUsecase "cardshop-backend/internal/cart/usecase"
	orderdomain "cardshop-backend/internal/order/domain"
	orderRepo "cardshop-backend/internal/order/repository"
	orderUsecase "cardshop-backend/internal/order/usecase"
	userdomain "cardshop-backend/internal/user/domain"
	userRepo "cardshop-backend/internal/user/repository"
	userUsecase "cardshop-backend/internal/user/usecase"
	"cardshop-backend/pkg/cache"
	"cardshop-backend/pkg/config"
	"cardshop-backend/pkg/database"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&userdomain.User{}, &authdomain.RefreshToken{}, &carddomain.Card{}, &cartdomain.Cart{}, &orderdomain.Order{}, &bannerdomain.Banner{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize cache: Redis when configured, in-process otherwise
	var userCache cache.Cache
	if cfg.RedisAddr != "" {
		userCache, err = cache.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			log.Fatal("Failed to connect to redis:", err)
		}
	} else {
		log.Printf("REDIS_ADDR not configured, using in-process user cache")
		userCache = cache.NewMemoryCache()
	}

	// Initialize repositories (dependency injection)
	userRepository := userRepo.NewUserRepository(db)
	tokenRepository := authRepo.NewTokenRepository(db)
	cardRepository := cardRepo.NewCardRepository(db)
	cartRepository := cartRepo.NewCartRepository(db)
	orderRepository := orderRepo.NewOrderRepository(db)
	bannerRepository := bannerRepo.NewBannerRepository(db)

	// Initialize use cases (dependency injection)
	userUsecaseInstance := userUsecase.NewUserUsecase(userRepository, userCache, cfg.UserCacheTTL)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userUsecaseInstance, tokenRepository, cfg)
	cardUsecaseInstance := cardUsecase.NewCardUsecase(cardRepository)
	cartUsecaseInstance := cartUsecase.NewCartUsecase(cartRepository)
	orderUsecaseInstance := orderUsecase.NewOrderUsecase(orderRepository, cartUsecaseInstance)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, cardUsecaseInstance, cartUsecaseInstance, orderUsecaseInstance, bannerRepository)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
