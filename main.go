package main

import (
	"log"

	api "tourback/cmd/api"
	authdomain "tourback/internal/auth/domain"
	authRepo "tourback/internal/auth/repository"
	authUsecase "tourback/internal/auth/usecase"
	cartdomain "tourback/internal/cart/domain"
	cartRepo "tourback/internal/cart/repository"
	cartUsecase "tourback/internal/cart/usecase"
	"tourback/pkg/config"
	"tourback/pkg/database"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration:", err)
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &cartdomain.CartItem{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	cartRepository := cartRepo.NewCartRepository(db)

	// Initialize use cases
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, cfg)
	cartUsecaseInstance := cartUsecase.NewCartUsecase(cartRepository)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, cartUsecaseInstance, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
