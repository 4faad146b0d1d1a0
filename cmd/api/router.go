package api

import (
	"net/http"

	authDelivery "tourback/internal/auth/delivery"
	authUsecase "tourback/internal/auth/usecase"
	cartDelivery "tourback/internal/cart/delivery"
	cartUsecase "tourback/internal/cart/usecase"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, cartUc cartUsecase.CartUsecase) {
	authHandler := authDelivery.NewAuthHandler(authUc)
	cartHandler := cartDelivery.NewCartHandler(cartUc)

	// Health check (no auth required)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Auth routes
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.GET("/me", authDelivery.AuthMiddleware(authUc), authHandler.Me)

	// Cart routes (protected)
	protected := r.Group("/")
	protected.Use(authDelivery.AuthMiddleware(authUc))
	{
		protected.POST("/cart", cartHandler.AddItem)
		protected.GET("/cart", cartHandler.ListItems)
		protected.DELETE("/cart/:id", cartHandler.RemoveItem)
		protected.POST("/checkout/:id", cartHandler.Checkout)
	}
}
