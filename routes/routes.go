package routes

import (
	"time"

	"bazaar-backend/handlers"
	"bazaar-backend/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	productHandler := &handlers.ProductHandler{DB: db}
	cartHandler := &handlers.CartHandler{DB: db}

	// Every endpoint is anonymous, so throttling by client IP is the only
	// abuse control.
	limiter := middleware.NewRateLimiter(120, time.Minute)

	api := r.Group("/api")
	api.Use(limiter.Middleware())
	{
		// Catalog
		api.GET("/products", productHandler.GetProducts)
		api.GET("/products/:slug", productHandler.GetProductBySlug)
		api.POST("/products/seed", productHandler.SeedProducts)

		// Cart
		api.GET("/cart/:sessionId", cartHandler.GetCart)
		api.GET("/cart/:sessionId/summary", cartHandler.GetCartSummary)
		api.POST("/cart", cartHandler.AddToCart)
		api.PATCH("/cart/:id", cartHandler.UpdateCartItem)
		api.DELETE("/cart/:id", cartHandler.RemoveFromCart)
		api.DELETE("/cart/session/:sessionId", cartHandler.ClearCart)
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
