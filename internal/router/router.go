// internal/router/router.go
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/boomapp/boom-backend/internal/config"
	"github.com/boomapp/boom-backend/internal/handlers"
	"github.com/boomapp/boom-backend/internal/metrics"
	"github.com/boomapp/boom-backend/internal/middleware"
	"github.com/boomapp/boom-backend/internal/services"
	"github.com/boomapp/boom-backend/internal/session"
	"github.com/boomapp/boom-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Session registry shared by all stateful handlers
	manager := session.NewManager(
		cfg.Engagement.EnergyMax,
		time.Duration(cfg.Session.IdleTTLMinutes)*time.Minute,
		time.Duration(cfg.Session.SweepMinutes)*time.Minute,
	)

	registry := metrics.NewRegistry()

	// Initialize services
	catalogService := services.NewCatalogService(db)
	checkoutService := services.NewCheckoutService(db, cfg)
	storageService, _ := services.NewStorageService(cfg)

	points := session.PointsTable{
		session.ActionLike:    cfg.Engagement.LikePoints,
		session.ActionComment: cfg.Engagement.CommentPoints,
		session.ActionShare:   cfg.Engagement.SharePoints,
		session.ActionPost:    cfg.Engagement.PostPoints,
	}

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(manager, cfg, registry)
	catalogHandler := handlers.NewCatalogHandler(catalogService, storageService)
	cartHandler := handlers.NewCartHandler(catalogService, registry)
	favoritesHandler := handlers.NewFavoritesHandler(catalogService, registry)
	energyHandler := handlers.NewEnergyHandler(points, registry)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, registry)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"version":  "1.0.0",
			"sessions": manager.Len(),
		})
	})

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(registry.Handler()))

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Session routes
		sessions := v1.Group("/sessions")
		{
			sessions.POST("", middleware.SessionRateLimit(), sessionHandler.CreateSession)
			sessions.GET("/me", middleware.SessionRequired(manager), sessionHandler.GetSession)
			sessions.DELETE("/me", middleware.SessionRequired(manager), sessionHandler.EndSession)
		}

		// Catalog routes
		products := v1.Group("/products")
		{
			products.GET("", catalogHandler.GetProducts)
			products.GET("/popular", catalogHandler.GetPopularProducts)
			products.GET("/:id", catalogHandler.GetProduct)

			// Admin routes
			admin := products.Group("")
			admin.Use(middleware.AdminRequired(cfg))
			{
				admin.POST("", catalogHandler.CreateProduct)
				admin.PUT("/:id", catalogHandler.UpdateProduct)
				admin.DELETE("/:id", catalogHandler.DeleteProduct)
				admin.POST("/upload-images", middleware.UploadRateLimit(), catalogHandler.UploadProductImages)
			}
		}

		// Session-scoped routes
		protected := v1.Group("")
		protected.Use(middleware.SessionRequired(manager))
		{
			cart := protected.Group("/cart")
			{
				cart.GET("", cartHandler.GetCart)
				cart.DELETE("", cartHandler.ClearCart)
				cart.POST("/items", cartHandler.AddItem)
				cart.PUT("/items/:productId", cartHandler.UpdateItem)
				cart.DELETE("/items/:productId", cartHandler.RemoveItem)
			}

			favorites := protected.Group("/favorites")
			{
				favorites.GET("", favoritesHandler.GetFavorites)
				favorites.POST("/toggle", favoritesHandler.ToggleFavorite)
			}

			feedback := protected.Group("/feedback")
			{
				feedback.GET("", cartHandler.GetFeedback)
				feedback.DELETE("", cartHandler.DismissFeedback)
			}

			energy := protected.Group("/energy")
			{
				energy.GET("", energyHandler.GetEnergy)
				energy.POST("/actions", middleware.ActionRateLimit(), energyHandler.PerformAction)
			}

			protected.POST("/checkout", checkoutHandler.CreateCheckout)
			protected.POST("/checkout/confirm", checkoutHandler.ConfirmPayment)
			protected.GET("/orders", checkoutHandler.GetOrders)
		}
	}

	// Static file serving (for development)
	if cfg.Environment == "development" {
		r.Static("/uploads", "./uploads")
	}

	return r
}
