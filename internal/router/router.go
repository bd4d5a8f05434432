package router

import (
	"github.com/gin-gonic/gin"

	"github.com/kaizensushi/storefront-backend/config"
	"github.com/kaizensushi/storefront-backend/internal/app/controller"
	"github.com/kaizensushi/storefront-backend/internal/middleware"
)

type Router struct {
	catalogController *controller.CatalogController
	builderController *controller.BuilderController
	cartController    *controller.CartController
	orderController   *controller.OrderController
	prefsController   *controller.PrefsController
	assetsController  *controller.AssetsController
	eventsController  *controller.EventsController
	config            *config.Config
}

func NewRouter(
	catalogController *controller.CatalogController,
	builderController *controller.BuilderController,
	cartController *controller.CartController,
	orderController *controller.OrderController,
	prefsController *controller.PrefsController,
	assetsController *controller.AssetsController,
	eventsController *controller.EventsController,
	cfg *config.Config,
) *Router {
	return &Router{
		catalogController: catalogController,
		builderController: builderController,
		cartController:    cartController,
		orderController:   orderController,
		prefsController:   prefsController,
		assetsController:  assetsController,
		eventsController:  eventsController,
		config:            cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "KAIZEN Sushi API is running",
		})
	})

	// Serve the PWA shell and bundled catalog/icons
	router.Static("/assets", r.config.Assets.Dir)

	v1 := router.Group("/api/v1")
	{
		catalog := v1.Group("/catalog")
		{
			catalog.GET("", r.catalogController.GetCatalog)
			catalog.PUT("/source", r.catalogController.ReplaceSource)
			catalog.POST("/reload", r.catalogController.Reload)
		}

		builder := v1.Group("/builder")
		{
			builder.GET("", r.builderController.GetBuilder)
			builder.POST("/toggle", r.builderController.Toggle)
			builder.POST("/reset", r.builderController.Reset)
		}

		cart := v1.Group("/cart")
		{
			cart.GET("", r.cartController.GetCart)
			cart.POST("/items", r.cartController.AddItem)
			cart.POST("/custom", r.cartController.AddCustom)
			cart.PUT("/items/:id/quantity", r.cartController.AdjustQuantity)
			cart.PUT("/items/:id/notes", r.cartController.UpdateNotes)
			cart.DELETE("/items/:id", r.cartController.RemoveLine)
			cart.POST("/clear", r.cartController.RequestClear)
			cart.POST("/clear/confirm", r.cartController.ConfirmClear)
			cart.POST("/clear/cancel", r.cartController.CancelClear)
		}

		orders := v1.Group("/order")
		{
			orders.POST("", r.orderController.PlaceOrder)
			orders.GET("/pending", r.orderController.GetPending)
			orders.POST("/complete", r.orderController.CompleteOrder)
			orders.POST("/dismiss", r.orderController.DismissOrder)
		}

		prefs := v1.Group("/prefs")
		{
			prefs.GET("", r.prefsController.GetPrefs)
			prefs.PUT("/theme", r.prefsController.SetTheme)
			prefs.PUT("/install-prompt", r.prefsController.SetInstallPrompt)
		}

		v1.GET("/assets", r.assetsController.GetManifest)
	}

	router.GET("/ws", r.eventsController.Subscribe)

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
