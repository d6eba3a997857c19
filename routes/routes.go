package routes

import (
	"ecomm/configs"
	"ecomm/controllers"
	"ecomm/entity"
	"ecomm/middlewares"
	"ecomm/pkg/cache"
	"ecomm/pkg/events"
	"ecomm/repository"
	"ecomm/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// RegisterRoutes builds the dependency graph and mounts the API. The
// publisher is passed in because its lifetime outlives request handling;
// the caller closes it on shutdown.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, publisher events.Publisher, log zerolog.Logger) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	subRepo := repository.NewSubscriptionRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	wishRepo := repository.NewWishlistRepository(db)

	// Shared infrastructure
	var store cache.Store
	if cfg.CacheBackend == "redis" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		store = cache.NewRedis(client, "ecomm")
		log.Info().Str("addr", cfg.RedisAddr).Msg("using redis cache")
	} else {
		store = cache.NewMemory()
	}

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	productSvc := services.NewProductService(db, productRepo, reviewRepo, wishRepo, store)
	cartSvc := services.NewCartService(cartRepo, productRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, productRepo, publisher, log)
	subSvc := services.NewSubscriptionService(db, subRepo, userRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	productCtrl := controllers.NewProductController(productSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	subCtrl := controllers.NewSubscriptionController(subSvc)

	authRequired := middlewares.AuthMiddleware(cfg.JWTSecret)
	adminOnly := middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin)

	api := r.Group("/api")

	// Auth
	a := api.Group("/Auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/getUserInfo", authRequired, authCtrl.GetUserInfo)
	}

	// Products (reads are public, catalog mutation is admin-only)
	p := api.Group("/Products")
	{
		p.GET("", productCtrl.Search)
		p.GET("/trending", authRequired, productCtrl.Trending)
		p.GET("/featured", productCtrl.Featured)
		p.GET("/categories", productCtrl.Categories)
		p.GET("/category/:id", productCtrl.ByCategory)
		p.GET("/reviews/:productId", productCtrl.Reviews)
		p.GET("/:id", productCtrl.Get)

		p.POST("", adminOnly, productCtrl.Add)
		p.PUT("/:id", adminOnly, productCtrl.Update)
		p.DELETE("/:id", adminOnly, productCtrl.Delete)
		p.POST("/addcategory", adminOnly, productCtrl.AddCategory)

		p.POST("/addToWishlist/:productId", authRequired, productCtrl.AddToWishlist)
		p.GET("/wishlist", authRequired, productCtrl.Wishlist)
		p.DELETE("/wishlist/:productId", authRequired, productCtrl.RemoveFromWishlist)
		p.POST("/reviews/:productId", authRequired, productCtrl.AddReview)
	}

	// Cart
	cart := api.Group("/Cart", authRequired)
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("", cartCtrl.Add)
		cart.PUT("/:productId", cartCtrl.UpdateQuantity)
		cart.DELETE("/:productId", cartCtrl.Remove)
		cart.DELETE("", cartCtrl.Clear)
	}

	// Orders
	order := api.Group("/Order", authRequired)
	{
		order.GET("", orderCtrl.List)
		order.POST("", orderCtrl.Create)
	}

	// Subscriptions
	sub := api.Group("/Subscriptions", authRequired)
	{
		sub.POST("", subCtrl.Subscribe)
		sub.DELETE("", subCtrl.Cancel)
		sub.GET("", subCtrl.Get)
	}
}
