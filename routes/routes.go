package routes

import (
	"time"

	"lushlocks-backend/handlers"
	"lushlocks-backend/middleware"
	"lushlocks-backend/store"

	"github.com/gin-gonic/gin"
)

// Stores bundles the state containers the routes operate on.
type Stores struct {
	Cart     *store.Cart
	Wishlist *store.Wishlist
	CRUD     *store.CRUD
	Auth     *store.Auth
}

func SetupRoutes(r *gin.Engine, s Stores) {
	// Initialize handlers
	authHandler := &handlers.AuthHandler{Auth: s.Auth}
	cartHandler := &handlers.CartHandler{Cart: s.Cart}
	wishlistHandler := &handlers.WishlistHandler{Wishlist: s.Wishlist}
	productHandler := &handlers.ProductHandler{Store: s.CRUD}
	orderHandler := &handlers.OrderHandler{Store: s.CRUD, Cart: s.Cart}
	customerHandler := &handlers.CustomerHandler{Store: s.CRUD}

	// The mock verifier accepts anything, so keep the auth endpoints
	// behind a limiter.
	authLimiter := middleware.NewRateLimiter(10, time.Minute)

	// Public routes
	api := r.Group("/api")
	{
		api.POST("/auth/register", authLimiter.Middleware(), authHandler.Register)
		api.POST("/auth/login", authLimiter.Middleware(), authHandler.Login)
		api.POST("/auth/refresh", authHandler.RefreshTokenHandler)

		api.GET("/products", productHandler.GetProducts)
		api.GET("/products/:id", productHandler.GetProduct)
	}

	// Protected routes (require authentication)
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/auth/profile", authHandler.GetProfile)
		protected.POST("/auth/logout", authHandler.Logout)

		// Cart routes
		protected.GET("/cart", cartHandler.GetCart)
		protected.POST("/cart", cartHandler.AddToCart)
		protected.PUT("/cart/:id", cartHandler.UpdateCartItem)
		protected.DELETE("/cart/:id", cartHandler.RemoveFromCart)
		protected.DELETE("/cart", cartHandler.ClearCart)

		// Wishlist routes
		protected.GET("/wishlist", wishlistHandler.GetWishlist)
		protected.POST("/wishlist", wishlistHandler.AddToWishlist)
		protected.GET("/wishlist/:id", wishlistHandler.CheckWishlist)
		protected.DELETE("/wishlist/:id", wishlistHandler.RemoveFromWishlist)
		protected.DELETE("/wishlist", wishlistHandler.ClearWishlist)

		// Order routes
		protected.POST("/checkout", orderHandler.Checkout)
		protected.GET("/orders", orderHandler.GetOrders)
		protected.GET("/orders/:id", orderHandler.GetOrder)
	}

	// Admin routes (require admin role)
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.AdminMiddleware())
	{
		// Product management
		admin.POST("/products", productHandler.CreateProduct)
		admin.PUT("/products/:id", productHandler.UpdateProduct)
		admin.DELETE("/products/:id", productHandler.DeleteProduct)

		// Order management
		admin.POST("/orders", orderHandler.CreateOrder)
		admin.PUT("/orders/:id", orderHandler.UpdateOrder)
		admin.PUT("/orders/:id/status", orderHandler.UpdateOrderStatus)
		admin.DELETE("/orders/:id", orderHandler.DeleteOrder)

		// Customer management
		admin.GET("/customers", customerHandler.GetCustomers)
		admin.GET("/customers/:id", customerHandler.GetCustomer)
		admin.GET("/customers/:id/orders", customerHandler.GetCustomerOrders)
		admin.POST("/customers", customerHandler.CreateCustomer)
		admin.PUT("/customers/:id", customerHandler.UpdateCustomer)
		admin.DELETE("/customers/:id", customerHandler.DeleteCustomer)
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
