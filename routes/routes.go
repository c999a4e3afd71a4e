package routes

import (
	"net/http"

	"storefront/controllers"
	"storefront/middleware"
	"storefront/models"

	"github.com/gin-gonic/gin"
)

// Register wires every endpoint onto the router. Cart and checkout routes
// are grouped under RequireAuth so an unauthenticated request can never
// reach their handlers; product creation additionally requires the admin
// role.
func Register(
	r *gin.Engine,
	tokens middleware.TokenValidator,
	auth *controllers.AuthController,
	products *controllers.ProductController,
	cart *controllers.CartController,
	checkout *controllers.CheckoutController,
	contact *controllers.ContactController,
) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	// Public surface
	r.GET("/products", products.ListProducts)
	r.GET("/products/:id", products.GetProduct)
	r.POST("/contact", contact.SubmitContact)

	authGroup := r.Group("/auth")
	authGroup.Use(middleware.RateLimit())
	{
		authGroup.POST("/register", auth.Register)
		authGroup.POST("/login", auth.Login)
		authGroup.POST("/logout", auth.Logout)
	}

	// Admin-only catalog mutation
	admin := r.Group("/products")
	admin.Use(middleware.RequireAuth(tokens), middleware.RequireRole(models.RoleAdmin))
	{
		admin.POST("", products.CreateProduct)
	}

	// Authenticated cart and checkout
	session := r.Group("/")
	session.Use(middleware.RequireAuth(tokens))
	{
		session.GET("/cart", cart.GetCart)
		session.POST("/cart/items/:product_id", cart.AddItem)
		session.DELETE("/cart/items/:product_id", cart.RemoveItem)
		session.POST("/checkout/session", checkout.CreateSession)
	}

	// Provider callbacks: the webhook is signature-verified, the landings
	// mutate nothing.
	r.POST("/webhook/stripe", checkout.StripeWebhook)
	r.GET("/checkout/success", checkout.Success)
	r.GET("/checkout/cancel", checkout.Cancel)
}
