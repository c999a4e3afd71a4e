package controllers

import (
	"net/http"

	"storefront/middleware"
	"storefront/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CartController handles the authenticated cart endpoints.
type CartController struct {
	cartService services.CartService
}

// NewCartController creates a new CartController.
func NewCartController(cartService services.CartService) *CartController {
	return &CartController{cartService: cartService}
}

// GetCart handles GET /cart.
func (cc *CartController) GetCart(c *gin.Context) {
	userID := middleware.GetUserID(c)

	cart, svcErr := cc.cartService.GetCart(c.Request.Context(), userID)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, cart)
}

// AddItem handles POST /cart/items/:product_id.
func (cc *CartController) AddItem(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("product_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	item, svcErr := cc.cartService.AddItem(c.Request.Context(), middleware.GetUserID(c), productID)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": item.Label + " added to shopping cart",
		"item":    item,
	})
}

// RemoveItem handles DELETE /cart/items/:product_id. Removing an
// already-removed product returns 404, never a fault.
func (cc *CartController) RemoveItem(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("product_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	if svcErr := cc.cartService.RemoveItem(c.Request.Context(), middleware.GetUserID(c), productID); svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item removed"})
}
