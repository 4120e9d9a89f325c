package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/cart-service/internal/service"
)

// CartRoutes handles cart route registration.
type CartRoutes struct {
	handler *CartHandler
}

// NewCartRoutes creates a new CartRoutes instance.
func NewCartRoutes(carts service.CartService) *CartRoutes {
	return &CartRoutes{handler: NewCartHandler(carts)}
}

// RegisterRoutes registers cart routes to the given router group.
func (r *CartRoutes) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	rg.GET("/cart", r.handler.GetCart)
	rg.DELETE("/cart", r.handler.ClearCart)

	rg.POST("/cart/items", r.handler.AddItem)
	rg.DELETE("/cart/items", r.handler.RemoveItem)
	rg.PUT("/cart/items/quantity", r.handler.UpdateQuantity)
	rg.GET("/cart/items/quantity", r.handler.GetItemQuantity)
	rg.GET("/cart/items/contains", r.handler.Contains)
}

// GetHandler returns the underlying cart handler.
func (r *CartRoutes) GetHandler() *CartHandler {
	return r.handler
}
