// Package http provides HTTP handlers and routing for the cart service.
package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cart-service/internal/cart"
	"github.com/guttosm/cart-service/internal/domain/dto"
	"github.com/guttosm/cart-service/internal/i18n"
	"github.com/guttosm/cart-service/internal/metrics"
	"github.com/guttosm/cart-service/internal/middleware"
	"github.com/guttosm/cart-service/internal/service"
)

// CartHandler provides HTTP handlers for cart routes. Every handler resolves
// the cart owner from the session middleware and operates on that owner's
// store only.
type CartHandler struct {
	carts service.CartService
}

// NewCartHandler creates a new CartHandler instance.
func NewCartHandler(carts service.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

// storeFor resolves the request owner and returns their cart store.
// Returns false after writing a 401 when no owner has been resolved.
func (h *CartHandler) storeFor(c *gin.Context) (*cart.Store, bool) {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == "" {
		builder := NewResponseBuilder(c)
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyUnauthorized, nil)
		return nil, false
	}
	return h.carts.StoreFor(c.Request.Context(), ownerID), true
}

// variantFromQuery builds the variant selector from size/color query
// parameters. The second return reports whether either key was present,
// which switches quantity reads from aggregate to exact-variant mode.
func variantFromQuery(c *gin.Context) (cart.Variant, bool) {
	size, hasSize := c.GetQuery("size")
	color, hasColor := c.GetQuery("color")
	return cart.Variant{Size: size, Color: color}, hasSize || hasColor
}

// validationKey maps an engine validation error to its translation key.
func validationKey(err error) string {
	switch {
	case errors.Is(err, cart.ErrInvalidProduct):
		return i18n.ErrKeyValidationProduct
	case errors.Is(err, cart.ErrInvalidPrice):
		return i18n.ErrKeyValidationPrice
	default:
		return i18n.ErrKeyValidationQuantity
	}
}

// GetCart handles GET /api/cart requests.
//
// @Summary      Get cart
// @Description  Returns the full cart state for the request owner: every line with its quantity plus the derived totals. An owner who has never added anything gets an empty cart.
// @Tags         Cart
// @Produce      json
// @Param        Authorization header string false "Bearer token for an authenticated user"
// @Param        X-Session-ID header string false "Anonymous session identifier"
// @Success      200 {object} dto.SuccessResponse "Current cart state"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	builder := NewResponseBuilder(c)

	store, ok := h.storeFor(c)
	if !ok {
		return
	}

	builder.SuccessOK(store.Snapshot())
}

// AddItem handles POST /api/cart/items requests.
//
// @Summary      Add item to cart
// @Description  Adds units of a product to the cart. When a line with the same product and variant already exists its quantity is incremented; otherwise a new line is appended. Supports idempotency via Idempotency-Key header.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.AddItemRequest true "Product snapshot and quantity"
// @Success      200 {object} dto.SuccessResponse "Cart state after the add"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Normalize(); err != nil {
		metrics.RecordCartAction("add", 0, "validation_error")
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationQuantity, err)
		return
	}

	store, ok := h.storeFor(c)
	if !ok {
		return
	}

	item := cart.Item{
		ProductID:       req.ProductID,
		Title:           req.Title,
		Image:           req.Image,
		UnitPrice:       req.UnitPrice,
		DiscountPercent: req.DiscountPercent,
		Variant:         cart.Variant{Size: req.Size, Color: req.Color},
	}

	start := time.Now()
	state, err := store.AddItem(c.Request.Context(), item, req.Quantity)
	if err != nil {
		if cart.IsValidation(err) {
			metrics.RecordCartAction("add", time.Since(start), "validation_error")
			builder.Error(http.StatusBadRequest, validationKey(err), err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	metrics.RecordCartAction("add", time.Since(start), "success")
	builder.SuccessOK(state)
}

// UpdateQuantity handles PUT /api/cart/items/quantity requests.
//
// @Summary      Set line quantity
// @Description  Sets the quantity of an existing cart line to an absolute value. A target of zero or less removes the line entirely. Setting a quantity for a line that does not exist is a no-op.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        request body dto.UpdateQuantityRequest true "Line identity and target quantity"
// @Success      200 {object} dto.SuccessResponse "Cart state after the update"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/cart/items/quantity [put]
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.UpdateQuantityRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	store, ok := h.storeFor(c)
	if !ok {
		return
	}

	start := time.Now()
	variant := cart.Variant{Size: req.Size, Color: req.Color}
	state := store.UpdateQuantity(c.Request.Context(), req.ProductID, *req.Quantity, variant)

	metrics.RecordCartAction("update_quantity", time.Since(start), "success")
	builder.SuccessOK(state)
}

// RemoveItem handles DELETE /api/cart/items requests.
//
// @Summary      Remove item from cart
// @Description  Removes the line matching the given product and variant, regardless of its quantity. Removing a line that does not exist is a no-op.
// @Tags         Cart
// @Produce      json
// @Param        product_id query int true "Product identifier"
// @Param        size query string false "Size component of the line identity"
// @Param        color query string false "Color component of the line identity"
// @Success      200 {object} dto.SuccessResponse "Cart state after the removal"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/cart/items [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var query dto.IdentityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationProduct, err)
		return
	}

	store, ok := h.storeFor(c)
	if !ok {
		return
	}

	start := time.Now()
	variant := cart.Variant{Size: query.Size, Color: query.Color}
	state := store.RemoveItem(c.Request.Context(), query.ProductID, variant)

	metrics.RecordCartAction("remove", time.Since(start), "success")
	builder.SuccessOK(state)
}

// ClearCart handles DELETE /api/cart requests.
//
// @Summary      Clear cart
// @Description  Removes every line from the cart and erases the persisted copy. The cart returns to its pristine empty state.
// @Tags         Cart
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Empty cart state"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/cart [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	builder := NewResponseBuilder(c)

	store, ok := h.storeFor(c)
	if !ok {
		return
	}

	start := time.Now()
	state := store.Clear(c.Request.Context())

	metrics.RecordCartAction("clear", time.Since(start), "success")
	builder.SuccessOK(state)
}

// GetItemQuantity handles GET /api/cart/items/quantity requests.
//
// @Summary      Get quantity for a product
// @Description  Returns how many units of a product the cart holds. Without size or color parameters the count sums across every variant of the product; with either parameter present only the exact variant line is counted.
// @Tags         Cart
// @Produce      json
// @Param        product_id query int true "Product identifier"
// @Param        size query string false "Size component for an exact-variant lookup"
// @Param        color query string false "Color component for an exact-variant lookup"
// @Success      200 {object} dto.SuccessResponse "Quantity held"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Router       /api/cart/items/quantity [get]
func (h *CartHandler) GetItemQuantity(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var query dto.IdentityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationProduct, err)
		return
	}

	store, ok := h.storeFor(c)
	if !ok {
		return
	}

	var selector *cart.Variant
	if variant, exact := variantFromQuery(c); exact {
		selector = &variant
	}

	builder.SuccessOK(dto.QuantityResponse{
		ProductID: query.ProductID,
		Quantity:  store.ItemQuantity(query.ProductID, selector),
	})
}

// Contains handles GET /api/cart/items/contains requests.
//
// @Summary      Check cart membership
// @Description  Reports whether the cart holds a product. Without size or color parameters any variant of the product counts; with either parameter present only the exact variant line does.
// @Tags         Cart
// @Produce      json
// @Param        product_id query int true "Product identifier"
// @Param        size query string false "Size component for an exact-variant lookup"
// @Param        color query string false "Color component for an exact-variant lookup"
// @Success      200 {object} dto.SuccessResponse "Membership result"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Router       /api/cart/items/contains [get]
func (h *CartHandler) Contains(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var query dto.IdentityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationProduct, err)
		return
	}

	store, ok := h.storeFor(c)
	if !ok {
		return
	}

	var selector *cart.Variant
	if variant, exact := variantFromQuery(c); exact {
		selector = &variant
	}

	builder.SuccessOK(dto.ContainsResponse{
		ProductID: query.ProductID,
		Contains:  store.Contains(query.ProductID, selector),
	})
}
