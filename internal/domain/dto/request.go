// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the cart engine, providing validation
// and serialization for API communication.
package dto

// AddItemRequest is the JSON body for the add-item endpoint. The catalog
// collaborator supplies the snapshot fields; the engine never re-fetches
// them.
//
// @Description Request to add units of a product to the cart
// @Example {"product_id": 42, "title": "Trail Jacket", "image": "jacket.png", "unit_price": 89.9, "discount_percent": 10, "size": "M", "quantity": 2}
type AddItemRequest struct {
	// ProductID is the stable catalog identifier. Must be greater than 0.
	ProductID int64 `json:"product_id" binding:"required,gt=0" example:"42" minimum:"1"`
	// Title is the display title snapshot captured at add-time.
	Title string `json:"title" binding:"required" example:"Trail Jacket"`
	// Image is the display image snapshot captured at add-time.
	Image string `json:"image" example:"jacket.png"`
	// UnitPrice is the price snapshot at add-time. Must not be negative.
	UnitPrice float64 `json:"unit_price" binding:"gte=0" example:"89.9" minimum:"0"`
	// DiscountPercent is the optional integer discount in [0, 100].
	DiscountPercent int `json:"discount_percent" binding:"gte=0,lte=100" example:"10" minimum:"0" maximum:"100"`
	// Size is the optional size selection; empty means none.
	Size string `json:"size" example:"M"`
	// Color is the optional color selection; empty means none.
	Color string `json:"color" example:"black"`
	// Quantity is the increment to add. Defaults to 1 when omitted.
	Quantity int `json:"quantity" example:"2"`
} // @name AddItemRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

var (
	// ErrInvalidQuantity is returned when quantity is not a positive integer.
	ErrInvalidQuantity = &ValidationError{
		Field:   "quantity",
		Message: "must be a positive integer",
	}
	// ErrInvalidProductID is returned when product_id is not positive.
	ErrInvalidProductID = &ValidationError{
		Field:   "product_id",
		Message: "must be a positive integer",
	}
)

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Normalize applies the quantity default and validates what binding tags
// cannot express. Returns an error if validation fails, nil otherwise.
func (r *AddItemRequest) Normalize() error {
	if r.Quantity == 0 {
		r.Quantity = 1
	}
	if r.Quantity < 0 {
		return ErrInvalidQuantity
	}
	return nil
}

// UpdateQuantityRequest is the JSON body for the absolute quantity update
// endpoint. Quantity is a pointer so an explicit zero (which removes the
// line) is distinguishable from an omitted field.
//
// @Description Request to set a cart line's quantity to an absolute value
// @Example {"product_id": 42, "size": "M", "quantity": 3}
type UpdateQuantityRequest struct {
	// ProductID is the stable catalog identifier. Must be greater than 0.
	ProductID int64 `json:"product_id" binding:"required,gt=0" example:"42" minimum:"1"`
	// Quantity is the absolute target; zero or less removes the line.
	Quantity *int `json:"quantity" binding:"required" example:"3"`
	// Size is the optional size component of the line identity.
	Size string `json:"size" example:"M"`
	// Color is the optional color component of the line identity.
	Color string `json:"color" example:"black"`
} // @name UpdateQuantityRequest

// Validate checks the fields binding tags cannot express when the request
// is built outside gin's binding path.
func (r *UpdateQuantityRequest) Validate() error {
	if r.ProductID <= 0 {
		return ErrInvalidProductID
	}
	if r.Quantity == nil {
		return ErrInvalidQuantity
	}
	return nil
}

// IdentityQuery carries the line identity in query parameters for the
// remove and read endpoints.
type IdentityQuery struct {
	// ProductID is the stable catalog identifier. Must be greater than 0.
	ProductID int64 `form:"product_id" binding:"required,gt=0"`
	// Size is the optional size component of the line identity.
	Size string `form:"size"`
	// Color is the optional color component of the line identity.
	Color string `form:"color"`
} // @name IdentityQuery
