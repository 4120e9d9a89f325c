package cart

import "errors"

var (
	// ErrInvalidProduct is returned when a line has a non-positive product id.
	ErrInvalidProduct = errors.New("cart: product id must be a positive integer")
	// ErrInvalidQuantity is returned when a mutating action receives a
	// non-positive quantity increment.
	ErrInvalidQuantity = errors.New("cart: quantity must be a positive integer")
	// ErrInvalidPrice is returned when a line carries a negative unit price.
	ErrInvalidPrice = errors.New("cart: unit price must not be negative")
)

// IsValidation reports whether err is one of the engine's validation
// errors, i.e. a caller mistake rather than an internal failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidProduct) ||
		errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrInvalidPrice)
}
