// Package i18n provides internationalization support for the cart service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyAPIKeyRequired indicates that an API key is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyInvalidToken indicates an invalid or expired session token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
	// ErrKeyValidationQuantity indicates an invalid quantity value.
	ErrKeyValidationQuantity = "error.validation.quantity"
	// ErrKeyValidationProduct indicates an invalid product id.
	ErrKeyValidationProduct = "error.validation.product_id"
	// ErrKeyValidationPrice indicates an invalid unit price.
	ErrKeyValidationPrice = "error.validation.unit_price"
)
