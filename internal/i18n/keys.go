// Package i18n provides internationalization support for the shipment service.
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
	// ErrKeyForbidden indicates insufficient permissions.
	ErrKeyForbidden = "error.forbidden"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyInvalidToken indicates an invalid or expired JWT token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyTokenRequired indicates that a JWT token is required.
	ErrKeyTokenRequired = "error.token_required"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
	// ErrKeyValidationItemsRequired indicates an empty items list.
	ErrKeyValidationItemsRequired = "error.validation.items_required"
	// ErrKeyValidationQuantity indicates an invalid item quantity.
	ErrKeyValidationQuantity = "error.validation.quantity"
	// ErrKeyValidationUnitWeight indicates a negative unit weight.
	ErrKeyValidationUnitWeight = "error.validation.unit_weight"
	// ErrKeyValidationPacketsPerUnit indicates a negative packets-per-unit value.
	ErrKeyValidationPacketsPerUnit = "error.validation.packets_per_unit"
	// ErrKeyValidationBoxCatalog indicates an invalid box catalog update.
	ErrKeyValidationBoxCatalog = "error.validation.box_catalog"
	// ErrKeyCatalogNotFound indicates no active box catalog configuration exists.
	ErrKeyCatalogNotFound = "error.catalog_not_found"
)

// Success message translation keys.
const (
	// SuccessKeyShipmentCalculated indicates a successful shipment weight calculation.
	SuccessKeyShipmentCalculated = "success.shipment_calculated"
	// SuccessKeyCatalogUpdated indicates a successful box catalog update.
	SuccessKeyCatalogUpdated = "success.catalog_updated"
)
