// Package i18n provides internationalization support for the freight service.
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
	// ErrKeyInvalidCredentials indicates invalid login credentials (user not registered or wrong password).
	ErrKeyInvalidCredentials = "error.invalid_credentials"
	// ErrKeyEmailNotConfirmed indicates a login attempt before email confirmation.
	ErrKeyEmailNotConfirmed = "error.email_not_confirmed"
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
	// ErrKeyUploadFileRequired indicates a missing spreadsheet in a multipart upload.
	ErrKeyUploadFileRequired = "error.upload.file_required"
	// ErrKeyUploadInvalidSheet indicates a spreadsheet that could not be decoded.
	ErrKeyUploadInvalidSheet = "error.upload.invalid_sheet"
	// ErrKeyValidationPedidos indicates order rows that failed validation.
	ErrKeyValidationPedidos = "error.validation.pedidos"
	// ErrKeyInvalidToken indicates an invalid or expired JWT token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyTokenRequired indicates that a JWT token is required.
	ErrKeyTokenRequired = "error.token_required"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
)

// Success message translation keys.
const (
	// SuccessKeyLeilaoConcluido indicates a completed freight auction.
	SuccessKeyLeilaoConcluido = "success.leilao_concluido"
	// SuccessKeyUploadProcessed indicates a completed spreadsheet ingestion.
	SuccessKeyUploadProcessed = "success.upload_processed"
)
