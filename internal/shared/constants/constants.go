package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 25
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyUserID      = "user_id"
	ContextKeyUserType    = "user_type"
	ContextKeyCustomer    = "customer"
	ContextKeySearchQuery = "search_query"
	ContextKeyRequestID   = "request_id"

	// Database table names
	TableAdmins          = "admins"
	TableCustomers       = "customers"
	TableExportShipments = "export_shipments"
	TableImportShipments = "import_shipments"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
	ErrMsgValidationFailed    = "Validation failed"
)
