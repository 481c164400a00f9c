package api

// Error codes carried in the error envelope.
const (
	CodeValidation        = "VALIDATION_ERROR"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeNotFound          = "NOT_FOUND"
	CodeAuthDisabled      = "AUTH_DISABLED"
	CodeAuthConfig        = "AUTH_CONFIG"
	CodeRefreshDisabled   = "REFRESH_DISABLED"
	CodeMigrationRequired = "MIGRATION_REQUIRED"
	CodeDBError           = "DB_ERROR"
)
