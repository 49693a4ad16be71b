package constants

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	// Context keys set by the auth middleware.
	ContextKeyAdminID   = "admin_id"
	ContextKeyAdminRole = "admin_role"
	ContextKeyRequestID = "request_id"

	// Database table names
	TableSites       = "sites"
	TableBlocks      = "blocks"
	TableApartments  = "apartments"
	TableUsers       = "users"
	TableMonthlyDues = "monthly_dues"
	TablePayments    = "payments"
	TableComplaints  = "complaints"

	// SiteCodeCachePrefix prefixes Redis keys mapping site codes to ids.
	SiteCodeCachePrefix = "site:code:"
)
