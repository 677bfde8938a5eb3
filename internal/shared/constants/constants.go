package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderToken         = "Token"

	// Content Types
	ContentTypeJSON = "application/json"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	// API prefix used for ACL resource-segment extraction
	APIPrefix = "/api"

	// Context keys
	ContextKeyUserID   = "user_id"
	ContextKeyUserName = "user_name"
	ContextKeyUserRole = "user_role"
	ContextKeyStatus   = "user_status"

	// User status
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"

	// Book status
	BookStatusAvailable = "available"
	BookStatusBorrowed  = "borrowed"

	// Loan status
	LoanStatusPending = "pending"
	LoanStatusAccept  = "accept"
	LoanStatusReject  = "reject"
	LoanStatusReturn  = "return"

	// Database table names
	TableUsers     = "users"
	TableAuthors   = "authors"
	TableBooks     = "books"
	TableBookLoans = "book_loans"

	// Error messages
	ErrMsgInternalServerError = "operation failed"
	ErrMsgUnauthorized        = "user not authorized"
	ErrMsgValidationFailed    = "validation failed"
)
