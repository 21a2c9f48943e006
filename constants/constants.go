package constants

// Keys stored on the gin context by the middlewares.
const (
	ContextUserKey      = "user"
	ContextTokenKey     = "token"
	ContextRequestIDKey = "request_id"
)

const (
	TokenTypeBearer = "bearer"
	HeaderRequestID = "X-Request-ID"
)

// Error messages returned in response bodies.
const (
	ErrUnexpected           = "Unexpected error"
	ErrInvalidID            = "Invalid id"
	ErrInvalidInput         = "Invalid input"
	ErrInvalidCredentials   = "Invalid credentials"
	ErrNotAuthenticated     = "Could not validate credentials"
	ErrNotEnoughPermissions = "Not enough permissions"
	ErrEmailRegistered      = "Email already registered"
	ErrCategoryExists       = "Category already exists"
	ErrUserNotFound         = "User not found"
	ErrTaskNotFound         = "Task not found"
	ErrExpenseNotFound      = "Expense not found"
)

const (
	MsgLoggedOut      = "Successfully logged out"
	MsgTaskDeleted    = "Task deleted"
	MsgExpenseDeleted = "Expense deleted"
)
