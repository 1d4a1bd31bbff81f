// Package errors provides structured error values for the core.
// Validation failures are surfaced to callers with a field-specific
// message; storage failures carry the underlying cause but are never
// fatal to the process.
package errors

// AppError represents a structured application error with a stable
// error code, a human-readable message, the offending field for
// validation failures, and an optional internal cause.
type AppError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Field    string `json:"field,omitempty"`
	Internal error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is matches AppErrors by code, so errors.Is(err, sentinel) works on
// wrapped copies.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

// Wrap creates a new AppError with the same code and message but wraps
// an internal cause.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:     sentinel.Code,
		Message:  sentinel.Message,
		Field:    sentinel.Field,
		Internal: internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:     sentinel.Code,
		Message:  message,
		Field:    sentinel.Field,
		Internal: sentinel.Internal,
	}
}

// WithField creates a new AppError naming the field that failed
// validation.
func WithField(sentinel *AppError, field, message string) *AppError {
	return &AppError{
		Code:     sentinel.Code,
		Message:  message,
		Field:    field,
		Internal: sentinel.Internal,
	}
}

// Validation errors.
var (
	ErrInvalidInput      = &AppError{Code: "INVALID_INPUT", Message: "Invalid input"}
	ErrInvalidUsername   = &AppError{Code: "INVALID_USERNAME", Message: "Username must be 3-20 letters, digits or underscores", Field: "username"}
	ErrInvalidEmail      = &AppError{Code: "INVALID_EMAIL", Message: "Email address is not valid", Field: "email"}
	ErrPasswordTooShort  = &AppError{Code: "PASSWORD_TOO_SHORT", Message: "Password must be at least 6 characters", Field: "password"}
	ErrDuplicateUsername = &AppError{Code: "DUPLICATE_USERNAME", Message: "Username already exists", Field: "username"}
)

// Authentication errors.
var (
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid username or password"}
	ErrNoSession          = &AppError{Code: "NO_SESSION", Message: "No user is logged in"}
)

// Not-found errors.
var (
	ErrUserNotFound     = &AppError{Code: "USER_NOT_FOUND", Message: "User not found"}
	ErrCategoryNotFound = &AppError{Code: "CATEGORY_NOT_FOUND", Message: "Category not found"}
	ErrExpenseNotFound  = &AppError{Code: "EXPENSE_NOT_FOUND", Message: "Expense not found"}
)

// Storage errors. Reads never surface these (they degrade to empty
// results and are logged); writes report them once, with no automatic
// retry.
var (
	ErrStorage = &AppError{Code: "STORAGE_ERROR", Message: "Storage operation failed"}
)
