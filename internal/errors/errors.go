package errors

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
)

// ErrorType represents different categories of application errors
type ErrorType int

const (
	TemplateError ErrorType = iota
	NetworkError
	ConfigurationError
	InternalError
)

// AppError represents application-specific errors with context
type AppError struct {
	Type    ErrorType
	Op      string                 // Operation that failed
	Err     error                  // Original error
	Message string                 // User-facing message
	Code    int                    // HTTP status code
	Context map[string]interface{} // Additional context
}

func (e *AppError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// String returns the error type as a string for logging
func (et ErrorType) String() string {
	switch et {
	case TemplateError:
		return "template"
	case NetworkError:
		return "network"
	case ConfigurationError:
		return "configuration"
	case InternalError:
		return "internal"
	default:
		return "unknown"
	}
}

// NewTemplateError creates a new template loading or rendering error
func NewTemplateError(op string, err error) *AppError {
	return &AppError{
		Type:    TemplateError,
		Op:      op,
		Err:     err,
		Message: http.StatusText(http.StatusInternalServerError),
		Code:    http.StatusInternalServerError,
	}
}

// NewNetworkError creates a new network error
func NewNetworkError(op string, err error) *AppError {
	return &AppError{
		Type:    NetworkError,
		Op:      op,
		Err:     err,
		Message: "Network operation failed",
		Code:    http.StatusServiceUnavailable,
	}
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(op string, err error) *AppError {
	return &AppError{
		Type:    ConfigurationError,
		Op:      op,
		Err:     err,
		Message: "Configuration error",
		Code:    http.StatusInternalServerError,
	}
}

// WithContext adds context to an existing AppError
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// WithMessage replaces the user-facing message
func (e *AppError) WithMessage(message string) *AppError {
	e.Message = message
	return e
}

// LogError logs an AppError with appropriate context
func LogError(logger *slog.Logger, err *AppError) {
	logArgs := []interface{}{
		slog.String("type", err.Type.String()),
		slog.String("operation", err.Op),
		slog.Int("code", err.Code),
	}
	if err.Err != nil {
		logArgs = append(logArgs, slog.String("error", err.Err.Error()))
	}

	for k, v := range err.Context {
		logArgs = append(logArgs, slog.Any(k, v))
	}

	logger.Error(err.Message, logArgs...)
}

// HandleHTTPError sends appropriate HTTP error response and logs the error
func HandleHTTPError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var appErr *AppError

	if IsAppError(err, &appErr) {
		LogError(logger, appErr)
		http.Error(w, appErr.Message, appErr.Code)
		return
	}

	logger.Error("Unhandled error", slog.String("error", err.Error()))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// IsAppError checks if an error is an AppError and extracts it
func IsAppError(err error, target **AppError) bool {
	return stderrors.As(err, target)
}

// IsType reports whether err carries an AppError of the given type
func IsType(err error, et ErrorType) bool {
	var appErr *AppError
	return IsAppError(err, &appErr) && appErr.Type == et
}

// Wrap wraps an error with additional context
func Wrap(err error, op string) error {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if IsAppError(err, &appErr) {
		return &AppError{
			Type:    appErr.Type,
			Op:      op + " -> " + appErr.Op,
			Err:     appErr.Err,
			Message: appErr.Message,
			Code:    appErr.Code,
			Context: appErr.Context,
		}
	}

	return &AppError{
		Type:    InternalError,
		Op:      op,
		Err:     err,
		Message: "Operation failed",
		Code:    http.StatusInternalServerError,
	}
}
