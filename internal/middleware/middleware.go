package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"frontdoor/internal/errors"

	"github.com/google/uuid"
)

// LoggingMiddleware logs HTTP requests with structured logging
func LoggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Create a response wrapper to capture status code
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: http.StatusOK}

			defer func() {
				logger.Info("HTTP Request",
					slog.String("request_id", uuid.NewString()),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("remote_addr", r.RemoteAddr),
					slog.Int("status_code", wrapper.statusCode),
					slog.Int("bytes", wrapper.written),
					slog.Duration("duration", time.Since(start)),
					slog.String("user_agent", r.UserAgent()),
				)
			}()

			next.ServeHTTP(wrapper, r)
		})
	}
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode  int
	written     int
	wroteHeader bool
}

func (rw *responseWrapper) WriteHeader(code int) {
	if !rw.wroteHeader {
		rw.statusCode = code
		rw.wroteHeader = true
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWrapper) Write(b []byte) (int, error) {
	rw.wroteHeader = true
	n, err := rw.ResponseWriter.Write(b)
	rw.written += n
	return n, err
}

// ErrorHandlerMiddleware recovers from panics and handles errors consistently
func ErrorHandlerMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}

					logger.Error("Panic recovered",
						slog.Any("error", rec),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
					)

					err, ok := rec.(error)
					if !ok {
						err = fmt.Errorf("%v", rec)
					}
					errors.HandleHTTPError(w, logger, errors.Wrap(err, "serve_http"))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// DefaultMiddleware returns a chain of default middleware
func DefaultMiddleware(logger *slog.Logger) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		LoggingMiddleware(logger),
		ErrorHandlerMiddleware(logger),
	}
}

// ChainMiddleware chains multiple middleware functions
func ChainMiddleware(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			next = middlewares[i](next)
		}
		return next
	}
}
