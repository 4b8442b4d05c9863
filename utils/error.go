package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorKind classifies failures surfaced over HTTP.
type ErrorKind string

const (
	KindMissingParameter ErrorKind = "MissingParameter"
	KindInvalidParameter ErrorKind = "InvalidParameter"
	KindNotFound         ErrorKind = "NotFound"
	KindConflict         ErrorKind = "Conflict"
	KindStoreFailure     ErrorKind = "StoreFailure"
)

// AppError carries a kind, a client facing message and the wrapped cause.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil && e.Message == "" {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// Status maps the kind onto an HTTP status code.
func (e *AppError) Status() int {
	switch e.Kind {
	case KindMissingParameter, KindInvalidParameter:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func MissingParameter(msg string) *AppError {
	return &AppError{Kind: KindMissingParameter, Message: msg}
}

func InvalidParameter(msg string, err error) *AppError {
	return &AppError{Kind: KindInvalidParameter, Message: msg, Err: err}
}

func NotFound(msg string) *AppError {
	return &AppError{Kind: KindNotFound, Message: msg}
}

func Conflict(msg string) *AppError {
	return &AppError{Kind: KindConflict, Message: msg}
}

// StoreFailure hands the caller the backend's own message, without the
// repository context wrapped around it. The full chain stays in Err.
func StoreFailure(err error) *AppError {
	return &AppError{Kind: KindStoreFailure, Message: rootCause(err).Error(), Err: err}
}

func rootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err), zap.String("path", c.Request.URL.Path))

				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Error: "Internal Server Error",
				})
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response. Errors that are not an
// AppError are reported as store failures.
func JSONError(c *gin.Context, err error) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = StoreFailure(err)
	}
	Logger := GetLogger()
	fields := []zap.Field{
		zap.String("kind", string(appErr.Kind)),
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Error(err),
	}
	if appErr.Err != nil {
		fields = append(fields, zap.NamedError("cause", appErr.Err))
	}
	if appErr.Status() >= http.StatusInternalServerError {
		Logger.Error("request failed", fields...)
	} else {
		Logger.Warn("request rejected", fields...)
	}
	c.JSON(appErr.Status(), ErrorResponse{Error: appErr.Error()})
}
