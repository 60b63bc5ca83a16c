package handler

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/gofiber/fiber/v2"

	"backendservice/internal/http/middleware"
	"backendservice/internal/service"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_SIZE", "NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// writeServiceError translates service error kinds into HTTP responses.
func writeServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrSizeTooLarge):
		msg := "size exceeds the configured limit"
		var limitErr *service.SizeLimitError
		if errors.As(err, &limitErr) {
			msg = fmt.Sprintf("size %s exceeds the %s limit",
				humanize.IBytes(uint64(limitErr.Size)), humanize.IBytes(uint64(limitErr.Limit)))
		}
		return writeError(c, fiber.StatusBadRequest, "SIZE_TOO_LARGE", msg)
	case errors.Is(err, service.ErrInvalidSize):
		return writeError(c, fiber.StatusBadRequest, "INVALID_SIZE", "Invalid size param. Use KB or MB.")
	case errors.Is(err, service.ErrInvalidPayload):
		return writeError(c, fiber.StatusBadRequest, "INVALID_PAYLOAD", "payload must be valid JSON")
	case errors.Is(err, service.ErrAssetUnresolved), errors.Is(err, service.ErrInvalidTransfer):
		return writeError(c, fiber.StatusBadRequest, "NOT_CREATED", "transfer not created")
	case errors.Is(err, service.ErrInvalidArgument):
		return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "bad request")
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "resource not found")
	case errors.Is(err, service.ErrConflict):
		return writeError(c, fiber.StatusConflict, "CONFLICT", "resource already exists")
	case errors.Is(err, service.ErrExportDisabled):
		return writeError(c, fiber.StatusServiceUnavailable, "EXPORT_DISABLED", "content export is not configured")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "PAYLOAD_TOO_LARGE", "payload too large")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
