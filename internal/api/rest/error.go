package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/flowdesk/wacrm/internal/domain"
	"github.com/flowdesk/wacrm/internal/logger"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	errCodeBadRequest       ErrorCode = "bad_request"
	errCodeNotFound         ErrorCode = "not_found"
	errCodeValidationFailed ErrorCode = "validation_failed"
	errCodeConflict         ErrorCode = "conflict"
	errCodeNameTaken        ErrorCode = "name_taken"
	errCodeTemplateInUse    ErrorCode = "template_in_use"
	errCodeImmutable        ErrorCode = "immutable"
	errCodeNoChannel        ErrorCode = "channel_not_configured"
	errCodeUnauthorized     ErrorCode = "unauthorized"

	// Server errors (5xx)
	errCodeInternalError ErrorCode = "internal_error"
)

// errorResponse represents a standardized error response
type errorResponse struct {
	Error errorDetail `json:"error"`
}

// errorDetail contains error information
type errorDetail struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, statusCode int, code ErrorCode, message string, details ...string) {
	response := errorResponse{
		Error: errorDetail{
			Code:    code,
			Message: message,
		},
	}

	if len(details) > 0 {
		response.Error.Details = details[0]
	}

	c.JSON(statusCode, response)
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusBadRequest, errCodeBadRequest, message, details...)
}

// respondNotFound sends a 404 Not Found response
func respondNotFound(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusNotFound, errCodeNotFound, message, details...)
}

// respondValidationError sends a 422 Unprocessable Entity response
func respondValidationError(c *gin.Context, details string) {
	respondWithError(c, http.StatusUnprocessableEntity, errCodeValidationFailed, "Validation failed", details)
}

// respondInternalError sends a 500 Internal Server Error response and logs the error
func respondInternalError(c *gin.Context, err error, message string, fields ...zap.Field) {
	logger.Error(err, fields...)
	respondWithError(c, http.StatusInternalServerError, errCodeInternalError, message)
}

// respondDomainError maps lifecycle errors onto HTTP responses. fallback is
// the message used when the error is not a recognized domain error.
func respondDomainError(c *gin.Context, err error, fallback string) {
	var conflictErr *domain.ConflictError
	var inUseErr *domain.TemplateInUseError
	var validationErr *domain.ValidationError

	switch {
	case errors.Is(err, domain.ErrTemplateNotFound):
		respondNotFound(c, "Template not found")
	case errors.Is(err, domain.ErrTemplateNameTaken):
		respondWithError(c, http.StatusConflict, errCodeNameTaken, err.Error())
	case errors.Is(err, domain.ErrApprovedImmutable):
		respondWithError(c, http.StatusConflict, errCodeImmutable, err.Error())
	case errors.Is(err, domain.ErrChannelNotFound):
		respondWithError(c, http.StatusUnprocessableEntity, errCodeNoChannel, err.Error())
	case errors.As(err, &conflictErr):
		respondWithError(c, http.StatusConflict, errCodeConflict, conflictErr.Error())
	case errors.As(err, &inUseErr):
		respondWithError(c, http.StatusConflict, errCodeTemplateInUse, inUseErr.Error())
	case errors.As(err, &validationErr):
		respondValidationError(c, validationErr.Error())
	default:
		respondInternalError(c, err, fallback)
	}
}
