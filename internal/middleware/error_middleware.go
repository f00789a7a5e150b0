package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/lmrivero/chatsurvey/internal/app/models/dto"
	"github.com/lmrivero/chatsurvey/internal/pkg/apperrors"
	"github.com/lmrivero/chatsurvey/internal/pkg/logger"
)

// HandleAPIError maps an error from the service layer to the wire response.
// Binding errors from gin (validator.ValidationErrors) are translated to
// field-level messages; anything unrecognized becomes a 500.
func HandleAPIError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponseWithDetail("Validation failed", formatValidationErrors(validationErrs)))
		return
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	status := statusForError(err)
	if status == http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
		response := dto.NewErrorResponse("Internal server error")
		if gin.Mode() != gin.ReleaseMode {
			response = dto.NewErrorResponseWithDetail("Internal server error", err.Error())
		}
		c.JSON(status, response)
		return
	}

	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Message != "" {
		c.JSON(status, dto.NewErrorResponse(customErr.Message))
		return
	}

	c.JSON(status, dto.NewErrorResponse(messageForError(err)))
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrDuplicateIdentity),
		errors.Is(err, apperrors.ErrSelfDeletion):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, apperrors.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func messageForError(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrUserNotFound):
		return "User not found"
	case errors.Is(err, apperrors.ErrSurveyNotFound):
		return "Survey not found"
	case errors.Is(err, apperrors.ErrDuplicateIdentity):
		return "Username or email already registered"
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return "Invalid credentials"
	case errors.Is(err, apperrors.ErrSelfDeletion):
		return "You cannot delete your own account"
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return "You don't have permission to perform this action"
	case errors.Is(err, apperrors.ErrUnauthenticated):
		return "Authentication required"
	default:
		return err.Error()
	}
}

func formatValidationErrors(errs validator.ValidationErrors) string {
	messages := make([]string, 0, len(errs))
	for _, fieldErr := range errs {
		messages = append(messages, formatFieldError(fieldErr))
	}
	return strings.Join(messages, "; ")
}

func formatFieldError(fieldErr validator.FieldError) string {
	field := fieldErr.Field()
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fieldErr.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fieldErr.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fieldErr.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
