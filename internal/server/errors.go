package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	accountdomain "github.com/piadesu/attn-store/internal/account/domain"
	catalogdomain "github.com/piadesu/attn-store/internal/catalog/domain"
	debtdomain "github.com/piadesu/attn-store/internal/debt/domain"
	notificationdomain "github.com/piadesu/attn-store/internal/notification/domain"
	orderdomain "github.com/piadesu/attn-store/internal/order/domain"
	walletdomain "github.com/piadesu/attn-store/internal/wallet/domain"
	"gorm.io/gorm"
)

type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []FieldError `json:"errors"`
}

func (v ValidationErrors) Error() string {
	return "validation error"
}

type errorResponse struct {
	Error  string       `json:"error"`
	Fields []FieldError `json:"fields,omitempty"`
}

var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrNotFound        = errors.New("not_found")
	ErrInvalidRequest  = errors.New("invalid_request")
	ErrTooManyRequests = errors.New("too_many_requests")
	ErrInternal        = errors.New("internal_error")
)

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, payload)
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func invalidRequestError() error {
	return newValidationError("request", "invalid_request", "invalid request")
}

func newValidationError(field, code, message string) error {
	return &ValidationErrors{
		Errors: []FieldError{
			{
				Field:   field,
				Code:    code,
				Message: message,
			},
		},
	}
}

func mapError(err error) (int, errorResponse) {
	if err == nil {
		return http.StatusInternalServerError, errorResponse{Error: "internal server error"}
	}

	if vErr := asValidationErrors(err); vErr != nil {
		return http.StatusBadRequest, errorResponse{
			Error:  "validation error",
			Fields: vErr.Errors,
		}
	}

	switch {
	case errors.Is(err, accountdomain.ErrInvalidCredentials):
		// Unknown username and wrong password share one message.
		return http.StatusBadRequest, errorResponse{Error: "invalid username or password"}
	case errors.Is(err, ErrUnauthorized),
		errors.Is(err, accountdomain.ErrInvalidSession),
		errors.Is(err, accountdomain.ErrSessionExpired),
		errors.Is(err, accountdomain.ErrSessionRevoked):
		return http.StatusUnauthorized, errorResponse{Error: "unauthorized"}
	case errors.Is(err, ErrTooManyRequests):
		return http.StatusTooManyRequests, errorResponse{Error: "too many login attempts, try again later"}
	case isNotFoundError(err):
		return http.StatusNotFound, errorResponse{Error: "not found"}
	case isValidationError(err):
		code := err.Error()
		return http.StatusBadRequest, errorResponse{
			Error: strings.ReplaceAll(code, "_", " "),
			Fields: []FieldError{
				{
					Field:   validationErrorField(code),
					Code:    code,
					Message: strings.ReplaceAll(code, "_", " "),
				},
			},
		}
	default:
		return http.StatusInternalServerError, errorResponse{Error: "internal server error"}
	}
}

func asValidationErrors(err error) *ValidationErrors {
	var vErr *ValidationErrors
	if errors.As(err, &vErr) && vErr != nil {
		return vErr
	}
	return nil
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, catalogdomain.ErrInvalidName),
		errors.Is(err, catalogdomain.ErrInvalidStock),
		errors.Is(err, catalogdomain.ErrInvalidPrice),
		errors.Is(err, catalogdomain.ErrDuplicateName),
		errors.Is(err, catalogdomain.ErrCategoryNotFound),
		errors.Is(err, orderdomain.ErrInvalidStatus),
		errors.Is(err, orderdomain.ErrEmptyItems),
		errors.Is(err, orderdomain.ErrInvalidQty),
		errors.Is(err, orderdomain.ErrInvalidDate),
		errors.Is(err, orderdomain.ErrInsufficientStock),
		errors.Is(err, orderdomain.ErrProductNotFound),
		errors.Is(err, walletdomain.ErrInvalidApp),
		errors.Is(err, walletdomain.ErrInvalidDirection),
		errors.Is(err, walletdomain.ErrInvalidName),
		errors.Is(err, walletdomain.ErrInvalidMobile),
		errors.Is(err, walletdomain.ErrInvalidAmount),
		errors.Is(err, walletdomain.ErrInvalidDate),
		errors.Is(err, debtdomain.ErrInvalidName),
		errors.Is(err, debtdomain.ErrInvalidAmount),
		errors.Is(err, debtdomain.ErrInvalidDate),
		errors.Is(err, accountdomain.ErrInvalidUsername),
		errors.Is(err, accountdomain.ErrInvalidPassword),
		errors.Is(err, accountdomain.ErrInvalidName),
		errors.Is(err, accountdomain.ErrInvalidDate),
		errors.Is(err, accountdomain.ErrUsernameTaken),
		errors.Is(err, accountdomain.ErrAccountLimit):
		return true
	default:
		return false
	}
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, catalogdomain.ErrNotFound),
		errors.Is(err, catalogdomain.ErrInvalidID),
		errors.Is(err, orderdomain.ErrNotFound),
		errors.Is(err, orderdomain.ErrInvalidID),
		errors.Is(err, notificationdomain.ErrNotFound),
		errors.Is(err, notificationdomain.ErrInvalidID),
		errors.Is(err, accountdomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	default:
		return false
	}
}

func validationErrorField(code string) string {
	if code == "invalid_request" {
		return "request"
	}
	if strings.HasPrefix(code, "invalid_") {
		return strings.TrimPrefix(code, "invalid_")
	}
	return ""
}
