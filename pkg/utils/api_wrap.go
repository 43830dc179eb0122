package utils

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type APIResponse struct {
	Status  string       `json:"status"`
	Code    int          `json:"code"`
	Message string       `json:"message,omitempty"`
	TraceID string       `json:"trace_id,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
	Data    interface{}  `json:"data,omitempty"`
}

type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func traceID(c *gin.Context) string {
	id, _ := c.Get("trace_id")
	s, _ := id.(string)
	return s
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// RespondBindingError turns a gin binding failure into a 400 with
// per-field detail when the underlying error is a validator error.
func RespondBindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, FieldError{
				Field:  fe.Field(),
				Reason: fe.Tag(),
			})
		}
		c.JSON(http.StatusBadRequest, APIResponse{
			Status:  "error",
			Code:    http.StatusBadRequest,
			Message: "Validation error",
			TraceID: traceID(c),
			Errors:  fields,
		})
		return
	}

	RespondError(c, http.StatusBadRequest, "Invalid request format")
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		RespondError(c, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Incorrect username or password")
	case errors.Is(err, ErrUsernameTaken):
		RespondError(c, http.StatusBadRequest, "Username already exists")
	case errors.Is(err, ErrChannelExists):
		RespondError(c, http.StatusBadRequest, "Channel already exists for this user")
	case errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, "Account not found")
	case errors.Is(err, ErrChannelNotFound):
		RespondError(c, http.StatusNotFound, "Channel not found")
	case errors.Is(err, ErrPredictionNotFound):
		RespondError(c, http.StatusNotFound, "Prediction not found")
	case errors.Is(err, ErrPredictionResolved):
		RespondError(c, http.StatusBadRequest, "Prediction already resolved")
	case errors.Is(err, ErrSettingsNotFound):
		RespondError(c, http.StatusNotFound, "Settings not found")
	case errors.Is(err, ErrForbidden):
		RespondError(c, http.StatusForbidden, "You don't have access to this resource")
	case errors.Is(err, ErrInvalidOAuthState):
		RespondError(c, http.StatusBadRequest, "Invalid state parameter")
	case errors.Is(err, ErrTwitchAccountInUse):
		RespondError(c, http.StatusBadRequest, "Twitch account is already linked to another user")
	case errors.Is(err, ErrMissingTwitchConfig):
		RespondError(c, http.StatusInternalServerError, "Missing Twitch API credentials")
	case errors.Is(err, ErrTokenExchangeFailed):
		respondTokenExchangeError(c, err)
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

func respondTokenExchangeError(c *gin.Context, err error) {
	var exchangeErr *TokenExchangeError
	var detail interface{}
	if errors.As(err, &exchangeErr) && len(exchangeErr.ProviderBody) > 0 {
		var payload json.RawMessage
		if json.Unmarshal(exchangeErr.ProviderBody, &payload) == nil {
			detail = gin.H{"provider_error": payload}
		} else {
			detail = gin.H{"provider_error": string(exchangeErr.ProviderBody)}
		}
	}
	c.JSON(http.StatusBadRequest, APIResponse{
		Status:  "error",
		Code:    http.StatusBadRequest,
		Message: "Failed to get access token",
		TraceID: traceID(c),
		Data:    detail,
	})
}
