package httpserver

import (
	"errors"
	"net/http"

	"storefront-api/internal/domain"
	"storefront-api/internal/service/auth"
	"github.com/gin-gonic/gin"
)

// apiResponse is the envelope every endpoint answers with.
type apiResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, apiResponse{Success: true, Data: data})
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, apiResponse{Success: true, Message: message})
}

// respondError maps domain errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "internal error"

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrEmptyCart):
		status, message = http.StatusBadRequest, "cart is empty"
	case errors.Is(err, domain.ErrAddressLimit):
		status, message = http.StatusBadRequest, "address limit reached"
	case errors.Is(err, domain.ErrNotFound):
		status, message = http.StatusNotFound, "not found"
	case errors.Is(err, domain.ErrAlreadyExists):
		status, message = http.StatusConflict, "already exists"
	case errors.Is(err, domain.ErrStockExceeded):
		status, message = http.StatusConflict, "requested quantity exceeds available stock"
	case errors.Is(err, domain.ErrInvalidState):
		status, message = http.StatusConflict, "operation not allowed in current state"
	case errors.Is(err, domain.ErrInvalidTransition):
		status, message = http.StatusUnprocessableEntity, "illegal status transition"
	case errors.Is(err, domain.ErrPaymentFailed):
		status, message = http.StatusBadGateway, "payment failed"
	case errors.Is(err, auth.ErrInvalidCredentials):
		status, message = http.StatusUnauthorized, "invalid email or password"
	case errors.Is(err, auth.ErrInvalidToken):
		status, message = http.StatusUnauthorized, "invalid or expired token"
	}

	c.AbortWithStatusJSON(status, apiResponse{Success: false, Message: message})
}

func respondBadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, apiResponse{Success: false, Message: message})
}
