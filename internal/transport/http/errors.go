// Package http exposes the application over a JSON API.
package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	accountdomain "github.com/light-bringer/storefront-service/internal/app/account/domain"
	catalogdomain "github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	orderdomain "github.com/light-bringer/storefront-service/internal/app/order/domain"
	"github.com/light-bringer/storefront-service/internal/auth"
)

// respondError maps a domain error to its status code and writes the
// error envelope. Unexpected errors are logged with the operation name
// and answered with a generic message so internals never leak.
func respondError(c *gin.Context, operation string, err error) {
	switch {
	case isValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.Is(err, auth.ErrUnauthenticated),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, accountdomain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})

	case errors.Is(err, auth.ErrForbidden),
		errors.Is(err, auth.ErrSelfAction):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})

	case errors.Is(err, catalogdomain.ErrProductNotFound),
		errors.Is(err, accountdomain.ErrUserNotFound),
		errors.Is(err, orderdomain.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.Is(err, accountdomain.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	default:
		log.Printf("%s: %v", operation, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to " + operation})
	}
}

// isValidationError reports whether the error is an input problem the
// caller can fix.
func isValidationError(err error) bool {
	for _, sentinel := range []error{
		catalogdomain.ErrEmptyName,
		catalogdomain.ErrInvalidPrice,
		catalogdomain.ErrInvalidInventory,
		catalogdomain.ErrInvalidCategory,
		accountdomain.ErrEmptyName,
		accountdomain.ErrInvalidEmail,
		accountdomain.ErrWeakPassword,
		accountdomain.ErrInvalidRole,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
