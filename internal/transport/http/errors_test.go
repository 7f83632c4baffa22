package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	accountdomain "github.com/light-bringer/storefront-service/internal/app/account/domain"
	catalogdomain "github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	orderdomain "github.com/light-bringer/storefront-service/internal/app/order/domain"
	"github.com/light-bringer/storefront-service/internal/auth"
)

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation", catalogdomain.ErrInvalidPrice, http.StatusBadRequest},
		{"wrapped validation", fmt.Errorf("create: %w", catalogdomain.ErrEmptyName), http.StatusBadRequest},
		{"unauthenticated", auth.ErrUnauthenticated, http.StatusUnauthorized},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"bad credentials", accountdomain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"forbidden", auth.ErrForbidden, http.StatusForbidden},
		{"self guard", auth.ErrSelfAction, http.StatusForbidden},
		{"product not found", catalogdomain.ErrProductNotFound, http.StatusNotFound},
		{"user not found", accountdomain.ErrUserNotFound, http.StatusNotFound},
		{"order not found", orderdomain.ErrOrderNotFound, http.StatusNotFound},
		{"email taken", accountdomain.ErrEmailTaken, http.StatusConflict},
		{"unexpected", fmt.Errorf("spanner unavailable"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(recorder)

			respondError(c, "test operation", tt.err)

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

func TestRespondError_UnexpectedHidesDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)

	respondError(c, "list products", fmt.Errorf("session pool exhausted at 10.0.0.3"))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "10.0.0.3")
	assert.Contains(t, recorder.Body.String(), "failed to list products")
}
