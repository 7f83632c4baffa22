package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/light-bringer/storefront-service/internal/auth"
)

// principalKey is the gin context key carrying the caller identity.
const principalKey = "principal"

// AuthMiddleware resolves the bearer token to a Principal and stores
// it on the request context. Requests without a token proceed
// anonymously; operations that need an identity reject them later.
func AuthMiddleware(sessions *auth.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		token, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		principal, err := sessions.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// currentPrincipal returns the caller identity, or nil for anonymous
// requests.
func currentPrincipal(c *gin.Context) *auth.Principal {
	value, ok := c.Get(principalKey)
	if !ok {
		return nil
	}
	principal, ok := value.(*auth.Principal)
	if !ok {
		return nil
	}
	return principal
}
