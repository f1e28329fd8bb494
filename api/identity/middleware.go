// Package identity guards API routes with bearer tokens.
package identity

import (
	"net/http"
	"strings"

	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
)

const (
	// ContextClaims is the key used to store access claims in the Gin context.
	ContextClaims = "accessClaims"
)

// Authorize rejects requests without a valid bearer token carrying scope.
func Authorize(ts i.Tokenizer, scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Retrieve the access token from the Authorization header.
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		// Split the "Bearer" prefix from the token.
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		claims, err := ts.Decode(parts[1])
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		if scope != "" && !claims.HasScope(scope) {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		// Attach claims to the request context for further use.
		c.Set(ContextClaims, claims)
		c.Next()
	}
}
