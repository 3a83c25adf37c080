package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Rahul77977/gagan-server/auth"
)

// claimsKey is the gin context key the verified claims are stored under.
const claimsKey = "claims"

// VerifyToken authenticates the request against the identity issuer and
// stashes the decoded claims on the context for downstream handlers.
func VerifyToken(verifier auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		idToken := c.GetHeader("Authorization")
		if idToken == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		// Accept either a raw token or the conventional "Bearer " scheme.
		if strings.HasPrefix(idToken, "Bearer ") {
			idToken = strings.TrimPrefix(idToken, "Bearer ")
		}

		claims, err := verifier.Verify(c.Request.Context(), idToken)
		if err != nil {
			zap.L().Warn("token verification failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// ClaimsFrom returns the claims stored by VerifyToken, or nil when the
// route was not authenticated.
func ClaimsFrom(c *gin.Context) *auth.Claims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*auth.Claims)
	return claims
}

// SetClaims is a test hook for handlers exercised without VerifyToken.
func SetClaims(c *gin.Context, claims *auth.Claims) {
	c.Set(claimsKey, claims)
}
