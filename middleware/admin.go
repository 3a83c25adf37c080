package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Rahul77977/gagan-server/models"
)

// UserLookup resolves a local user record by the identity provider's uid.
// A nil user with a nil error means no such record exists.
type UserLookup interface {
	FindUserByUID(ctx context.Context, uid string) (*models.User, error)
}

// RequireAdmin allows the chained handler to run only when the caller's
// local user record exists and carries the admin flag. It must be composed
// after VerifyToken.
func RequireAdmin(users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := ClaimsFrom(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		user, err := users.FindUserByUID(c.Request.Context(), claims.UID)
		if err != nil {
			zap.L().Error("admin lookup failed", zap.String("uid", claims.UID), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			return
		}
		if user == nil || !user.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "You are not an admin"})
			return
		}

		c.Next()
	}
}
