package authcontroller

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Rahul77977/gagan-server/middleware"
	"github.com/Rahul77977/gagan-server/models"
)

// UserStore is the slice of the document store the auth handlers need.
type UserStore interface {
	FindUserByUID(ctx context.Context, uid string) (*models.User, error)
	UserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUserByUID(ctx context.Context, uid string, upd models.UserUpdate) (*models.User, error)
	Users(ctx context.Context) ([]models.User, error)
}

type OrderStore interface {
	OrdersByBuyer(ctx context.Context, buyerID primitive.ObjectID) ([]models.Order, error)
	OrderByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	UpdateOrderStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus) (*models.Order, error)
	AllOrders(ctx context.Context) ([]models.Order, error)
}

type CountStore interface {
	CountUsers(ctx context.Context) (int64, error)
	CountProducts(ctx context.Context) (int64, error)
	CountOrders(ctx context.Context) (int64, error)
	OrderPayments(ctx context.Context) ([]models.Payment, error)
}

// GoogleAuth resolves the verified claims to a local user, creating the
// record on first login. Identity lives entirely with the external issuer;
// no local token is minted.
func GoogleAuth(users UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := middleware.ClaimsFrom(c)
		if claims == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		ctx := c.Request.Context()
		user, err := users.FindUserByUID(ctx, claims.UID)
		if err != nil {
			zap.L().Error("user lookup failed", zap.String("uid", claims.UID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			return
		}

		if user == nil {
			user = &models.User{
				UID:         claims.UID,
				Name:        claims.Name,
				Email:       claims.Email,
				Picture:     claims.Picture,
				PhoneNumber: claims.PhoneNumber,
			}
			if err := users.CreateUser(ctx, user); err != nil {
				zap.L().Error("user create failed", zap.String("uid", claims.UID), zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
				return
			}
		}

		c.JSON(http.StatusOK, user)
	}
}

// TokenInfo echoes the verified claims back to the caller.
func TokenInfo() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"tokenInfo": middleware.ClaimsFrom(c)})
	}
}
