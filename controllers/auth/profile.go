package authcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Rahul77977/gagan-server/middleware"
	"github.com/Rahul77977/gagan-server/models"
)

// UserProfile returns a single user's profile. Non-admin callers may only
// read their own profile; ownership compares the identity provider's uid,
// never the internal document id.
func UserProfile(users UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := middleware.ClaimsFrom(c)
		if claims == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}
		ctx := c.Request.Context()

		id, err := primitive.ObjectIDFromHex(c.Param("userId"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}

		requester, err := users.FindUserByUID(ctx, claims.UID)
		if err != nil {
			zap.L().Error("requester lookup failed", zap.String("uid", claims.UID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}
		isAdmin := requester != nil && requester.IsAdmin

		user, err := users.UserByID(ctx, id)
		if err != nil {
			zap.L().Error("profile lookup failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}
		if user == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}

		if !isAdmin && user.UID != claims.UID {
			c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden. You can't access this profile."})
			return
		}

		c.JSON(http.StatusOK, gin.H{"userData": gin.H{
			"uid":         user.UID,
			"name":        user.Name,
			"email":       user.Email,
			"picture":     user.Picture,
			"phoneNumber": user.PhoneNumber,
			"isAdmin":     user.IsAdmin,
		}})
	}
}

type updateProfileRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Picture string `json:"picture"`
}

// UpdateProfile partially updates the caller's own profile. Empty fields
// are treated as absent.
func UpdateProfile(users UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := middleware.ClaimsFrom(c)
		if claims == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		var req updateProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request payload"})
			return
		}

		var upd models.UserUpdate
		if req.Name != "" {
			upd.Name = &req.Name
		}
		if req.Phone != "" {
			upd.PhoneNumber = &req.Phone
		}
		if req.Picture != "" {
			upd.Picture = &req.Picture
		}

		user, err := users.UpdateUserByUID(c.Request.Context(), claims.UID, upd)
		if err != nil {
			zap.L().Error("profile update failed", zap.String("uid", claims.UID), zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error While Updating Profile"})
			return
		}
		if user == nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":     true,
			"message":     "Profile Updated Successfully",
			"updatedUser": user,
		})
	}
}

// GetAllUsers lists every user record.
func GetAllUsers(users UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := users.Users(c.Request.Context())
		if err != nil {
			zap.L().Error("user listing failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"users": list})
	}
}
