package authcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Rahul77977/gagan-server/middleware"
	"github.com/Rahul77977/gagan-server/models"
)

func parseOrderStatus(s string) (models.OrderStatus, error) {
	switch status := models.OrderStatus(s); status {
	case models.OrderStatusNotProcess,
		models.OrderStatusProcessing,
		models.OrderStatusShipped,
		models.OrderStatusDelivered,
		models.OrderStatusCancelled:
		return status, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// GetUserOrders lists the caller's own orders, newest first. The buyer is
// resolved from the uid on the verified claims.
func GetUserOrders(users UserStore, orders OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := middleware.ClaimsFrom(c)
		if claims == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}
		ctx := c.Request.Context()

		user, err := users.FindUserByUID(ctx, claims.UID)
		if err != nil {
			zap.L().Error("buyer lookup failed", zap.String("uid", claims.UID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error while getting orders"})
			return
		}
		if user == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}

		list, err := orders.OrdersByBuyer(ctx, user.ID)
		if err != nil {
			zap.L().Error("order listing failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error while getting orders"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
	}
}

// GetOrderByID returns a single order. Access requires the order's buyer
// uid to match the caller's uid.
func GetOrderByID(users UserStore, orders OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := middleware.ClaimsFrom(c)
		if claims == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}
		ctx := c.Request.Context()

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
			return
		}

		order, err := orders.OrderByID(ctx, id)
		if err != nil {
			zap.L().Error("order lookup failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching order details"})
			return
		}
		if order == nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
			return
		}

		buyer, err := users.UserByID(ctx, order.Buyer)
		if err != nil {
			zap.L().Error("buyer lookup failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching order details"})
			return
		}
		if buyer == nil || buyer.UID != claims.UID {
			c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden. You cannot access this order."})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": order})
	}
}

// GetAdminOrders lists every order, newest first.
func GetAdminOrders(orders OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := orders.AllOrders(c.Request.Context())
		if err != nil {
			zap.L().Error("admin order listing failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error while getting orders"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
	}
}

type updateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatus sets an order's status to one of the known enum values.
func UpdateOrderStatus(orders OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("orderId"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
			return
		}

		var req updateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Status is required"})
			return
		}
		status, err := parseOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid order status"})
			return
		}

		order, err := orders.UpdateOrderStatus(c.Request.Context(), id, status)
		if err != nil {
			zap.L().Error("order status update failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error While Updating Order"})
			return
		}
		if order == nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}
