package authcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetTotalCounts returns the dashboard aggregate: user/product/order counts
// and the summed payment amount across all orders. The sum iterates the
// payment sub-records client-side; fine at this scale.
func GetTotalCounts(store CountStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		totalUsers, err := store.CountUsers(ctx)
		if err != nil {
			zap.L().Error("user count failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch counts"})
			return
		}
		totalProducts, err := store.CountProducts(ctx)
		if err != nil {
			zap.L().Error("product count failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch counts"})
			return
		}
		totalOrders, err := store.CountOrders(ctx)
		if err != nil {
			zap.L().Error("order count failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch counts"})
			return
		}

		payments, err := store.OrderPayments(ctx)
		if err != nil {
			zap.L().Error("payment load failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch counts"})
			return
		}
		var totalSales float64
		for _, p := range payments {
			totalSales += p.Amount
		}

		c.JSON(http.StatusOK, gin.H{
			"success":       true,
			"totalUsers":    totalUsers,
			"totalProducts": totalProducts,
			"totalOrders":   totalOrders,
			"totalSales":    totalSales,
		})
	}
}
