package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Rahul77977/gagan-server/storage"
)

type filterRequest struct {
	Checked []string  `json:"checked"`
	Radio   []float64 `json:"radio"`
}

// FilterProducts narrows the catalog by a category inclusion set and an
// optional two-element inclusive price range.
func FilterProducts(products ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req filterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid filter payload"})
			return
		}

		var filter storage.ProductFilter
		for _, raw := range req.Checked {
			id, err := primitive.ObjectIDFromHex(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid category id"})
				return
			}
			filter.Categories = append(filter.Categories, id)
		}

		// A price range only applies when exactly two bounds arrive.
		if len(req.Radio) == 2 {
			min, max := req.Radio[0], req.Radio[1]
			if min < 0 || max < min {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid price range"})
				return
			}
			filter.MinPrice = min
			filter.MaxPrice = max
			filter.Priced = true
		}

		list, err := products.FilterProducts(c.Request.Context(), filter)
		if err != nil {
			zap.L().Error("product filter failed", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error while filtering products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "products": list})
	}
}
