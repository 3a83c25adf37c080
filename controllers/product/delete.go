package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Rahul77977/gagan-server/media"
)

// DeleteProduct removes a product and best-effort deletes each of its
// hosted images first. A failed remote deletion is logged and skipped, so
// orphaned remote assets are a known possible outcome.
func DeleteProduct(products ProductStore, uploads media.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("pid"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
			return
		}

		ctx := c.Request.Context()
		product, err := products.ProductByID(ctx, id)
		if err != nil {
			zap.L().Error("product lookup failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error while deleting product"})
			return
		}
		if product == nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
			return
		}

		for _, image := range product.Images {
			if err := uploads.Destroy(ctx, image.PublicID); err != nil {
				zap.L().Warn("image deletion failed",
					zap.String("publicId", image.PublicID),
					zap.Error(err))
			}
		}

		if err := products.DeleteProduct(ctx, id); err != nil {
			zap.L().Error("product delete failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error while deleting product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deleted successfully"})
	}
}
