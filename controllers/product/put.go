package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Rahul77977/gagan-server/media"
)

// UpdateProduct applies a partial multipart update. String and numeric
// fields are only overwritten by non-zero values; stock alone distinguishes
// "absent" from an explicit 0. New "images" files replace the image list.
func UpdateProduct(products ProductStore, uploads media.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("pid"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is Required"})
			return
		}

		ctx := c.Request.Context()
		product, err := products.ProductByID(ctx, id)
		if err != nil {
			zap.L().Error("product lookup failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error in updating product"})
			return
		}
		if product == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product Not Found"})
			return
		}

		if v := c.PostForm("name"); v != "" {
			product.Name = v
		}
		if v := c.PostForm("description"); v != "" {
			product.Description = v
		}
		if v := parseFloatField(c, "price"); v != nil && *v != 0 {
			product.Price = *v
		}
		if v := c.PostForm("category"); v != "" {
			categoryID, err := primitive.ObjectIDFromHex(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
				return
			}
			product.Category = categoryID
		}
		// Stock is presence-checked so an explicit 0 still applies.
		if v, ok := c.GetPostForm("stock"); ok {
			stock, err := strconv.Atoi(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock"})
				return
			}
			product.Stock = stock
		}
		if v := c.PostForm("shipping"); v != "" {
			product.Shipping = v == "Yes" || v == "true"
		}
		if v := parseFloatField(c, "discountedPrice"); v != nil && *v != 0 {
			product.DiscountedPrice = *v
		}
		if v := parseFloatField(c, "discount"); v != nil && *v != 0 {
			product.Discount = *v
		}
		if v := parseFloatField(c, "rating"); v != nil && *v != 0 {
			product.Rating = *v
		}

		// Replaced images leave the previous remote assets behind.
		if images, err := uploadFormImages(c, uploads); err != nil {
			zap.L().Error("product image upload failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error in updating product"})
			return
		} else if len(images) > 0 {
			product.Images = images
		}

		if err := products.UpdateProduct(ctx, product); err != nil {
			zap.L().Error("product update failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error in updating product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Product Updated Successfully",
			"product": product,
		})
	}
}

func parseFloatField(c *gin.Context, field string) *float64 {
	v := c.PostForm(field)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}
