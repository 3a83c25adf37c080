package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Rahul77977/gagan-server/media"
	"github.com/Rahul77977/gagan-server/models"
)

// CreateProduct creates a product from a multipart form with optional
// "images" files. Required fields are checked in a fixed order and the
// first missing one names the error.
func CreateProduct(products ProductStore, uploads media.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		description := c.PostForm("description")
		priceStr := c.PostForm("price")
		categoryStr := c.PostForm("category")
		stockStr := c.PostForm("stock")
		shippingStr := c.PostForm("shipping")
		discountedPriceStr := c.PostForm("discountedPrice")
		discountStr := c.PostForm("discount")
		ratingStr := c.PostForm("rating")

		// Fixed declaration order; stock may be zero but not absent.
		switch {
		case name == "":
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name is Required"})
			return
		case description == "":
			c.JSON(http.StatusBadRequest, gin.H{"error": "Description is Required"})
			return
		case priceStr == "":
			c.JSON(http.StatusBadRequest, gin.H{"error": "Price is Required"})
			return
		case categoryStr == "":
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category is Required"})
			return
		case stockStr == "":
			c.JSON(http.StatusBadRequest, gin.H{"error": "Stock is Required"})
			return
		case discountedPriceStr == "":
			c.JSON(http.StatusBadRequest, gin.H{"error": "Discounted Price is Required"})
			return
		case discountStr == "":
			c.JSON(http.StatusBadRequest, gin.H{"error": "Discount is Required"})
			return
		case ratingStr == "":
			c.JSON(http.StatusBadRequest, gin.H{"error": "Rating is Required"})
			return
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}
		discountedPrice, err := strconv.ParseFloat(discountedPriceStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid discountedPrice"})
			return
		}
		discount, err := strconv.ParseFloat(discountStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid discount"})
			return
		}
		rating, err := strconv.ParseFloat(ratingStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rating"})
			return
		}
		stock, err := strconv.Atoi(stockStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock"})
			return
		}
		categoryID, err := primitive.ObjectIDFromHex(categoryStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
			return
		}

		images, err := uploadFormImages(c, uploads)
		if err != nil {
			zap.L().Error("product image upload failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error in creating product"})
			return
		}

		product := &models.Product{
			Name:            name,
			Slug:            slug.Make(name),
			Description:     description,
			Price:           price,
			DiscountedPrice: discountedPrice,
			Discount:        discount,
			Rating:          rating,
			Category:        categoryID,
			Stock:           stock,
			Images:          images,
			Shipping:        shippingStr == "Yes" || shippingStr == "true",
		}

		if err := products.CreateProduct(c.Request.Context(), product); err != nil {
			zap.L().Error("product create failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error in creating product"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Product Created Successfully",
			"product": product,
		})
	}
}
