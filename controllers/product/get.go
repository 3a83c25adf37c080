package productcontroller

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// GetProducts is the default storefront listing: at most 12 products,
// newest created first.
func GetProducts(products ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := products.LatestProducts(c.Request.Context(), defaultListLimit)
		if err != nil {
			zap.L().Error("product listing failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error in getting products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"countTotal": len(list),
			"message":    "All Products",
			"products":   list,
		})
	}
}

// GetSingleProduct fetches one product by its derived slug.
func GetSingleProduct(products ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := products.ProductBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			zap.L().Error("product lookup failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error while getting single product"})
			return
		}
		if product == nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Single Product Fetched",
			"product": product,
		})
	}
}

// ProductPhotos returns the hosted image list of one product.
func ProductPhotos(products ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("pid"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "No images found for this product"})
			return
		}
		product, err := products.ProductByID(c.Request.Context(), id)
		if err != nil {
			zap.L().Error("product lookup failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error while getting photos"})
			return
		}
		if product == nil || len(product.Images) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "No images found for this product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "images": product.Images})
	}
}

// ProductCount returns the total number of products.
func ProductCount(products ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		total, err := products.CountProducts(c.Request.Context())
		if err != nil {
			zap.L().Error("product count failed", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error while counting products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "total": total})
	}
}

// ProductList pages through products 8 at a time, newest first. Pages are
// 1-indexed; an absent or non-numeric page falls back to 1.
func ProductList(products ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := strconv.ParseInt(c.Param("page"), 10, 64)
		if err != nil || page < 1 {
			page = 1
		}

		ctx := c.Request.Context()
		list, err := products.ProductPage(ctx, page, listPerPage)
		if err != nil {
			zap.L().Error("product page failed", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error in per page product list"})
			return
		}
		total, err := products.CountProducts(ctx)
		if err != nil {
			zap.L().Error("product count failed", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error in per page product list"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"products": list,
			"total":    total,
			"perPage":  listPerPage,
			"page":     page,
		})
	}
}

// SearchProducts matches the keyword case-insensitively against product
// names and descriptions.
func SearchProducts(products ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		results, err := products.SearchProducts(c.Request.Context(), c.Param("keyword"))
		if err != nil {
			zap.L().Error("product search failed", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error In Search Product API"})
			return
		}
		c.JSON(http.StatusOK, results)
	}
}

// RelatedProducts lists up to 4 other products from the same category.
func RelatedProducts(products ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		pid, err := primitive.ObjectIDFromHex(c.Param("pid"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid product id"})
			return
		}
		cid, err := primitive.ObjectIDFromHex(c.Param("cid"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid category id"})
			return
		}

		list, err := products.RelatedProducts(c.Request.Context(), cid, pid, relatedLimit)
		if err != nil {
			zap.L().Error("related products failed", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error in related product list"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "products": list})
	}
}

// ProductCategory pages through one category's products, resolved by the
// category slug. Defaults: page 1, 6 per page.
func ProductCategory(products ProductStore, categories CategoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, pageErr := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
		perPage, limitErr := strconv.ParseInt(c.DefaultQuery("limit", strconv.Itoa(categoryPerPage)), 10, 64)
		if pageErr != nil || limitErr != nil || page <= 0 || perPage <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid pagination parameters."})
			return
		}

		ctx := c.Request.Context()
		category, err := categories.CategoryBySlug(ctx, c.Param("slug"))
		if err != nil {
			zap.L().Error("category lookup failed", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error while getting products"})
			return
		}
		if category == nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Category not found."})
			return
		}

		list, total, err := products.ProductsByCategoryPage(ctx, category.ID, page, perPage)
		if err != nil {
			zap.L().Error("category page failed", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error while getting products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":       true,
			"category":      category,
			"products":      list,
			"totalProducts": total,
			"totalPages":    int64(math.Ceil(float64(total) / float64(perPage))),
			"currentPage":   page,
		})
	}
}
