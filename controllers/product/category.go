package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Rahul77977/gagan-server/media"
	"github.com/Rahul77977/gagan-server/models"
)

// CreateCategory creates a category from a multipart form with an optional
// single "image" file.
func CreateCategory(categories CategoryStore, uploads media.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Name is required"})
			return
		}

		category := &models.Category{
			Name: name,
			Slug: slug.Make(name),
		}

		if fh, err := c.FormFile("image"); err == nil {
			asset, err := uploadFormFile(c, fh, uploads)
			if err != nil {
				zap.L().Error("category image upload failed", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error in Category"})
				return
			}
			category.Image = asset.URL
		}

		if err := categories.CreateCategory(c.Request.Context(), category); err != nil {
			zap.L().Error("category create failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error in Category"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success":  true,
			"message":  "New category created",
			"category": category,
		})
	}
}

// UpdateCategory partially updates a category; a new name re-derives the
// slug, a new image replaces the stored URL.
func UpdateCategory(categories CategoryStore, uploads media.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Category not found"})
			return
		}

		ctx := c.Request.Context()
		category, err := categories.CategoryByID(ctx, id)
		if err != nil {
			zap.L().Error("category lookup failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error while updating category"})
			return
		}
		if category == nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Category not found"})
			return
		}

		if name := c.PostForm("name"); name != "" {
			category.Name = name
			category.Slug = slug.Make(name)
		}
		if fh, err := c.FormFile("image"); err == nil {
			asset, err := uploadFormFile(c, fh, uploads)
			if err != nil {
				zap.L().Error("category image upload failed", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error while updating category"})
				return
			}
			category.Image = asset.URL
		}

		if err := categories.UpdateCategory(ctx, category); err != nil {
			zap.L().Error("category update failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error while updating category"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"message":  "Category Updated Successfully",
			"category": category,
		})
	}
}

// GetAllCategories lists every category.
func GetAllCategories(categories CategoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := categories.Categories(c.Request.Context())
		if err != nil {
			zap.L().Error("category listing failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error while getting all categories"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"message":  "All Categories List",
			"category": list,
		})
	}
}

// SingleCategory fetches one category by slug.
func SingleCategory(categories CategoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		category, err := categories.CategoryBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			zap.L().Error("category lookup failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error While getting Single Category"})
			return
		}
		if category == nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Category not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"message":  "Get Single Category Successfully",
			"category": category,
		})
	}
}

// DeleteCategory removes the category record. Products referencing it keep
// their soft reference; nothing cascades.
func DeleteCategory(categories CategoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Category not found"})
			return
		}

		if err := categories.DeleteCategory(c.Request.Context(), id); err != nil {
			zap.L().Error("category delete failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error while deleting category"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Category Deleted Successfully"})
	}
}
