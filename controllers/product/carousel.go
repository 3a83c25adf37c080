package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Rahul77977/gagan-server/media"
	"github.com/Rahul77977/gagan-server/models"
)

// UploadCarouselImages stores every uploaded file with the media host and
// records each as its own carousel image. Records created before a
// mid-batch failure are kept.
func UploadCarouselImages(carousels CarouselStore, uploads media.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		form, err := c.MultipartForm()
		if err != nil || len(form.File["images"]) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No files were uploaded."})
			return
		}

		ctx := c.Request.Context()
		var images []models.CarouselImage
		for _, fh := range form.File["images"] {
			asset, err := uploadFormFile(c, fh, uploads)
			if err != nil {
				zap.L().Error("carousel upload failed", zap.String("file", fh.Filename), zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error while uploading carousel images"})
				return
			}

			img := models.CarouselImage{PublicID: asset.PublicID, URL: asset.URL}
			if err := carousels.CreateCarouselImage(ctx, &img); err != nil {
				zap.L().Error("carousel record create failed", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error while uploading carousel images"})
				return
			}
			images = append(images, img)
		}

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Carousel images uploaded successfully.",
			"images":  images,
		})
	}
}

type updateCarouselRequest struct {
	PublicID string `json:"public_id"`
	URL      string `json:"url"`
}

// UpdateCarouselImage repoints a carousel record at a new remote asset.
func UpdateCarouselImage(carousels CarouselStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Image not found."})
			return
		}

		var req updateCarouselRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.PublicID == "" || req.URL == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Public ID and URL are required."})
			return
		}

		img, err := carousels.UpdateCarouselImage(c.Request.Context(), id, req.PublicID, req.URL)
		if err != nil {
			zap.L().Error("carousel update failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error while updating the image"})
			return
		}
		if img == nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Image not found."})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Image updated successfully.",
			"image":   img,
		})
	}
}

// DeleteCarouselImage removes the record after a best-effort remote
// deletion; a failed remote deletion is logged and does not block it.
func DeleteCarouselImage(carousels CarouselStore, uploads media.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Image not found."})
			return
		}

		ctx := c.Request.Context()
		img, err := carousels.CarouselImageByID(ctx, id)
		if err != nil {
			zap.L().Error("carousel lookup failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error while deleting the image"})
			return
		}
		if img == nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Image not found."})
			return
		}

		if err := uploads.Destroy(ctx, img.PublicID); err != nil {
			zap.L().Warn("carousel asset deletion failed",
				zap.String("publicId", img.PublicID),
				zap.Error(err))
		}

		if err := carousels.DeleteCarouselImage(ctx, id); err != nil {
			zap.L().Error("carousel delete failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error while deleting the image"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Image deleted successfully."})
	}
}

// GetCarouselImages lists every carousel image.
func GetCarouselImages(carousels CarouselStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		images, err := carousels.CarouselImages(c.Request.Context())
		if err != nil {
			zap.L().Error("carousel listing failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching carousel images"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "images": images})
	}
}
