package productcontroller

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Rahul77977/gagan-server/media"
	"github.com/Rahul77977/gagan-server/models"
)

func TestUploadCarouselImages(t *testing.T) {
	carousels := &fakeCarouselStore{}
	uploads := &fakeUploader{}
	r := newRouter(nil, func(r *gin.Engine) {
		r.POST("/uploadc", UploadCarouselImages(carousels, uploads))
	})

	body, contentType := multipartBody(t, nil, "images", 3)

	w := doForm(t, r, http.MethodPost, "/uploadc", body, contentType)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 3, uploads.uploaded)
	assert.Len(t, carousels.images, 3)
	resp := decodeBody(t, w)
	assert.Len(t, resp["images"], 3)
}

func TestUploadCarouselImagesNoFiles(t *testing.T) {
	carousels := &fakeCarouselStore{}
	r := newRouter(nil, func(r *gin.Engine) {
		r.POST("/uploadc", UploadCarouselImages(carousels, &fakeUploader{}))
	})

	body, contentType := multipartBody(t, map[string]string{"unrelated": "field"}, "", 0)

	w := doForm(t, r, http.MethodPost, "/uploadc", body, contentType)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No files were uploaded.", decodeBody(t, w)["message"])
}

func TestUploadCarouselImagesMidBatchFailureKeepsEarlierRecords(t *testing.T) {
	carousels := &fakeCarouselStore{}
	calls := 0
	// The second upload fails after the first record already exists.
	wrapped := &hookUploader{inner: &fakeUploader{}, before: func() error {
		calls++
		if calls == 2 {
			return errors.New("network reset")
		}
		return nil
	}}
	r := newRouter(nil, func(r *gin.Engine) {
		r.POST("/uploadc", UploadCarouselImages(carousels, wrapped))
	})

	body, contentType := multipartBody(t, nil, "images", 2)

	w := doForm(t, r, http.MethodPost, "/uploadc", body, contentType)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Len(t, carousels.images, 1)
}

func TestUpdateCarouselImage(t *testing.T) {
	img := &models.CarouselImage{ID: primitive.NewObjectID(), PublicID: "old", URL: "https://cdn.example.com/old"}
	carousels := &fakeCarouselStore{images: []*models.CarouselImage{img}}
	r := newRouter(nil, func(r *gin.Engine) {
		r.POST("/updatec/:id", UpdateCarouselImage(carousels))
	})

	body := `{"public_id":"new","url":"https://cdn.example.com/new"}`
	w := doJSON(t, r, http.MethodPost, "/updatec/"+img.ID.Hex(), body)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "new", img.PublicID)
	assert.Equal(t, "https://cdn.example.com/new", img.URL)
}

func TestUpdateCarouselImageValidation(t *testing.T) {
	img := &models.CarouselImage{ID: primitive.NewObjectID(), PublicID: "old", URL: "u"}
	carousels := &fakeCarouselStore{images: []*models.CarouselImage{img}}
	r := newRouter(nil, func(r *gin.Engine) {
		r.POST("/updatec/:id", UpdateCarouselImage(carousels))
	})

	w := doJSON(t, r, http.MethodPost, "/updatec/"+img.ID.Hex(), `{"public_id":"new"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Public ID and URL are required.", decodeBody(t, w)["message"])

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/updatec/%s", primitive.NewObjectID().Hex()), `{"public_id":"a","url":"b"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteCarouselImageBestEffortRemoteDeletion(t *testing.T) {
	img := &models.CarouselImage{ID: primitive.NewObjectID(), PublicID: "banner-1"}
	carousels := &fakeCarouselStore{images: []*models.CarouselImage{img}}
	uploads := &fakeUploader{destroyErr: map[string]error{"banner-1": errors.New("already removed")}}
	r := newRouter(nil, func(r *gin.Engine) {
		r.POST("/deletec/:id", DeleteCarouselImage(carousels, uploads))
	})

	w := doJSON(t, r, http.MethodPost, "/deletec/"+img.ID.Hex(), "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"banner-1"}, uploads.destroyed)
	require.Len(t, carousels.deleted, 1)
	assert.Equal(t, img.ID, carousels.deleted[0])
}

func TestGetCarouselImages(t *testing.T) {
	carousels := &fakeCarouselStore{images: []*models.CarouselImage{
		{ID: primitive.NewObjectID(), PublicID: "a"},
		{ID: primitive.NewObjectID(), PublicID: "b"},
	}}
	r := newRouter(nil, func(r *gin.Engine) {
		r.GET("/carousel-images", GetCarouselImages(carousels))
	})

	w := doJSON(t, r, http.MethodGet, "/carousel-images", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["images"], 2)
}

// hookUploader runs a callback before delegating each upload.
type hookUploader struct {
	inner  media.Uploader
	before func() error
}

func (h *hookUploader) Upload(ctx context.Context, data []byte, contentType string) (media.Asset, error) {
	if err := h.before(); err != nil {
		return media.Asset{}, err
	}
	return h.inner.Upload(ctx, data, contentType)
}

func (h *hookUploader) Destroy(ctx context.Context, publicID string) error {
	return h.inner.Destroy(ctx, publicID)
}
