package productcontroller

import (
	"context"
	"io"
	"mime/multipart"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Rahul77977/gagan-server/media"
	"github.com/Rahul77977/gagan-server/models"
	"github.com/Rahul77977/gagan-server/storage"
)

// Listing page sizes. The default storefront listing shows 12, the
// page-based listing 8, the category browse 6 per page.
const (
	defaultListLimit = 12
	listPerPage      = 8
	categoryPerPage  = 6
	relatedLimit     = 4
)

type ProductStore interface {
	CreateProduct(ctx context.Context, p *models.Product) error
	ProductBySlug(ctx context.Context, slug string) (*models.Product, error)
	ProductByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	LatestProducts(ctx context.Context, limit int64) ([]models.Product, error)
	ProductPage(ctx context.Context, page, perPage int64) ([]models.Product, error)
	FilterProducts(ctx context.Context, f storage.ProductFilter) ([]models.Product, error)
	SearchProducts(ctx context.Context, keyword string) ([]models.Product, error)
	RelatedProducts(ctx context.Context, categoryID, excludeID primitive.ObjectID, limit int64) ([]models.Product, error)
	ProductsByCategoryPage(ctx context.Context, categoryID primitive.ObjectID, page, perPage int64) ([]models.Product, int64, error)
	UpdateProduct(ctx context.Context, p *models.Product) error
	DeleteProduct(ctx context.Context, id primitive.ObjectID) error
	DecrementProductStock(ctx context.Context, id primitive.ObjectID, qty int) error
	CountProducts(ctx context.Context) (int64, error)
}

type CategoryStore interface {
	CreateCategory(ctx context.Context, cat *models.Category) error
	UpdateCategory(ctx context.Context, cat *models.Category) error
	Categories(ctx context.Context) ([]models.Category, error)
	CategoryBySlug(ctx context.Context, slug string) (*models.Category, error)
	CategoryByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error)
	DeleteCategory(ctx context.Context, id primitive.ObjectID) error
}

type CarouselStore interface {
	CreateCarouselImage(ctx context.Context, img *models.CarouselImage) error
	CarouselImages(ctx context.Context) ([]models.CarouselImage, error)
	CarouselImageByID(ctx context.Context, id primitive.ObjectID) (*models.CarouselImage, error)
	UpdateCarouselImage(ctx context.Context, id primitive.ObjectID, publicID, url string) (*models.CarouselImage, error)
	DeleteCarouselImage(ctx context.Context, id primitive.ObjectID) error
}

// CheckoutStore is what the payment handler touches: buyer resolution,
// order creation, and the per-item stock decrement.
type CheckoutStore interface {
	FindUserByUID(ctx context.Context, uid string) (*models.User, error)
	CreateOrder(ctx context.Context, order *models.Order) error
	DecrementProductStock(ctx context.Context, id primitive.ObjectID, qty int) error
}

// uploadFormImages pushes every "images" multipart file to the media host
// in order. A mid-batch failure returns the error without rolling back the
// uploads that already completed.
func uploadFormImages(c *gin.Context, uploads media.Uploader) ([]models.ProductImage, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil
	}

	var images []models.ProductImage
	for _, fh := range form.File["images"] {
		asset, err := uploadFormFile(c, fh, uploads)
		if err != nil {
			return images, err
		}
		images = append(images, models.ProductImage{PublicID: asset.PublicID, URL: asset.URL})
	}
	return images, nil
}

func uploadFormFile(c *gin.Context, fh *multipart.FileHeader, uploads media.Uploader) (media.Asset, error) {
	f, err := fh.Open()
	if err != nil {
		return media.Asset{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return media.Asset{}, err
	}
	return uploads.Upload(c.Request.Context(), data, fh.Header.Get("Content-Type"))
}
