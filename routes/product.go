package routes

import (
	"github.com/gin-gonic/gin"

	productcontroller "github.com/Rahul77977/gagan-server/controllers/product"
	"github.com/Rahul77977/gagan-server/middleware"
)

// SetupProductRoutes registers the "/product/*" endpoints: product CRUD,
// retrieval/filtering, checkout, and the carousel images.
func SetupProductRoutes(api *gin.RouterGroup, deps Deps) {
	verify := middleware.VerifyToken(deps.Verifier)
	admin := middleware.RequireAdmin(deps.Store)

	productGroup := api.Group("/product")
	{
		// CRUD (admin only)
		productGroup.POST("/create-product", verify, admin, productcontroller.CreateProduct(deps.Store, deps.Uploads))
		productGroup.PUT("/update-product/:pid", verify, admin, productcontroller.UpdateProduct(deps.Store, deps.Uploads))
		productGroup.DELETE("/delete-product/:pid", verify, admin, productcontroller.DeleteProduct(deps.Store, deps.Uploads))

		// Retrieval
		productGroup.GET("/get-products", productcontroller.GetProducts(deps.Store))
		productGroup.GET("/get-product/:slug", productcontroller.GetSingleProduct(deps.Store))
		productGroup.GET("/product-photo/:pid", productcontroller.ProductPhotos(deps.Store))

		// Filtering and searching
		productGroup.POST("/product-filters", productcontroller.FilterProducts(deps.Store))
		productGroup.GET("/product-count", productcontroller.ProductCount(deps.Store))
		productGroup.GET("/product-list/:page", productcontroller.ProductList(deps.Store))
		productGroup.GET("/search/:keyword", productcontroller.SearchProducts(deps.Store))
		productGroup.GET("/similar-product/:pid/:cid", productcontroller.RelatedProducts(deps.Store))
		productGroup.GET("/product-category/:slug", productcontroller.ProductCategory(deps.Store, deps.Store))

		// Checkout
		productGroup.POST("/payment", verify, productcontroller.Payment(deps.Store))

		// Carousel images
		productGroup.POST("/uploadc", verify, admin, productcontroller.UploadCarouselImages(deps.Store, deps.Uploads))
		productGroup.POST("/updatec/:id", verify, admin, productcontroller.UpdateCarouselImage(deps.Store))
		productGroup.POST("/deletec/:id", verify, admin, productcontroller.DeleteCarouselImage(deps.Store, deps.Uploads))
		productGroup.GET("/carousel-images", productcontroller.GetCarouselImages(deps.Store))
	}
}
