package routes

import (
	"github.com/gin-gonic/gin"

	productcontroller "github.com/Rahul77977/gagan-server/controllers/product"
	"github.com/Rahul77977/gagan-server/middleware"
)

// SetupCategoryRoutes registers the "/category/*" endpoints. Mutations
// require the admin guard; reads are public or token-only.
func SetupCategoryRoutes(api *gin.RouterGroup, deps Deps) {
	verify := middleware.VerifyToken(deps.Verifier)
	admin := middleware.RequireAdmin(deps.Store)

	categoryGroup := api.Group("/category")
	{
		categoryGroup.POST("/create-category", verify, admin, productcontroller.CreateCategory(deps.Store, deps.Uploads))
		categoryGroup.PUT("/update-category/:id", verify, admin, productcontroller.UpdateCategory(deps.Store, deps.Uploads))
		categoryGroup.GET("/get-category", productcontroller.GetAllCategories(deps.Store))
		categoryGroup.GET("/single-category/:slug", verify, productcontroller.SingleCategory(deps.Store))
		categoryGroup.DELETE("/delete-category/:id", verify, admin, productcontroller.DeleteCategory(deps.Store))
	}
}
