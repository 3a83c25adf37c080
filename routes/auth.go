package routes

import (
	"github.com/gin-gonic/gin"

	authcontroller "github.com/Rahul77977/gagan-server/controllers/auth"
	"github.com/Rahul77977/gagan-server/middleware"
)

// SetupAuthRoutes registers the "/auth/*" endpoints: login upsert, profile,
// user listing, orders, and the dashboard counts.
func SetupAuthRoutes(api *gin.RouterGroup, deps Deps) {
	verify := middleware.VerifyToken(deps.Verifier)
	admin := middleware.RequireAdmin(deps.Store)

	authGroup := api.Group("/auth")
	{
		authGroup.GET("/token-info", verify, authcontroller.TokenInfo())
		authGroup.POST("/googleAuth", verify, authcontroller.GoogleAuth(deps.Store))

		authGroup.GET("/users", verify, authcontroller.GetAllUsers(deps.Store))
		authGroup.GET("/profile/:userId", verify, authcontroller.UserProfile(deps.Store))
		authGroup.PUT("/profile", verify, authcontroller.UpdateProfile(deps.Store))

		authGroup.GET("/orders", verify, authcontroller.GetUserOrders(deps.Store, deps.Store))
		authGroup.GET("/orders/:id", verify, authcontroller.GetOrderByID(deps.Store, deps.Store))

		authGroup.GET("/all-orders", verify, admin, authcontroller.GetAdminOrders(deps.Store))
		authGroup.PUT("/order-status/:orderId", verify, authcontroller.UpdateOrderStatus(deps.Store))

		// Dashboard counts; registered without auth middleware.
		authGroup.GET("/total-counts", authcontroller.GetTotalCounts(deps.Store))
	}
}
