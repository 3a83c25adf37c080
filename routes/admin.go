package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	admincontroller "github.com/Rahul77977/gagan-server/controllers/admin"
	authcontroller "github.com/Rahul77977/gagan-server/controllers/auth"
	"github.com/Rahul77977/gagan-server/middleware"
)

// SetupAdminRoutes registers the "/admin/*" endpoints.
func SetupAdminRoutes(api *gin.RouterGroup, deps Deps) {
	verify := middleware.VerifyToken(deps.Verifier)
	admin := middleware.RequireAdmin(deps.Store)

	adminGroup := api.Group("/admin")
	{
		adminGroup.GET("/users", verify, admin, authcontroller.GetAllUsers(deps.Store))
		adminGroup.GET("/users/export-excel", verify, admin, admincontroller.ExportUsersToExcel(deps.Store))

		adminGroup.GET("/admin-auth", verify, admin, func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true, "message": "welcome admin"})
		})
		adminGroup.GET("/user-auth", verify, func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})
	}
}
