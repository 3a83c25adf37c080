package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Rahul77977/gagan-server/auth"
	"github.com/Rahul77977/gagan-server/media"
	"github.com/Rahul77977/gagan-server/storage"
)

// Deps are the process-scoped handles every route group draws from. They
// are built once at startup and shared; handlers never re-initialize them.
type Deps struct {
	Store    *storage.Store
	Verifier auth.Verifier
	Uploads  media.Uploader
}

// SetupRoutes wires up the auth, admin, category, and product route groups
// under the versioned prefix.
func SetupRoutes(r *gin.Engine, deps Deps) {
	api := r.Group("/api/v1")

	SetupAuthRoutes(api, deps)
	SetupAdminRoutes(api, deps)
	SetupCategoryRoutes(api, deps)
	SetupProductRoutes(api, deps)
}
