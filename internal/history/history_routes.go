package history

import (
	"github.com/Ezra12363/Conge-sub001/internal/middleware"
	"github.com/Ezra12363/Conge-sub001/internal/rbac"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
) {
	historiques := r.Group("/historiques")
	historiques.Use(middleware.AuthMiddleware())
	{
		historiques.GET("/:id", middleware.RBACAuthorize(rbacService, "historique", "read"), handler.ListForRequest)
	}
}
