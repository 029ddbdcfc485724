package employee

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
	employees := r.Group("/employes")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.GET("", middleware.RBACAuthorize(rbacService, "employe", "read"), handler.GetAll)
		employees.GET("/options", middleware.RBACAuthorize(rbacService, "employe", "read"), handler.GetOptions)
		employees.GET("/:id", middleware.RBACAuthorize(rbacService, "employe", "read"), handler.GetById)
		employees.POST("", middleware.RBACAuthorize(rbacService, "employe", "manage"), handler.Create)
		employees.PUT("/:id", middleware.RBACAuthorize(rbacService, "employe", "manage"), handler.Update)
		employees.DELETE("/:id", middleware.RBACAuthorize(rbacService, "employe", "manage"), handler.Delete)
	}
}
