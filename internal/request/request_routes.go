package request

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
	requests := r.Group("/requests")
	requests.Use(middleware.AuthMiddleware())
	{
		requests.GET("", middleware.RBACAuthorize(rbacService, "demande", "read"), handler.GetAll)
		requests.GET("/:id", middleware.RBACAuthorize(rbacService, "demande", "read"), handler.GetById)
		requests.POST("", middleware.RBACAuthorize(rbacService, "demande", "create"), handler.Create)
		requests.PUT("/:id", middleware.RBACAuthorize(rbacService, "demande", "update"), handler.Update)
		requests.POST("/:id/cancel", middleware.RBACAuthorize(rbacService, "demande", "cancel"), handler.Cancel)
	}
}
