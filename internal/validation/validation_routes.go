package validation

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
	validations := r.Group("/validations")
	validations.Use(middleware.AuthMiddleware())
	{
		validations.POST("", middleware.RBACAuthorize(rbacService, "validation", "decide"), handler.Decide)
		validations.GET("/:id", middleware.RBACAuthorize(rbacService, "validation", "decide"), handler.GetByRequest)
	}
}
