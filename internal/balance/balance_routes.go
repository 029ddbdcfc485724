package balance

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
	soldes := r.Group("/solde-conges")
	soldes.Use(middleware.AuthMiddleware())
	{
		soldes.GET("", middleware.RBACAuthorize(rbacService, "solde", "read_all"), handler.GetAll)
		soldes.GET("/:id", middleware.RBACAuthorize(rbacService, "solde", "read"), handler.GetByEmployee)
	}
}
