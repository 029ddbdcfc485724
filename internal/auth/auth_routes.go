package auth

import (
	"github.com/Ezra12363/Conge-sub001/internal/middleware"
	"github.com/Ezra12363/Conge-sub001/internal/rbac"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	auth := r.Group("/auth")
	{
		auth.GET("/me", middleware.AuthMiddleware(), middleware.RateLimitByUser(2, 5), handler.Me)
		auth.POST("/login", middleware.RateLimitByIP(0.08, 5), handler.Login)
		auth.POST("/refresh", handler.RefreshToken)
		auth.POST("/logout", middleware.RateLimitByUser(2, 5), handler.Logout)
		auth.POST("/register",
			middleware.AuthMiddleware(),
			middleware.RBACAuthorize(rbacService, "employe", "manage"),
			handler.Register,
		)
	}
}
