package admin

import (
	"glowup-diaries/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (m *ModuleAdmin) InitRouter(r *gin.RouterGroup) {
	g := r.Group("/admin", middleware.AdminGate())
	{
		g.GET("/login", LoginPage)
		g.GET("/dashboard", Dashboard)

		api := g.Group("/api")
		{
			api.POST("/login", Login)
			api.POST("/logout", middleware.Auth(), Logout)
			api.GET("/me", middleware.Auth(), Me)
			api.POST("/register", middleware.Auth(), middleware.AdminOnly(), Register)
			api.POST("/password", middleware.Auth(), ChangePassword)
			api.GET("/stats", middleware.Auth(), middleware.AdminOnly(), Stats)
			api.GET("/export", middleware.Auth(), middleware.AdminOnly(), Export)
		}
	}
}
