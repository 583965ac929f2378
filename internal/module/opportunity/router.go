package opportunity

import (
	"glowup-diaries/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (m *ModuleOpportunity) InitRouter(r *gin.RouterGroup) {
	r.GET("/opportunities", ListOpportunities)

	manage := r.Group("/admin/api/opportunities")
	manage.Use(middleware.Auth(), middleware.AdminOnly())
	{
		manage.POST("", CreateOpportunity)
		manage.PUT("/:id", UpdateOpportunity)
		manage.DELETE("/:id", DeleteOpportunity)
	}
}
