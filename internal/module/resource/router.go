package resource

import (
	"glowup-diaries/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (m *ModuleResource) InitRouter(r *gin.RouterGroup) {
	r.GET("/resources", ListResources)
	r.GET("/resources/:id/access", AccessResource)

	manage := r.Group("/admin/api/resources")
	manage.Use(middleware.Auth(), middleware.AdminOnly())
	{
		manage.POST("", CreateResource)
		manage.PUT("/:id", UpdateResource)
		manage.DELETE("/:id", DeleteResource)
		manage.POST("/:id/file", UploadResourceFile)
	}
}
