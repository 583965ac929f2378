package job

import (
	"glowup-diaries/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (m *ModuleJob) InitRouter(r *gin.RouterGroup) {
	r.GET("/jobs", ListJobs)

	manage := r.Group("/admin/api/jobs")
	manage.Use(middleware.Auth(), middleware.AdminOnly())
	{
		manage.POST("", CreateJob)
		manage.PUT("/:id", UpdateJob)
		manage.DELETE("/:id", DeleteJob)
	}
}
