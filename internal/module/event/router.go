package event

import (
	"glowup-diaries/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (m *ModuleEvent) InitRouter(r *gin.RouterGroup) {
	r.GET("/events", ListEvents)

	manage := r.Group("/admin/api/events")
	manage.Use(middleware.Auth(), middleware.AdminOnly())
	{
		manage.POST("", CreateEvent)
		manage.PUT("/:id", UpdateEvent)
		manage.DELETE("/:id", DeleteEvent)
	}
}
