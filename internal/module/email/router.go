package email

import (
	"github.com/gin-gonic/gin"
)

func (m *ModuleEmail) InitRouter(r *gin.RouterGroup) {
	r.POST("/api/email", SendEmail)
}
