package contact

import (
	"github.com/gin-gonic/gin"
)

func (m *ModuleContact) InitRouter(r *gin.RouterGroup) {
	r.POST("/contact", SubmitFeedback)
}
