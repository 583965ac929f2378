package featured

import (
	"github.com/gin-gonic/gin"
)

func (m *ModuleFeatured) InitRouter(r *gin.RouterGroup) {
	r.GET("/featured", Landing)
}
