package ping

import (
	"glowup-diaries/internal/global/database"
	"glowup-diaries/internal/global/response"

	"github.com/gin-gonic/gin"
)

func (p *ModulePing) InitRouter(r *gin.RouterGroup) {
	r.GET("/ping", func(c *gin.Context) {
		result := map[string]interface{}{
			"message": "pong",
			"version": "1.0.0",
		}
		if err := database.RedisHealthCheck(c.Request.Context()); err != nil {
			log.Warn("session store unreachable", "error", err)
			result["session_store"] = "down"
		}
		response.Success(c, result)
	})
}
