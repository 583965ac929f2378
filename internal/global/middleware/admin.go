package middleware

import (
	"net/http"
	"strings"

	"glowup-diaries/internal/global/database"
	"glowup-diaries/internal/global/jwt"
	"glowup-diaries/internal/global/response"
	"glowup-diaries/internal/global/session"
	"glowup-diaries/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const loginPath = "/admin/login"

// AdminGate is the request-level interceptor for the admin area. Every
// admin-prefixed path except the login page requires a live session
// belonging to an admin; anyone else is redirected to the login page.
// A signed-in non-admin additionally has their session destroyed.
// Store or query failures are treated as unauthenticated.
func AdminGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if path == loginPath || strings.HasSuffix(path, "/api/login") {
			c.Next()
			return
		}

		claims, ok := credentials(c)
		if !ok {
			redirectToLogin(c)
			return
		}

		if !isAdmin(claims.UserID) {
			// authenticated but not an admin: sign them out
			_ = session.Destroy(c.Request.Context(), claims.SessionID)
			clearSessionCookie(c)
			redirectToLogin(c)
			return
		}

		c.Set("payload", claims)
		c.Next()
	}
}

// AdminOnly guards admin JSON endpoints placed behind Auth. It does
// its own membership round trip; nothing is cached from AdminGate, so
// the two checks can observe different membership if it changes
// between them.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, exists := jwt.GetUserPayload(c)
		if !exists {
			response.Fail(c, response.ErrTokenInvalid)
			c.Abort()
			return
		}
		if !isAdmin(claims.UserID) {
			_ = session.Destroy(c.Request.Context(), claims.SessionID)
			clearSessionCookie(c)
			response.Fail(c, response.ErrUnauthorized)
			c.Abort()
			return
		}
		c.Next()
	}
}

func isAdmin(userID uint) bool {
	var admin model.AdminUser
	err := database.DB.Where("user_id = ?", userID).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false
	}
	return err == nil
}

func redirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusFound, loginPath)
	c.Abort()
}

func clearSessionCookie(c *gin.Context) {
	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
}
