package middleware

import (
	"strings"

	"glowup-diaries/internal/global/jwt"
	"glowup-diaries/internal/global/response"
	"glowup-diaries/internal/global/session"

	"github.com/gin-gonic/gin"
)

// credentials extracts and validates the session token from either the
// Authorization header or the session cookie. A token is only good if
// its session is still live in the store.
func credentials(c *gin.Context) (*jwt.Claims, bool) {
	token := ""
	if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		token = strings.TrimPrefix(authHeader, "Bearer ")
	} else if cookie, err := c.Cookie(session.CookieName); err == nil {
		token = cookie
	}
	if token == "" {
		return nil, false
	}

	claims, valid := jwt.ParseToken(token)
	if !valid {
		return nil, false
	}

	userID, live := session.UserID(c.Request.Context(), claims.SessionID)
	if !live || userID != claims.UserID {
		return nil, false
	}
	return claims, true
}

// Auth guards JSON endpoints. Unauthenticated requests get a 401
// envelope rather than a redirect.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := credentials(c)
		if !ok {
			response.Fail(c, response.ErrTokenInvalid)
			c.Abort()
			return
		}
		c.Set("payload", claims)
		c.Next()
	}
}
