package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"glowup-diaries/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	config.Init()
	os.Exit(m.Run())
}

func gateRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	g := r.Group("/admin", AdminGate())
	g.GET("/login", func(c *gin.Context) { c.String(http.StatusOK, "login") })
	g.GET("/dashboard", func(c *gin.Context) { c.String(http.StatusOK, "dashboard") })
	g.POST("/api/login", func(c *gin.Context) { c.String(http.StatusOK, "api login") })
	return r
}

func TestAdminGateRedirectsAnonymous(t *testing.T) {
	r := gateRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))
}

func TestAdminGateAllowsLoginPage(t *testing.T) {
	r := gateRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/login", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "login", w.Body.String())
}

func TestAdminGateAllowsLoginEndpoint(t *testing.T) {
	r := gateRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/api/login", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "api login", w.Body.String())
}

func TestAdminGateRejectsGarbageToken(t *testing.T) {
	r := gateRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))
}
