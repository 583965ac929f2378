package contact

import (
	"io"
	"log/slog"
	"os"
	"testing"

	"glowup-diaries/config"
	"glowup-diaries/internal/global/response"
	"glowup-diaries/test"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	config.Init()
	log = slog.New(slog.NewTextHandler(io.Discard, nil))
	os.Exit(m.Run())
}

func TestSubmitFeedbackRejectsBadEmail(t *testing.T) {
	resp := test.DoRequest(t, SubmitFeedback, map[string]string{
		"name":    "Ada",
		"email":   "not-an-address",
		"message": "Hello",
	})
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)
}

func TestSubmitFeedbackRequiresMessage(t *testing.T) {
	resp := test.DoRequest(t, SubmitFeedback, map[string]string{
		"name":  "Ada",
		"email": "ada@example.com",
	})
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)
}
