package email

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

func TestSendEmailRejectsMissingFields(t *testing.T) {
	resp := test.DoRequest(t, SendEmail, map[string]string{
		"subject": "Hello",
	})
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)
}

func TestSendEmailRejectsBadAddress(t *testing.T) {
	resp := test.DoRequest(t, SendEmail, map[string]string{
		"to":      "not-an-address",
		"subject": "Hello",
		"content": "<p>Hi</p>",
	})
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)
}
