package mailer

import (
	"context"
	"testing"

	"glowup-diaries/config"

	"github.com/stretchr/testify/assert"
)

func TestSendRequiresAPIKey(t *testing.T) {
	config.Init()
	config.Get().Resend.APIKey = ""

	_, err := Send(context.Background(), "someone@example.com", "Hi", "<p>Hi</p>")
	assert.EqualError(t, err, "resend api key is not configured")
}
