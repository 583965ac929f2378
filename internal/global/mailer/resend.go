package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"glowup-diaries/config"
	"glowup-diaries/internal/global/httpclient"
	"glowup-diaries/internal/global/logger"
)

const endpoint = "https://api.resend.com/emails"

var log *slog.Logger

func Init() {
	log = logger.New("Mailer")
	// never log the key itself, only whether one is configured
	log.Info("mailer ready", "resend_key_present", config.Get().Resend.APIKey != "")
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type providerError struct {
	Message string `json:"message"`
	Name    string `json:"name"`
}

// Send delivers one email through the Resend API and returns the
// provider's response body.
func Send(ctx context.Context, to, subject, content string) (map[string]interface{}, error) {
	cfg := config.Get().Resend
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("resend api key is not configured")
	}

	from := cfg.From
	if from == "" {
		from = "Glow Up Diaries <support@glowupdiaries.com>"
	}

	resp, err := httpclient.Client.R().
		SetContext(ctx).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(sendRequest{
			From:    from,
			To:      []string{to},
			Subject: subject,
			HTML:    content,
		}).
		Post(endpoint)
	if err != nil {
		return nil, err
	}

	if resp.IsError() {
		var pe providerError
		if jsonErr := json.Unmarshal(resp.Body(), &pe); jsonErr == nil && pe.Message != "" {
			return nil, fmt.Errorf("resend: %s", pe.Message)
		}
		return nil, fmt.Errorf("resend: unexpected status %d", resp.StatusCode())
	}

	var body map[string]interface{}
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, err
	}
	return body, nil
}
