package admin

import (
	"io"
	"log/slog"
	"os"
	"testing"

	"glowup-diaries/config"
	"glowup-diaries/internal/global/response"
	"glowup-diaries/test"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	config.Init()
	log = slog.New(slog.NewTextHandler(io.Discard, nil))
	os.Exit(m.Run())
}

func TestValidatePasswordStrength(t *testing.T) {
	cases := []struct {
		name     string
		password string
		ok       bool
	}{
		{"empty", "", false},
		{"too short", "Ab1!", false},
		{"no digit", "Password!", false},
		{"no letter", "12345678!", false},
		{"no special", "Password1", false},
		{"valid", "Passw0rd!", true},
		{"hyphen counts as special", "Passw0rd-", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validatePasswordStrength(tc.password)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	resp := test.DoRequest(t, Register, map[string]interface{}{
		"email":    "new@glowupdiaries.com",
		"password": "weak",
	})
	assert.Equal(t, response.ErrInvalidRequest.Code, resp.Code)
}

func TestRegisterRejectsMissingEmail(t *testing.T) {
	resp := test.DoRequest(t, Register, map[string]interface{}{
		"password": "Passw0rd!",
	})
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)
}
