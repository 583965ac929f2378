package email

import (
	"log/slog"

	"glowup-diaries/internal/global/logger"
)

var log *slog.Logger

type ModuleEmail struct{}

func (m *ModuleEmail) GetName() string {
	return "Email"
}

func (m *ModuleEmail) Init() {
	log = logger.New("Email")
}
