package contact

import (
	"log/slog"

	"glowup-diaries/internal/global/logger"
)

var log *slog.Logger

type ModuleContact struct{}

func (m *ModuleContact) GetName() string {
	return "Contact"
}

func (m *ModuleContact) Init() {
	log = logger.New("Contact")
}
