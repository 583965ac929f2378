package resource

import (
	"log/slog"

	"glowup-diaries/internal/global/logger"
)

var log *slog.Logger

type ModuleResource struct{}

func (m *ModuleResource) GetName() string {
	return "Resources"
}

func (m *ModuleResource) Init() {
	log = logger.New("Resources")
}
