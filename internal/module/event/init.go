package event

import (
	"log/slog"

	"glowup-diaries/internal/global/logger"
)

var log *slog.Logger

type ModuleEvent struct{}

func (m *ModuleEvent) GetName() string {
	return "Events"
}

func (m *ModuleEvent) Init() {
	log = logger.New("Events")
}
