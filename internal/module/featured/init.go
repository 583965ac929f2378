package featured

import (
	"log/slog"

	"glowup-diaries/internal/global/logger"
)

var log *slog.Logger

type ModuleFeatured struct{}

func (m *ModuleFeatured) GetName() string {
	return "Featured"
}

func (m *ModuleFeatured) Init() {
	log = logger.New("Featured")
}
