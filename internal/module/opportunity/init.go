package opportunity

import (
	"log/slog"

	"glowup-diaries/internal/global/logger"
)

var log *slog.Logger

type ModuleOpportunity struct{}

func (m *ModuleOpportunity) GetName() string {
	return "Opportunities"
}

func (m *ModuleOpportunity) Init() {
	log = logger.New("Opportunities")
}
