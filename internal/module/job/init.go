package job

import (
	"log/slog"

	"glowup-diaries/internal/global/logger"
)

var log *slog.Logger

type ModuleJob struct{}

func (m *ModuleJob) GetName() string {
	return "Jobs"
}

func (m *ModuleJob) Init() {
	log = logger.New("Jobs")
}
