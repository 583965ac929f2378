package server

import (
	"context"
	"log/slog"
	"time"

	"glowup-diaries/config"
	"glowup-diaries/internal/global/database"
	"glowup-diaries/internal/global/filestore"
	"glowup-diaries/internal/global/httpclient"
	"glowup-diaries/internal/global/logger"
	"glowup-diaries/internal/global/mailer"
	"glowup-diaries/internal/global/middleware"
	"glowup-diaries/internal/global/otel"
	"glowup-diaries/internal/global/sentry"
	"glowup-diaries/internal/global/session"
	"glowup-diaries/internal/module"
	"glowup-diaries/tools"

	"github.com/gin-gonic/gin"
)

var log *slog.Logger

// Init brings up config, the shared infrastructure and every module, in
// dependency order. Panics on anything the server cannot run without.
func Init() {
	config.Init()
	log = logger.New("Server")

	tools.PanicOnErr(sentry.Init())

	database.Init()
	database.InitRedis()
	session.Init()
	httpclient.Init()
	mailer.Init()
	filestore.Init()

	if config.Get().OTel.Enable {
		otel.Init()
	}

	for _, m := range module.Modules {
		m.Init()
		log.Info("module initialized", "module", m.GetName())
	}
}

// Run builds the router and serves until the listener fails.
func Run() {
	cfg := config.Get()

	gin.SetMode(string(cfg.Mode))
	r := gin.New()

	r.Use(middleware.Logger(logger.New("Gin")))
	r.Use(middleware.Cors())
	r.Use(sentry.Middleware())
	r.Use(middleware.Recovery())
	if cfg.OTel.Enable {
		r.Use(middleware.Trace())
	}

	root := r.Group("/" + cfg.Prefix)
	for _, m := range module.Modules {
		m.InitRouter(root)
	}

	defer func() {
		sentry.Flush()
		if cfg.OTel.Enable {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := otel.Shutdown(ctx); err != nil {
				log.Error("trace shutdown failed", "error", err)
			}
		}
	}()

	addr := cfg.Host + ":" + cfg.Port
	log.Info("server listening", "addr", addr)
	if err := r.Run(addr); err != nil {
		sentry.CaptureException(err)
		log.Error("server stopped", "error", err)
	}
}
