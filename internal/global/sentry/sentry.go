package sentry

import (
	"fmt"
	"time"

	"glowup-diaries/config"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
)

// CodedError lets response errors carry their code into Sentry tags.
type CodedError interface {
	error
	GetCode() int32
}

// Init configures the Sentry SDK. A missing DSN disables reporting.
func Init() error {
	cfg := config.Get()

	if cfg.Sentry.Dsn == "" {
		return nil
	}

	tracesSampleRate := cfg.Sentry.SampleRate
	if tracesSampleRate <= 0 {
		tracesSampleRate = 1.0
	}

	environment := cfg.Sentry.Environment
	if environment == "" {
		environment = string(cfg.Mode)
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.Sentry.Dsn,
		Environment:      environment,
		Release:          "glowup-diaries@1.0.0",
		SampleRate:       1.0,
		EnableTracing:    true,
		TracesSampleRate: tracesSampleRate,
		EnableLogs:       true,
	})

	if err != nil {
		return fmt.Errorf("sentry initialization failed: %w", err)
	}

	return nil
}

// Middleware returns the Sentry gin middleware, or a no-op without a DSN.
func Middleware() gin.HandlerFunc {
	cfg := config.Get()

	if cfg.Sentry.Dsn == "" {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         2 * time.Second,
	})
}

// CaptureException reports an error outside the request path.
func CaptureException(err error) {
	if err == nil {
		return
	}
	sentry.WithScope(func(scope *sentry.Scope) {
		var coded CodedError
		if ok := asCoded(err, &coded); ok {
			scope.SetTag("error_code", fmt.Sprintf("%d", coded.GetCode()))
		}
		sentry.CaptureException(err)
	})
}

func asCoded(err error, target *CodedError) bool {
	for err != nil {
		if ce, ok := err.(CodedError); ok {
			*target = ce
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// Flush drains buffered events; call on shutdown.
func Flush() {
	sentry.Flush(2 * time.Second)
}
