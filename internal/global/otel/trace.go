package otel

import (
	"context"
	"fmt"

	"glowup-diaries/config"
	"glowup-diaries/tools"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.25.0"
)

var tracerProvider *sdktrace.TracerProvider

func newOTLPExporter(ctx context.Context) (sdktrace.SpanExporter, error) {
	opts := []otlptracehttp.Option{
		otlptracehttp.WithInsecure(),
		otlptracehttp.WithEndpoint(fmt.Sprintf("%s:%s",
			config.Get().OTel.AgentHost,
			config.Get().OTel.AgentPort)),
	}

	return otlptracehttp.New(ctx, opts...)
}

func Init() {
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(config.Get().OTel.ServiceName),
		),
	)
	tools.PanicOnErr(err)

	exp, err := newOTLPExporter(context.Background())
	tools.PanicOnErr(err)

	bsp := sdktrace.NewBatchSpanProcessor(exp)

	tracerProvider = sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithSpanProcessor(bsp),
	)

	otel.SetTracerProvider(tracerProvider)
}

// Shutdown flushes pending spans; call on process exit.
func Shutdown(ctx context.Context) error {
	if tracerProvider == nil {
		return nil
	}
	return tracerProvider.Shutdown(ctx)
}
