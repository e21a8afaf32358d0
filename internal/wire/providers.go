package wire

import (
	"io"
	"log/slog"

	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/sevigo/review-assistant/internal/app"
	"github.com/sevigo/review-assistant/internal/assistant"
	"github.com/sevigo/review-assistant/internal/config"
	"github.com/sevigo/review-assistant/internal/core"
	"github.com/sevigo/review-assistant/internal/exchange"
	"github.com/sevigo/review-assistant/internal/llm"
	"github.com/sevigo/review-assistant/internal/logger"
	"github.com/sevigo/review-assistant/internal/metrics"
	"github.com/sevigo/review-assistant/internal/review"
	"github.com/sevigo/review-assistant/internal/server"
	"github.com/sevigo/review-assistant/internal/tracing"
)

// AssistantSet builds a core.CodeAssistant from configuration.
var AssistantSet = wire.NewSet(
	config.LoadConfig,
	provideLoggerConfig,
	provideLogWriter,
	provideSlogLogger,
	assistant.NewHTTPClient,
	assistant.New,
	wire.Bind(new(core.AssistantClient), new(*assistant.Client)),
	provideRegistry,
	metrics.New,
	tracing.NewTracerProvider,
	provideTracer,
	exchange.NewService,
	wire.Bind(new(core.Exchanger), new(*exchange.Service)),
	llm.NewPromptManager,
	review.NewService,
	wire.Bind(new(core.CodeAssistant), new(*review.Service)),
)

// AppSet adds the HTTP server on top of AssistantSet.
var AppSet = wire.NewSet(
	AssistantSet,
	server.NewServer,
	app.NewApp,
)

func provideLoggerConfig(cfg *config.Config) logger.Config {
	return cfg.Logging
}

func provideLogWriter(cfg logger.Config) (io.Writer, func(), error) {
	return logger.OpenOutput(cfg)
}

func provideSlogLogger(loggerConfig logger.Config, writer io.Writer) *slog.Logger {
	return logger.NewLogger(loggerConfig, writer)
}

func provideRegistry() *prometheus.Registry {
	return prometheus.NewRegistry()
}

func provideTracer(tp *sdktrace.TracerProvider) trace.Tracer {
	return tracing.Tracer(tp)
}
