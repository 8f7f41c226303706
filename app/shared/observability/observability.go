package observability

import (
	"io"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/Black-And-White-Club/dxwager/app/shared/observability/metrics"
)

// Observability bundles the logger, metrics and tracing handed to every module.
type Observability struct {
	Logger         *slog.Logger
	Metrics        metrics.Metrics
	TracerProvider trace.TracerProvider
}

// Tracer returns a named tracer, falling back to the global provider.
func (o Observability) Tracer(name string) trace.Tracer {
	if o.TracerProvider == nil {
		return otel.GetTracerProvider().Tracer(name)
	}
	return o.TracerProvider.Tracer(name)
}

// NewNoop returns an Observability that discards everything.
func NewNoop() Observability {
	return Observability{
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		Metrics:        metrics.NewNoop(),
		TracerProvider: noop.NewTracerProvider(),
	}
}

// NewLogger builds the process logger. format is "json" or "text".
func NewLogger(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	if strings.EqualFold(format, "text") {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// ParseLevel maps a config string onto a slog level; unknown values are info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
