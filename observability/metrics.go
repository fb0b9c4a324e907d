package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds the instruments recorded around each command invocation.
type Metrics struct {
	commandTotal    metric.Int64Counter
	commandErrors   metric.Int64Counter
	commandDuration metric.Float64Histogram
}

// NewMetrics creates the command instruments on the global meter provider.
// With telemetry disabled the instruments are no-ops.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(tracerName)

	total, err := meter.Int64Counter("scribe.command.total",
		metric.WithDescription("Total command invocations"))
	if err != nil {
		return nil, err
	}
	errs, err := meter.Int64Counter("scribe.command.errors",
		metric.WithDescription("Failed command invocations"))
	if err != nil {
		return nil, err
	}
	duration, err := meter.Float64Histogram("scribe.command.duration",
		metric.WithDescription("Command duration in seconds"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, err
	}

	return &Metrics{
		commandTotal:    total,
		commandErrors:   errs,
		commandDuration: duration,
	}, nil
}

// Record reports one finished command invocation.
func (m *Metrics) Record(ctx context.Context, command string, d time.Duration, err error) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(CommandAttr(command))
	m.commandTotal.Add(ctx, 1, attrs)
	if err != nil {
		m.commandErrors.Add(ctx, 1, attrs)
	}
	m.commandDuration.Record(ctx, d.Seconds(), attrs)
}
