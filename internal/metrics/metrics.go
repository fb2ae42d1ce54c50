// Package metrics instruments the engine's command loop with
// OpenTelemetry counters: commands executed, command failures by
// error kind, and theorems closed (proven vs. admitted). It is purely
// observational — nothing here affects engine semantics — and is
// wired up optionally from cmd/nd, never imported by the core engine
// package itself.
package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/willowbrook/natded/internal/engine"
	"github.com/willowbrook/natded/internal/nderr"
)

// Recorder tracks the counters derived from a running Engine's command
// loop.
type Recorder struct {
	commands      metric.Int64Counter
	commandErrors metric.Int64Counter
	theoremsClosed metric.Int64Counter
	ruleSteps     metric.Int64Counter
}

// Setup builds an SDK meter provider exporting to stdout at the given
// interval and a Recorder bound to its meter. The returned shutdown
// func flushes and stops the exporter; callers should defer it.
func Setup(ctx context.Context, interval time.Duration) (*Recorder, func(context.Context) error, error) {
	exp, err := stdoutmetric.New(stdoutmetric.WithoutTimestamps())
	if err != nil {
		return nil, nil, err
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp, sdkmetric.WithInterval(interval))),
	)

	meter := provider.Meter("github.com/willowbrook/natded/internal/engine")
	rec, err := newRecorder(meter)
	if err != nil {
		return nil, nil, err
	}

	return rec, provider.Shutdown, nil
}

func newRecorder(meter metric.Meter) (*Recorder, error) {
	commands, err := meter.Int64Counter("natded.commands.executed",
		metric.WithDescription("Commands successfully executed by the engine"))
	if err != nil {
		return nil, err
	}
	commandErrors, err := meter.Int64Counter("natded.commands.errors",
		metric.WithDescription("Commands rejected by the engine, by error kind"))
	if err != nil {
		return nil, err
	}
	theoremsClosed, err := meter.Int64Counter("natded.theorems.closed",
		metric.WithDescription("Theorems closed via Qed or Admit"))
	if err != nil {
		return nil, err
	}
	ruleSteps, err := meter.Int64Counter("natded.rule_steps",
		metric.WithDescription("Rule commands applied to an active proof"))
	if err != nil {
		return nil, err
	}

	return &Recorder{
		commands:       commands,
		commandErrors:  commandErrors,
		theoremsClosed: theoremsClosed,
		ruleSteps:      ruleSteps,
	}, nil
}

// Observe records the outcome of one engine.Execute call.
func (r *Recorder) Observe(ctx context.Context, cmd engine.Command, effects []engine.Effect, err error) {
	if r == nil {
		return
	}

	if err != nil {
		kind := "unknown"
		if nerr, ok := err.(*nderr.Error); ok {
			kind = nerr.Kind.String()
		}
		r.commandErrors.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
		return
	}

	r.commands.Add(ctx, 1)
	if _, ok := cmd.(engine.RuleCommand); ok {
		r.ruleSteps.Add(ctx, 1)
	}
	for _, e := range effects {
		if _, ok := e.(engine.NewTheorem); ok {
			r.theoremsClosed.Add(ctx, 1)
		}
	}
}
