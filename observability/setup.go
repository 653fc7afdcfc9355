package observability

import (
	"context"
	"errors"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Providers holds the SDK providers created by Setup. Both are nil when
// telemetry is disabled.
type Providers struct {
	Meter  *sdkmetric.MeterProvider
	Tracer *sdktrace.TracerProvider
}

// Setup initializes metrics and tracing when cfg.Enabled is set.
func Setup(ctx context.Context, svc Service, cfg Config) (*Providers, error) {
	p := &Providers{}
	if !cfg.Enabled {
		return p, nil
	}
	cfg.ApplyDefaults()

	mp, err := InitMeter(ctx, svc, cfg)
	if err != nil {
		return nil, err
	}
	p.Meter = mp

	tp, err := InitTracer(ctx, svc, cfg)
	if err != nil {
		_ = mp.Shutdown(ctx)
		return nil, err
	}
	p.Tracer = tp
	return p, nil
}

// Shutdown flushes and stops the providers.
func (p *Providers) Shutdown(ctx context.Context) error {
	var errs []error
	if p.Tracer != nil {
		errs = append(errs, p.Tracer.Shutdown(ctx))
	}
	if p.Meter != nil {
		errs = append(errs, p.Meter.Shutdown(ctx))
	}
	return errors.Join(errs...)
}
