// Package observability wires OpenTelemetry tracing and metrics for the utl
// command line tool.
//
// Telemetry is off unless enabled in configuration. When it is off, Setup
// returns Providers whose Shutdown is a no-op and the global OpenTelemetry
// providers stay the no-op defaults.
//
//	p, err := observability.Setup(ctx, observability.Service{Name: "utl"}, cfg.Telemetry)
//	defer p.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("utl"))
//	oc := observability.NewOperationContext("trim", runID, metrics)
//	ctx, span := oc.Start(ctx)
//	defer oc.End(ctx, span, observability.StatusOK, nil)
package observability
