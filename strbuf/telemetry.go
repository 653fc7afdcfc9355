package strbuf

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/kbukum/utl/logger"
)

const instrumentationName = "github.com/kbukum/utl/strbuf"

// RelocationsMetric counts buffer reallocations.
const RelocationsMetric = "strbuf.relocations"

var (
	telemetryMu sync.RWMutex
	relocations metric.Int64Counter
	traceLog    *logger.Logger
)

// SetMeterProvider binds the relocation counter to mp. A nil mp rebinds to
// the global provider.
func SetMeterProvider(mp metric.MeterProvider) error {
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	counter, err := mp.Meter(instrumentationName).Int64Counter(
		RelocationsMetric,
		metric.WithDescription("Number of string buffer reallocations"),
		metric.WithUnit("{relocation}"),
	)
	if err != nil {
		return err
	}

	telemetryMu.Lock()
	relocations = counter
	telemetryMu.Unlock()
	return nil
}

// SetLogger installs l for relocation tracing at debug level. nil disables
// it.
func SetLogger(l *logger.Logger) {
	telemetryMu.Lock()
	defer telemetryMu.Unlock()
	if l != nil {
		l = l.WithComponent("strbuf")
	}
	traceLog = l
}

func relocationCounter() metric.Int64Counter {
	telemetryMu.RLock()
	c := relocations
	telemetryMu.RUnlock()
	if c != nil {
		return c
	}

	if err := SetMeterProvider(nil); err != nil {
		return noop.Int64Counter{}
	}
	telemetryMu.RLock()
	defer telemetryMu.RUnlock()
	return relocations
}

func recordRelocation(oldCapacity, newCapacity, length int) {
	relocationCounter().Add(context.Background(), 1)

	telemetryMu.RLock()
	l := traceLog
	telemetryMu.RUnlock()
	if l != nil && l.DebugEnabled() {
		l.Debug("string buffer relocated", logger.RelocationFields(oldCapacity, newCapacity, length))
	}
}
