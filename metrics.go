package scene

import (
	"time"

	"github.com/hashicorp/go-metrics"
)

// Metric keys emitted through the global go-metrics instance. Nothing is
// recorded until the embedding program installs a sink.
var (
	metricInvalidate   = []string{"scene", "invalidate"}
	metricPass         = []string{"scene", "pass"}
	metricDrain        = []string{"scene", "drain"}
	metricDrainEntries = []string{"scene", "drain", "entries"}
	metricRootPass     = []string{"scene", "drain", "root_pass"}
	metricDrainError   = []string{"scene", "drain", "error"}
)

func incrInvalidate(mode Mode) {
	metrics.IncrCounterWithLabels(metricInvalidate, 1, []metrics.Label{{Name: "mode", Value: mode.String()}})
}

func incrPass(pass string) {
	metrics.IncrCounterWithLabels(metricPass, 1, []metrics.Label{{Name: "pass", Value: pass}})
}

func measureDrain(start time.Time, entries int) {
	metrics.MeasureSince(metricDrain, start)
	metrics.AddSample(metricDrainEntries, float32(entries))
}

func incrRootPass() {
	metrics.IncrCounter(metricRootPass, 1)
}

func incrDrainError(kind ContractKind) {
	metrics.IncrCounterWithLabels(metricDrainError, 1, []metrics.Label{{Name: "kind", Value: kind.String()}})
}
