package exporter

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	METRIC_ERROR_COUNT             = "collect_error_count"
	METRIC_PENDING_COUNT           = "pending_instruction_count"
	METRIC_PENDING_SIGNATURE_COUNT = "pending_signature_count"
	METRIC_MASTER_AGENT_NUM        = "master_agent_count"
)

var (
	counters map[string]prometheus.Counter
	gauges   map[string]prometheus.Gauge
)

// Init registers the metrics of the start process. Every value is read back from the
// stored accounts, so a metric means the same no matter which process changed them.
func Init() {

	// Create metric spaces
	counters = make(map[string]prometheus.Counter)
	gauges = make(map[string]prometheus.Gauge)

	// Register metrics
	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "tyield",
		Subsystem: "minter",
		Name:      METRIC_ERROR_COUNT,
		Help:      "Counts the failed attempts to collect account statistics",
	})
	prometheus.MustRegister(counter)
	counters[METRIC_ERROR_COUNT] = counter

	registerGauge(METRIC_PENDING_COUNT, "Number of instructions waiting for signatures")
	registerGauge(METRIC_PENDING_SIGNATURE_COUNT, "Number of signatures recorded on pending instructions")
	registerGauge(METRIC_MASTER_AGENT_NUM, "Number of minted master agents")
}

func registerGauge(name string, help string) {
	gauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "tyield",
		Subsystem: "minter",
		Name:      name,
		Help:      help,
	})
	prometheus.MustRegister(gauge)
	gauges[name] = gauge
}

func IncErrorCount() {
	counters[METRIC_ERROR_COUNT].Inc()
}

func SetPendingCount(instructions int, signatures int) {
	gauges[METRIC_PENDING_COUNT].Set(float64(instructions))
	gauges[METRIC_PENDING_SIGNATURE_COUNT].Set(float64(signatures))
}

func SetMasterAgentCount(n int) {
	gauges[METRIC_MASTER_AGENT_NUM].Set(float64(n))
}
