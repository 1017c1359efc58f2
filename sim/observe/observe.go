// Package observe exports scheduling run outcomes as Prometheus metrics.
package observe

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/inference-sim/sched-sim/sim"
	"github.com/inference-sim/sched-sim/sim/trace"
)

// Collector records run outcomes into its own registry. It implements
// sim.RunObserver.
type Collector struct {
	registry *prometheus.Registry

	runsTotal          *prometheus.CounterVec
	completedTotal     *prometheus.CounterVec
	incompleteTotal    *prometheus.CounterVec
	idleInstantsTotal  *prometheus.CounterVec
	contextSwitches    *prometheus.CounterVec
	meanNormTurnaround *prometheus.GaugeVec
	utilization        *prometheus.GaugeVec
}

// NewCollector creates a Collector with a fresh registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		runsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "schedsim_runs_total",
			Help: "Total number of simulation runs.",
		}, []string{"algorithm"}),
		completedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "schedsim_completed_processes_total",
			Help: "Processes that finished within the horizon.",
		}, []string{"algorithm"}),
		incompleteTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "schedsim_incomplete_processes_total",
			Help: "Processes still unfinished when the horizon was reached.",
		}, []string{"algorithm"}),
		idleInstantsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "schedsim_idle_instants_total",
			Help: "Instants at which no process was running.",
		}, []string{"algorithm"}),
		contextSwitches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "schedsim_context_switches_total",
			Help: "Dispatches of a process other than the one that ran last.",
		}, []string{"algorithm"}),
		meanNormTurnaround: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "schedsim_mean_normalized_turnaround",
			Help: "Mean normalized turnaround of completed processes in the latest run.",
		}, []string{"algorithm"}),
		utilization: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "schedsim_utilization_ratio",
			Help: "Busy instants over horizon in the latest run.",
		}, []string{"algorithm"}),
	}
	c.registry.MustRegister(
		c.runsTotal,
		c.completedTotal,
		c.incompleteTotal,
		c.idleInstantsTotal,
		c.contextSwitches,
		c.meanNormTurnaround,
		c.utilization,
	)
	return c
}

// Observe records one run.
func (c *Collector) Observe(r *sim.RunResult) {
	alg := r.Algorithm
	rs := r.Summarize()
	ts := trace.Summarize(trace.FromDispatches(r.Running))

	c.runsTotal.WithLabelValues(alg).Inc()
	c.completedTotal.WithLabelValues(alg).Add(float64(rs.Completed))
	c.incompleteTotal.WithLabelValues(alg).Add(float64(rs.Incomplete))
	c.idleInstantsTotal.WithLabelValues(alg).Add(float64(ts.IdleInstants))
	c.contextSwitches.WithLabelValues(alg).Add(float64(ts.ContextSwitches))
	c.meanNormTurnaround.WithLabelValues(alg).Set(rs.MeanNormalizedTurnaround)
	c.utilization.WithLabelValues(alg).Set(ts.Utilization)
}

// Registry returns the registry holding the collector's metrics.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// WriteTextfile writes all metrics in the Prometheus text format to path,
// for the node exporter textfile collector.
func (c *Collector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.registry)
}
