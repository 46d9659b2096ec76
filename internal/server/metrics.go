package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"

	"github.com/workforcehq/workforce/internal"
	"github.com/workforcehq/workforce/internal/logging"
	"github.com/workforcehq/workforce/metrics"
)

func metricsMiddleware(promRegistry prometheus.Registerer) gin.HandlerFunc {
	return metrics.Middleware(promRegistry)
}

func metricsHandler(promRegistry *prometheus.Registry) http.Handler {
	return metrics.NewHandler(promRegistry)
}

type metricValue struct {
	Value       float64
	LabelValues []string
}

// collector implements the prometheus.Collector interface
type collector struct {
	desc        *prometheus.Desc
	valueType   prometheus.ValueType
	collectFunc func() []metricValue
}

func newCollector(opts prometheus.Opts, valueType prometheus.ValueType, variableLabels []string, collectFunc func() []metricValue) *collector {
	fqname := prometheus.BuildFQName(opts.Namespace, opts.Subsystem, opts.Name)
	return &collector{
		desc:        prometheus.NewDesc(fqname, opts.Help, variableLabels, opts.ConstLabels),
		valueType:   valueType,
		collectFunc: collectFunc,
	}
}

// NewGaugeCollector creates a collector with type Gauge
func NewGaugeCollector(opts prometheus.Opts, variableLabels []string, collectFunc func() []metricValue) *collector {
	return newCollector(opts, prometheus.GaugeValue, variableLabels, collectFunc)
}

// Describe is implemented by DescribeByCollect
func (c *collector) Describe(ch chan<- *prometheus.Desc) {
	prometheus.DescribeByCollect(c, ch)
}

// Collect implements Collector. It creates a set of constant metrics with
// the values and labels as described by collectFunc
func (c *collector) Collect(ch chan<- prometheus.Metric) {
	for _, metricValue := range c.collectFunc() {
		ch <- prometheus.MustNewConstMetric(c.desc, c.valueType, metricValue.Value, metricValue.LabelValues...)
	}
}

func setupMetrics(db *gorm.DB) *prometheus.Registry {
	registry := prometheus.NewRegistry()

	if rawDB, err := db.DB(); err == nil {
		registry.MustRegister(collectors.NewDBStatsCollector(rawDB, db.Dialector.Name()))
	}

	registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "build_info",
		Help: "A metric with a constant '1' value labeled by the version from which workforce was built",
		ConstLabels: prometheus.Labels{
			"version": internal.FullVersion(),
		},
	}, func() float64 { return 1 }))

	registry.MustRegister(NewGaugeCollector(prometheus.Opts{
		Namespace: "workforce",
		Name:      "employees",
		Help:      "The total number of employees",
	}, []string{"status"}, func() []metricValue {
		var results []struct {
			Status string
			Count  int
		}

		if err := db.Raw("SELECT status, COUNT(*) as count FROM employees WHERE deleted_at IS NULL GROUP BY status").Scan(&results).Error; err != nil {
			logging.L.Warn().Err(err).Msg("employees")
			return []metricValue{}
		}

		values := make([]metricValue, 0, len(results))
		for _, result := range results {
			values = append(values, metricValue{Value: float64(result.Count), LabelValues: []string{result.Status}})
		}

		return values
	}))

	registry.MustRegister(NewGaugeCollector(prometheus.Opts{
		Namespace: "workforce",
		Name:      "departments",
		Help:      "The total number of departments",
	}, []string{}, func() []metricValue {
		var results []struct {
			Count int
		}

		if err := db.Raw("SELECT COUNT(*) as count FROM departments WHERE deleted_at IS NULL").Scan(&results).Error; err != nil {
			logging.L.Warn().Err(err).Msg("departments")
			return []metricValue{}
		}

		values := make([]metricValue, 0, len(results))
		for _, result := range results {
			values = append(values, metricValue{Value: float64(result.Count), LabelValues: []string{}})
		}

		return values
	}))

	registry.MustRegister(NewGaugeCollector(prometheus.Opts{
		Namespace: "workforce",
		Name:      "pending_leaves",
		Help:      "The number of leave requests awaiting review",
	}, []string{}, func() []metricValue {
		var results []struct {
			Count int
		}

		if err := db.Raw("SELECT COUNT(*) as count FROM leaves WHERE status = 'pending' AND deleted_at IS NULL").Scan(&results).Error; err != nil {
			logging.L.Warn().Err(err).Msg("pending leaves")
			return []metricValue{}
		}

		values := make([]metricValue, 0, len(results))
		for _, result := range results {
			values = append(values, metricValue{Value: float64(result.Count), LabelValues: []string{}})
		}

		return values
	}))

	return registry
}
