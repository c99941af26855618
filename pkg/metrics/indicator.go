package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/c9s/meandev/pkg/types"
)

var IndicatorValueMetrics = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "meandev_indicator_value",
		Help: "the latest value emitted by the indicator",
	}, []string{"indicator", "interval", "window"})

var IndicatorUpdateCountMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "meandev_indicator_updates_total",
		Help: "the number of values emitted by the indicator",
	}, []string{"indicator", "interval", "window"})

func init() {
	prometheus.MustRegister(IndicatorValueMetrics, IndicatorUpdateCountMetrics)
}

func IndicatorLabels(name string, iw types.IntervalWindow) prometheus.Labels {
	return prometheus.Labels{
		"indicator": name,
		"interval":  iw.Interval.String(),
		"window":    strconv.Itoa(iw.Window),
	}
}

// BindIndicatorMetrics exports every update of the source to the indicator metrics.
func BindIndicatorMetrics(source types.Float64Source, name string, iw types.IntervalWindow) {
	labels := IndicatorLabels(name, iw)
	value := IndicatorValueMetrics.With(labels)
	count := IndicatorUpdateCountMetrics.With(labels)
	source.OnUpdate(func(v float64) {
		value.Set(v)
		count.Inc()
	})
}
