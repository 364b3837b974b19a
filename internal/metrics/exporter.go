package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/CristiGvl/picoTherm/internal/filter"
	"github.com/CristiGvl/picoTherm/internal/sensors"
)

// Exporter exposes sensor readings as prometheus metrics. Every scrape runs
// one harvest; temperatures are reported in Celsius regardless of the unit
// the rest of the agent uses.
type Exporter struct {
	harvester sensors.Harvester
	filter    *filter.Filter
	timeout   time.Duration

	tempDesc       *prometheus.Desc
	fanDesc        *prometheus.Desc
	scrapeErrors   prometheus.Counter
	scrapeDuration prometheus.Histogram
}

// NewExporter builds an exporter over the given harvester.
func NewExporter(h sensors.Harvester, f *filter.Filter, timeout time.Duration) *Exporter {
	return &Exporter{
		harvester: h,
		filter:    f,
		timeout:   timeout,
		tempDesc: prometheus.NewDesc(
			"picotherm_sensor_temperature_celsius",
			"Current temperature of a hardware sensor.",
			[]string{"sensor"}, nil,
		),
		fanDesc: prometheus.NewDesc(
			"picotherm_sensor_fan_rpm",
			"Current speed of a fan sensor.",
			[]string{"sensor"}, nil,
		),
		scrapeErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "picotherm_scrape_errors_total",
			Help: "Total number of failed sensor harvests.",
		}),
		scrapeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "picotherm_scrape_duration_seconds",
			Help:    "Time spent harvesting sensors per scrape.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// Describe implements prometheus.Collector.
func (e *Exporter) Describe(ch chan<- *prometheus.Desc) {
	ch <- e.tempDesc
	ch <- e.fanDesc
	e.scrapeErrors.Describe(ch)
	e.scrapeDuration.Describe(ch)
}

// Collect implements prometheus.Collector by running one harvest.
func (e *Exporter) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
	defer cancel()

	start := time.Now()
	defer func() {
		e.scrapeDuration.Observe(time.Since(start).Seconds())
		e.scrapeErrors.Collect(ch)
		e.scrapeDuration.Collect(ch)
	}()

	// Distinct sensors can format to the same display name and the registry
	// rejects duplicate label sets, so only the first reading per name wins.
	seen := make(map[string]bool)

	temps, err := e.harvester.Temperatures(ctx, sensors.Celsius, e.filter)
	if err != nil {
		e.scrapeErrors.Inc()
	}
	for _, h := range temps {
		if h.Temperature == nil || seen["temp:"+h.Name] {
			continue
		}
		seen["temp:"+h.Name] = true
		ch <- prometheus.MustNewConstMetric(e.tempDesc, prometheus.GaugeValue, *h.Temperature, h.Name)
	}

	fans, err := e.harvester.Fans(ctx, e.filter)
	if err != nil {
		e.scrapeErrors.Inc()
	}
	for _, h := range fans {
		if seen["fan:"+h.Name] {
			continue
		}
		seen["fan:"+h.Name] = true
		ch <- prometheus.MustNewConstMetric(e.fanDesc, prometheus.GaugeValue, h.RPM, h.Name)
	}
}
