// Package metrics exposes the daemon's Prometheus collectors. Counters only:
// every operation is a constant-time pure computation, so there is nothing
// worth a histogram.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ResolvesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "meshfreq_resolves_total",
		Help: "Total number of successful channel-to-frequency resolutions",
	})
	ResolvesByRegion = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "meshfreq_resolves_by_region_total",
		Help: "Successful resolutions by region code",
	}, []string{"region"})
	ResolveErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "meshfreq_resolve_errors_total",
		Help: "Failed resolutions by reason (unknown_region, degenerate_slots, bad_request)",
	}, []string{"reason"})
	MQTTPublishTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "meshfreq_mqtt_publish_total",
		Help: "Resolutions published to the MQTT broker",
	})
	MQTTPublishFailTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "meshfreq_mqtt_publish_fail_total",
		Help: "MQTT publish attempts that failed",
	})
)

func init() {
	prometheus.MustRegister(
		ResolvesTotal,
		ResolvesByRegion,
		ResolveErrorsTotal,
		MQTTPublishTotal,
		MQTTPublishFailTotal,
	)
}

// Handler returns the HTTP handler serving the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
