package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/large-farva/meshfreq/internal/freqslot"
	"github.com/large-farva/meshfreq/internal/metrics"
)

func (a *App) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

func (a *App) handleStatus(w http.ResponseWriter, _ *http.Request) {
	resp := map[string]any{
		"name":           "meshfreq",
		"state":          a.state.Load().(string),
		"uptime_seconds": int64(time.Since(a.startedAt).Seconds()),
		"resolutions":    a.resolves.Load(),
		"regions":        len(freqslot.Regions),
		"defaults":       a.cfg.Defaults,
		"demo_enabled":   a.cfg.Demo.Enabled,
		"mqtt_enabled":   a.cfg.MQTT.Enabled,
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func (a *App) handleVersion(w http.ResponseWriter, _ *http.Request) {
	resp := map[string]any{
		"version":    Version,
		"go_version": GoVersion,
		"built_at":   BuiltAt,
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func (a *App) handleRegions(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"regions": freqslot.Regions,
		"presets": freqslot.Presets,
	})
}

// handleResolve runs the core resolver for ?region=&channel=&bandwidth=.
// Missing parameters fall back to the configured defaults. Unknown regions
// return 400 with the catalog attached so the caller can self-correct;
// a bandwidth too wide for the band returns 422.
func (a *App) handleResolve(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	region := q.Get("region")
	if region == "" {
		region = a.cfg.Defaults.Region
	}
	channel := q.Get("channel")
	if channel == "" {
		channel = a.cfg.Defaults.ChannelName
	}

	bandwidth := a.cfg.Defaults.BandwidthKHz
	if raw := q.Get("bandwidth"); raw != "" {
		var err error
		bandwidth, err = strconv.ParseFloat(raw, 64)
		if err != nil || bandwidth <= 0 {
			metrics.ResolveErrorsTotal.WithLabelValues("bad_request").Inc()
			jsonError(w, fmt.Sprintf("bandwidth %q is not a positive number of kHz", raw), http.StatusBadRequest)
			return
		}
	}

	res, err := freqslot.Resolve(region, channel, bandwidth)
	if err != nil {
		var unknown *freqslot.UnknownRegionError
		if errors.As(err, &unknown) {
			metrics.ResolveErrorsTotal.WithLabelValues("unknown_region").Inc()
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"ok":      false,
				"error":   fmt.Sprintf("unknown region %q", unknown.Code),
				"reason":  "unknown_region",
				"regions": unknown.Catalog,
			})
			return
		}

		var degenerate *freqslot.DegenerateSlotsError
		if errors.As(err, &degenerate) {
			metrics.ResolveErrorsTotal.WithLabelValues("degenerate_slots").Inc()
			jsonError(w, degenerate.Error(), http.StatusUnprocessableEntity)
			return
		}

		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	a.announce("api", res)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(res)
}

// jsonError writes a JSON error response.
func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"ok":    false,
		"error": msg,
	})
}
