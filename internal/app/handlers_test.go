package app

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/large-farva/meshfreq/internal/config"
	"github.com/large-farva/meshfreq/internal/freqslot"
)

func newTestApp() *App {
	return New(Options{
		Logger: log.New(io.Discard, "", 0),
		Cfg:    config.Default(),
	})
}

func TestHandleHealthz(t *testing.T) {
	t.Parallel()

	a := newTestApp()
	rec := httptest.NewRecorder()
	a.handleHealthz(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok\n", rec.Body.String())
}

func TestHandleResolveDefaults(t *testing.T) {
	t.Parallel()

	// No query params: the configured defaults (US, LongFast, derived
	// bandwidth) apply.
	a := newTestApp()
	rec := httptest.NewRecorder()
	a.handleResolve(rec, httptest.NewRequest(http.MethodGet, "/api/resolve", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var res freqslot.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	assert.Equal(t, "US", res.Region.Code)
	assert.Equal(t, "LongFast", res.ChannelName)
	assert.Equal(t, 250.0, res.BandwidthKHz)
	assert.Equal(t, 104, res.NumSlots)
	assert.Equal(t, 20, res.SlotDisplay)
	assert.Equal(t, 906.875, res.FrequencyMHz)
}

func TestHandleResolveExplicitParams(t *testing.T) {
	t.Parallel()

	a := newTestApp()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/resolve?region=EU_868&channel=LongFast", nil)
	a.handleResolve(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var res freqslot.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	assert.Equal(t, 28, res.NumSlots)
	assert.Equal(t, 20, res.SlotDisplay)
	assert.Equal(t, 867.875, res.FrequencyMHz)
}

func TestHandleResolveBandwidthOverride(t *testing.T) {
	t.Parallel()

	a := newTestApp()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/resolve?region=US&channel=LongFast&bandwidth=500", nil)
	a.handleResolve(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var res freqslot.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	assert.Equal(t, 500.0, res.BandwidthKHz)
	assert.Equal(t, 52, res.NumSlots)
	assert.Equal(t, 911.75, res.FrequencyMHz)
}

func TestHandleResolveUnknownRegion(t *testing.T) {
	t.Parallel()

	a := newTestApp()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/resolve?region=MARS", nil)
	a.handleResolve(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		OK      bool              `json:"ok"`
		Error   string            `json:"error"`
		Reason  string            `json:"reason"`
		Regions []freqslot.Region `json:"regions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.False(t, body.OK)
	assert.Equal(t, "unknown_region", body.Reason)
	assert.Contains(t, body.Error, "MARS")
	// The full catalog rides along so the caller can self-correct.
	assert.Len(t, body.Regions, len(freqslot.Regions))
}

func TestHandleResolveMalformedBandwidth(t *testing.T) {
	t.Parallel()

	a := newTestApp()
	for _, raw := range []string{"wide", "-125", "0"} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/resolve?bandwidth="+raw, nil)
		a.handleResolve(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "bandwidth=%s", raw)
	}
}

func TestHandleResolveDegenerateBandwidth(t *testing.T) {
	t.Parallel()

	a := newTestApp()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/resolve?region=RU&bandwidth=501", nil)
	a.handleResolve(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		OK    bool   `json:"ok"`
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.OK)
	assert.Contains(t, body.Error, "bandwidth")
}

func TestHandleRegions(t *testing.T) {
	t.Parallel()

	a := newTestApp()
	rec := httptest.NewRecorder()
	a.handleRegions(rec, httptest.NewRequest(http.MethodGet, "/api/regions", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Regions []freqslot.Region `json:"regions"`
		Presets []string          `json:"presets"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Len(t, body.Regions, 18)
	assert.Equal(t, "US", body.Regions[0].Code)
	assert.Contains(t, body.Presets, "LongFast")
}

func TestHandleStatusCountsResolutions(t *testing.T) {
	t.Parallel()

	a := newTestApp()

	rec := httptest.NewRecorder()
	a.handleResolve(rec, httptest.NewRequest(http.MethodGet, "/api/resolve", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	a.handleStatus(rec, httptest.NewRequest(http.MethodGet, "/api/status", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var status struct {
		Name        string `json:"name"`
		State       string `json:"state"`
		Resolutions uint64 `json:"resolutions"`
		Regions     int    `json:"regions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))

	assert.Equal(t, "meshfreq", status.Name)
	assert.Equal(t, "BOOTING", status.State)
	assert.Equal(t, uint64(1), status.Resolutions)
	assert.Equal(t, 18, status.Regions)
}

func TestHandleVersion(t *testing.T) {
	t.Parallel()

	a := newTestApp()
	rec := httptest.NewRecorder()
	a.handleVersion(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, Version, body["version"])
}
