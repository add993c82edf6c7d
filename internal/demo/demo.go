// Package demo feeds the daemon's event stream without any API traffic. It
// cycles every modem preset across the region catalog, resolving each pair
// and announcing the result, so the CLI, dashboards, and MQTT consumers can
// be exercised end-to-end against realistic data.
package demo

import (
	"context"
	"log"
	"time"

	"github.com/large-farva/meshfreq/internal/freqslot"
)

// Runner announces one resolved preset/region pair per interval.
type Runner struct {
	Interval time.Duration // time between announcements

	log      *log.Logger
	announce func(source string, res freqslot.Result)

	presetIndex int // cycles through the preset list
	regionIndex int // advances when the presets wrap
}

// New creates a demo runner with a sensible default interval. announce is
// called for every successful resolution.
func New(logger *log.Logger, announce func(string, freqslot.Result)) *Runner {
	return &Runner{
		Interval: 30 * time.Second,
		log:      logger,
		announce: announce,
	}
}

// Run kicks off the demo loop. It fires one resolution immediately, then
// repeats on the configured interval until ctx is cancelled.
func (r *Runner) Run(ctx context.Context) {
	r.log.Printf("demo: cycling %d presets across %d regions", len(freqslot.Presets), len(freqslot.Regions))

	if !sleepOrCancel(ctx, 2*time.Second) {
		return
	}
	r.step()

	t := time.NewTicker(r.Interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.step()
		}
	}
}

// step resolves the next preset/region pair and announces it. Presets cycle
// fastest; the region advances each time the preset list wraps around.
func (r *Runner) step() {
	preset := freqslot.Presets[r.presetIndex]
	region := freqslot.Regions[r.regionIndex]

	r.presetIndex++
	if r.presetIndex == len(freqslot.Presets) {
		r.presetIndex = 0
		r.regionIndex = (r.regionIndex + 1) % len(freqslot.Regions)
	}

	res, err := freqslot.Resolve(region.Code, preset, 0)
	if err != nil {
		r.log.Printf("demo: %s/%s: %v", region.Code, preset, err)
		return
	}

	r.log.Printf("demo: %s/%s -> slot %d of %d, %.4f MHz",
		region.Code, preset, res.SlotDisplay, res.NumSlots, res.FrequencyMHz)
	r.announce("demo", res)
}

// sleepOrCancel waits for d, returning false if ctx was cancelled first.
func sleepOrCancel(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}
