// Package app wires together the HTTP server, WebSocket hub, optional MQTT
// publisher, and demo runner. It owns the daemon's lifecycle and is the
// single source of truth for the current operating state. The resolver
// itself is pure and stateless; everything mutable here is presentation
// (counters, connections, event fan-out).
package app

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/large-farva/meshfreq/internal/config"
	"github.com/large-farva/meshfreq/internal/demo"
	"github.com/large-farva/meshfreq/internal/freqslot"
	"github.com/large-farva/meshfreq/internal/metrics"
	"github.com/large-farva/meshfreq/internal/mqtt"
	"github.com/large-farva/meshfreq/internal/telemetry"
	"github.com/large-farva/meshfreq/internal/ws"
)

// Options holds everything the App needs from the caller.
type Options struct {
	Logger *log.Logger
	Cfg    config.Config
	Bind   string
}

// App is the top-level daemon process. It manages the HTTP server, the
// WebSocket event hub, and the optional MQTT publisher and demo runner.
type App struct {
	log    *log.Logger
	cfg    config.Config
	bind   string
	server *http.Server

	startedAt time.Time
	state     atomic.Value // current state string (BOOTING, SERVING)
	resolves  atomic.Uint64

	wsHub     *ws.Hub
	publisher *mqtt.Publisher
}

// New creates an App in the BOOTING state. Call Run to start serving.
func New(opts Options) *App {
	a := &App{
		log:       opts.Logger,
		cfg:       opts.Cfg,
		bind:      opts.Bind,
		startedAt: time.Now(),
		wsHub:     ws.NewHub(),
	}
	a.state.Store("BOOTING")
	return a
}

// Run starts the HTTP server, WebSocket hub, heartbeat ticker, and the
// optional MQTT publisher and demo runner. It blocks until the context is
// cancelled or the server returns an error.
func (a *App) Run(ctx context.Context) error {
	bind := a.bind
	if bind == "" && a.cfg.Server.Bind != "" {
		bind = a.cfg.Server.Bind
	}
	if bind == "" {
		bind = "0.0.0.0:8080"
	}

	pub, err := mqtt.New(a.cfg.MQTT, a.log)
	if err != nil {
		return err
	}
	a.publisher = pub

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", a.handleHealthz)
	mux.HandleFunc("/api/status", a.handleStatus)
	mux.HandleFunc("/api/version", a.handleVersion)
	mux.HandleFunc("/api/regions", a.handleRegions)
	mux.HandleFunc("/api/resolve", a.handleResolve)
	mux.Handle("/metrics", metrics.Handler())
	mux.Handle("/ws", a.wsHub.Handler())

	a.server = &http.Server{
		Addr:              bind,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ln, err := net.Listen("tcp", bind)
	if err != nil {
		return err
	}

	go a.wsHub.Run(ctx)
	a.transition("SERVING")
	go a.heartbeatLoop(ctx)

	a.emitLog("info", fmt.Sprintf("listening on http://%s", bind))

	if a.cfg.Demo.Enabled {
		r := demo.New(a.log, a.announce)
		if a.cfg.Demo.IntervalSeconds > 0 {
			r.Interval = time.Duration(a.cfg.Demo.IntervalSeconds) * time.Second
		}
		go r.Run(ctx)
	}

	go func() {
		<-ctx.Done()
		a.emitLog("info", "shutdown requested")
		if a.publisher != nil {
			a.publisher.Close()
		}
		_ = a.server.Shutdown(context.Background())
	}()

	return a.server.Serve(ln)
}

// transition atomically updates the daemon state and broadcasts the change
// to all connected WebSocket clients.
func (a *App) transition(newState string) {
	old := a.state.Load().(string)
	if old == newState {
		return
	}
	a.state.Store(newState)

	a.wsHub.Publish(string(telemetry.EventState), telemetry.StateTransition{
		Event: telemetry.Event{Type: telemetry.EventState, TS: telemetry.NowTS()},
		From:  old,
		To:    newState,
	})
}

// heartbeatLoop sends a periodic heartbeat event so clients can detect
// connectivity and track uptime without polling.
func (a *App) heartbeatLoop(ctx context.Context) {
	t := time.NewTicker(10 * time.Second)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			a.wsHub.Publish(string(telemetry.EventHeartbeat), telemetry.Heartbeat{
				Event:         telemetry.Event{Type: telemetry.EventHeartbeat, TS: telemetry.NowTS()},
				State:         a.state.Load().(string),
				UptimeSeconds: int64(time.Since(a.startedAt).Seconds()),
				Resolutions:   a.resolves.Load(),
			})
		}
	}
}

// announce records a successful resolution: counters, the WebSocket stream,
// and the MQTT broker when one is configured.
func (a *App) announce(source string, res freqslot.Result) {
	a.resolves.Add(1)
	metrics.ResolvesTotal.Inc()
	metrics.ResolvesByRegion.WithLabelValues(res.Region.Code).Inc()

	a.wsHub.Publish(string(telemetry.EventResolution), telemetry.Resolution{
		Event:  telemetry.Event{Type: telemetry.EventResolution, TS: telemetry.NowTS()},
		Source: source,
		Result: res,
	})

	if a.publisher != nil {
		a.publisher.PublishResult(res)
	}
}

// emitLog mirrors a log line onto the event stream.
func (a *App) emitLog(level, message string) {
	a.log.Printf("%s: %s", level, message)
	a.wsHub.Publish(string(telemetry.EventLog), telemetry.LogLine{
		Event:     telemetry.Event{Type: telemetry.EventLog, TS: telemetry.NowTS()},
		Level:     level,
		Message:   message,
		Component: "meshfreqd",
	})
}
