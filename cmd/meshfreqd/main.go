// Meshfreqd is the resolver daemon. It serves the channel-to-frequency
// computation over HTTP for embedding in other tools, streams resolution
// events over WebSocket, and optionally republishes them to MQTT. Shutdown
// is handled gracefully on SIGINT or SIGTERM.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/large-farva/meshfreq/internal/app"
	"github.com/large-farva/meshfreq/internal/config"
)

func main() {
	var (
		configPath = pflag.StringP("config", "c", "/etc/meshfreq/meshfreq.toml", "Path to config TOML")
		bind       = pflag.String("bind", "", "HTTP bind address (overrides config)")
	)
	pflag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		// A missing config file is fine; the defaults describe a fully
		// working daemon. Anything else is a real configuration error.
		if !os.IsNotExist(err) {
			log.Fatalf("config load failed: %v", err)
		}
		cfg = config.Default()
	}

	logger := log.New(os.Stdout, "meshfreqd ", log.LstdFlags|log.Lmicroseconds)

	a := app.New(app.Options{
		Logger: logger,
		Cfg:    cfg,
		Bind:   *bind,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalf("meshfreqd failed: %v", err)
	}

	// Brief pause so in-flight log writes can flush before exit.
	time.Sleep(50 * time.Millisecond)
}
