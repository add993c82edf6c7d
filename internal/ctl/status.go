package ctl

import (
	"fmt"
	"strings"
	"time"
)

// StatusResponse mirrors the JSON returned by GET /api/status.
type StatusResponse struct {
	Name          string `json:"name"`
	State         string `json:"state"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	Resolutions   uint64 `json:"resolutions"`
	Regions       int    `json:"regions"`
	DemoEnabled   bool   `json:"demo_enabled"`
	MQTTEnabled   bool   `json:"mqtt_enabled"`
}

// Status fetches the daemon status and prints a formatted summary.
func Status(baseURL string, jsonOutput bool) error {
	var s StatusResponse
	if err := getJSON(baseURL, "/api/status", &s); err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(s)
	}

	uptime := formatDuration(time.Duration(s.UptimeSeconds) * time.Second)
	stateStr := colorize(stateColor(s.State), s.State)

	fmt.Println()
	fmt.Println(header("  MESHFREQ DAEMON STATUS"))
	fmt.Println(colorize(dim, "  "+strings.Repeat("─", 38)))
	fmt.Printf("  %-14s %s\n", colorize(dim, "Daemon:"), s.Name)
	fmt.Printf("  %-14s %s\n", colorize(dim, "State:"), stateStr)
	fmt.Printf("  %-14s %s\n", colorize(dim, "Uptime:"), uptime)
	fmt.Printf("  %-14s %d\n", colorize(dim, "Resolutions:"), s.Resolutions)
	fmt.Printf("  %-14s %d\n", colorize(dim, "Regions:"), s.Regions)
	fmt.Printf("  %-14s %v\n", colorize(dim, "Demo:"), s.DemoEnabled)
	fmt.Printf("  %-14s %v\n", colorize(dim, "MQTT:"), s.MQTTEnabled)
	fmt.Printf("  %-14s %s\n", colorize(dim, "Host:"), strings.TrimRight(baseURL, "/"))
	fmt.Println()

	return nil
}
