package ctl

import (
	"fmt"
	"runtime"
)

// CLIVersion is set via -ldflags at build time, matching the daemon's
// version variables.
var CLIVersion = "dev"

// VersionInfo prints the CLI version and, when reachable, the daemon's.
func VersionInfo(baseURL string, jsonOutput bool) error {
	var daemon struct {
		Version   string `json:"version"`
		GoVersion string `json:"go_version"`
		BuiltAt   string `json:"built_at"`
	}
	daemonErr := getJSON(baseURL, "/api/version", &daemon)

	if jsonOutput {
		out := map[string]any{
			"cli_version":    CLIVersion,
			"cli_go_version": runtime.Version(),
		}
		if daemonErr == nil {
			out["daemon"] = daemon
		} else {
			out["daemon_error"] = daemonErr.Error()
		}
		return printJSON(out)
	}

	fmt.Println()
	fmt.Println(header("  VERSION"))
	fmt.Printf("  %-14s %s (%s)\n", colorize(dim, "meshctl:"), CLIVersion, runtime.Version())
	if daemonErr == nil {
		fmt.Printf("  %-14s %s (%s, built %s)\n", colorize(dim, "meshfreqd:"), daemon.Version, daemon.GoVersion, daemon.BuiltAt)
	} else {
		fmt.Printf("  %-14s %s\n", colorize(dim, "meshfreqd:"), colorize(red, "unreachable: "+daemonErr.Error()))
	}
	fmt.Println()

	return nil
}
