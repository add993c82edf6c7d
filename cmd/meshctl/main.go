// Meshctl is the command-line client for a running meshfreqd instance. It
// connects over HTTP and WebSocket to query the region catalog, resolve
// channels, and stream live resolution events from the daemon.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/large-farva/meshfreq/internal/ctl"
)

func main() {
	var (
		host    = pflag.StringP("host", "H", "http://127.0.0.1:8080", "Meshfreq daemon URL (e.g. http://192.168.8.1:8080)")
		jsonOut = pflag.Bool("json", false, "Output raw JSON instead of formatted text")
		filter  = pflag.StringSlice("filter", nil, "Event types to show in watch (e.g. --filter resolution,log)")
	)

	// Stop parsing global flags at the first non-flag argument (the command
	// name), so subcommand-specific flags like --region are not rejected.
	pflag.CommandLine.SetInterspersed(false)
	pflag.Parse()

	if pflag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	cmd := pflag.Arg(0)
	subArgs := pflag.Args()[1:]

	var err error
	switch cmd {
	case "status":
		err = ctl.Status(*host, *jsonOut)

	case "version":
		err = ctl.VersionInfo(*host, *jsonOut)

	case "regions":
		err = ctl.Regions(*host, *jsonOut)

	case "resolve":
		opts := ctl.ResolveOptions{JSON: *jsonOut}
		resolveFlags := pflag.NewFlagSet("resolve", pflag.ContinueOnError)
		resolveFlags.StringVarP(&opts.ChannelName, "channel-name", "n", "", "Channel name (default: daemon's configured default)")
		resolveFlags.Float64VarP(&opts.BandwidthKHz, "bandwidth", "b", 0, "Bandwidth in kHz (default: derived from the channel name)")
		resolveFlags.StringVarP(&opts.Region, "region", "r", "", "LoRa region code (default: daemon's configured default)")
		_ = resolveFlags.Parse(subArgs)
		if resolveFlags.NArg() > 0 && opts.ChannelName == "" {
			opts.ChannelName = resolveFlags.Arg(0)
		}
		err = ctl.Resolve(*host, opts)

	case "watch":
		err = ctl.Watch(*host, ctl.WatchOptions{
			Filter: *filter,
			JSON:   *jsonOut,
		})

	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Print(`
  meshctl — meshfreq daemon control CLI

  USAGE
    meshctl [flags] <command> [command-flags]

  COMMANDS
    status          Show daemon state, uptime, and resolution counters
    version         Show CLI and daemon version information
    regions         List the region catalog and known presets
    resolve         Resolve a channel name to its frequency slot
    watch           Stream live events from the daemon (Ctrl-C to stop)

  GLOBAL FLAGS
    -H, --host URL      Daemon base URL (default: http://127.0.0.1:8080)
        --json          Output raw JSON instead of formatted text
        --filter TYPE   Event types to show in watch (comma-separated)

  COMMAND FLAGS
    resolve:
        -n, --channel-name NAME   Channel name to hash
        -b, --bandwidth KHZ       Bandwidth override in kHz
        -r, --region CODE         LoRa region code

  EXAMPLES
    meshctl status
    meshctl --json status
    meshctl regions
    meshctl resolve
    meshctl resolve -n MediumSlow -r EU_868
    meshctl resolve MyPrivateMesh -r US -b 500
    meshctl --host http://192.168.8.1:8080 watch
    meshctl watch --filter resolution,log

`)
}
