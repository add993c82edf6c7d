// Meshfreq computes the frequency slot a mesh network assigns to a named
// channel, locally and offline. It is the command-line face of the resolver:
// give it a region and a channel name and it prints the slot and center
// frequency every correctly configured device in that mesh will land on.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/large-farva/meshfreq/internal/ctl"
	"github.com/large-farva/meshfreq/internal/freqslot"
)

func main() {
	var (
		channelName = pflag.StringP("channel-name", "n", freqslot.DefaultChannel,
			"Channel name to hash (default: 'LongFast')")
		bandwidth = pflag.Float64P("bandwidth", "b", 0,
			"Bandwidth in kHz (default: derived from the channel name)")
		region = pflag.StringP("region", "r", freqslot.DefaultRegion,
			"LoRa region code (use --region help to list regions)")
		jsonOut = pflag.Bool("json", false,
			"Output the result as JSON instead of formatted text")
	)
	pflag.Parse()

	if *region == "help" {
		fmt.Println("Available LoRa regions:")
		for _, r := range freqslot.Regions {
			fmt.Printf("  %s: %s\n", r.Code, r.Description)
		}
		return
	}

	if *bandwidth < 0 {
		fmt.Fprintf(os.Stderr, "error: bandwidth must be a positive number of kHz, got %g\n", *bandwidth)
		os.Exit(2)
	}

	res, err := freqslot.Resolve(*region, *channelName, *bandwidth)
	if err != nil {
		var unknown *freqslot.UnknownRegionError
		if errors.As(err, &unknown) {
			fmt.Fprintf(os.Stderr, "Error: Invalid region '%s' specified.\n\nAvailable regions:\n", unknown.Code)
			for _, r := range unknown.Catalog {
				fmt.Fprintf(os.Stderr, "  %s: %s\n", r.Code, r.Description)
			}
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	if *jsonOut {
		if err := printResultJSON(res); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		return
	}

	ctl.PrintResult(res)
}
