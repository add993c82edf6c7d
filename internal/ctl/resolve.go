package ctl

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/large-farva/meshfreq/internal/freqslot"
)

// ResolveOptions controls the resolve command.
type ResolveOptions struct {
	Region       string
	ChannelName  string
	BandwidthKHz float64 // 0 lets the daemon derive it from the name
	JSON         bool
}

// Resolve asks the daemon to compute the frequency slot for a channel and
// renders the full derivation. An unknown region prints the catalog the
// daemon sent back instead of a bare error.
func Resolve(baseURL string, opts ResolveOptions) error {
	q := url.Values{}
	if opts.Region != "" {
		q.Set("region", opts.Region)
	}
	if opts.ChannelName != "" {
		q.Set("channel", opts.ChannelName)
	}
	if opts.BandwidthKHz > 0 {
		q.Set("bandwidth", strconv.FormatFloat(opts.BandwidthKHz, 'f', -1, 64))
	}

	path := "/api/resolve"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	status, body, err := getRaw(baseURL, path)
	if err != nil {
		return err
	}

	if status == http.StatusBadRequest {
		var fail struct {
			Error   string            `json:"error"`
			Reason  string            `json:"reason"`
			Regions []freqslot.Region `json:"regions"`
		}
		if json.Unmarshal(body, &fail) == nil && fail.Reason == "unknown_region" {
			fmt.Println()
			fmt.Printf("  %s %s\n", colorize(red, "error:"), fail.Error)
			fmt.Println()
			fmt.Println(header("  AVAILABLE REGIONS"))
			t := newTable("  ", "Code", "Description")
			for _, r := range fail.Regions {
				t.row(r.Code, r.Description)
			}
			t.flush()
			fmt.Println()
			return fmt.Errorf("unknown region")
		}
	}
	if status != http.StatusOK {
		var fail struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &fail) == nil && fail.Error != "" {
			return fmt.Errorf("HTTP %d: %s", status, fail.Error)
		}
		return fmt.Errorf("HTTP %d from %s", status, path)
	}

	var res freqslot.Result
	if err := json.Unmarshal(body, &res); err != nil {
		return err
	}

	if opts.JSON {
		return printJSON(res)
	}

	PrintResult(res)
	return nil
}

// PrintResult renders a resolution in the reference tool's layout. Shared
// with the local meshfreq CLI so both surfaces read identically.
func PrintResult(res freqslot.Result) {
	fmt.Printf("Region: %s (%s)\n", res.Region.Code, res.Region.Description)
	fmt.Printf("Frequency Range: %g - %g MHz\n", res.Region.StartMHz, res.Region.EndMHz)
	fmt.Printf("Channel Name: %s\n", res.ChannelName)
	fmt.Printf("Number of Frequency Slots: %d\n", res.NumSlots)
	fmt.Printf("Frequency Slot: %d\n", res.SlotDisplay)
	fmt.Printf("Selected Frequency: %g MHz\n", res.FrequencyMHz)
	fmt.Printf("Bandwidth: %g kHz\n", res.BandwidthKHz)
}
