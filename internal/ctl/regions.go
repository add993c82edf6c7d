package ctl

import (
	"fmt"

	"github.com/large-farva/meshfreq/internal/freqslot"
)

// Regions lists the daemon's region catalog and known preset names.
func Regions(baseURL string, jsonOutput bool) error {
	var resp struct {
		Regions []freqslot.Region `json:"regions"`
		Presets []string          `json:"presets"`
	}
	if err := getJSON(baseURL, "/api/regions", &resp); err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(resp)
	}

	fmt.Println()
	fmt.Println(header("  REGION CATALOG"))

	t := newTable("  ", "Code", "Band (MHz)", "Description")
	for _, r := range resp.Regions {
		t.row(r.Code, fmt.Sprintf("%g - %g", r.StartMHz, r.EndMHz), r.Description)
	}
	t.flush()

	fmt.Println()
	fmt.Printf("  %s", colorize(dim, "Presets: "))
	for i, p := range resp.Presets {
		if i > 0 {
			fmt.Print(", ")
		}
		fmt.Print(p)
	}
	fmt.Println()
	fmt.Println()

	return nil
}
