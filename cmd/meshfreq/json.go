package main

import (
	"encoding/json"
	"fmt"

	"github.com/large-farva/meshfreq/internal/freqslot"
)

// printResultJSON writes the result as indented JSON, the shape the daemon's
// /api/resolve endpoint returns, so scripts can treat both sources alike.
func printResultJSON(res freqslot.Result) error {
	b, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}
