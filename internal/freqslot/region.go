// Package freqslot computes the deterministic frequency slot a mesh-radio
// network assigns to a named channel. The mapping is the one used by the
// Meshtastic firmware: region band parameters, a bandwidth derived from the
// channel name, an integer slot count, and a djb2 hash of the name reduced
// modulo the slot count. Every function here is pure; matching the firmware's
// arithmetic bit-for-bit is the whole job, since any divergence silently puts
// devices on different frequencies.
package freqslot

import (
	"fmt"
	"strings"
)

// Region holds the frequency band parameters for one regulatory region:
// band edges and default channel spacing in MHz, plus a human-readable
// description for catalog listings.
type Region struct {
	Code        string  `json:"code"`
	StartMHz    float64 `json:"start_mhz"`
	EndMHz      float64 `json:"end_mhz"`
	SpacingMHz  float64 `json:"spacing_mhz"`
	Description string  `json:"description"`
}

// Regions is the catalog of supported regulatory regions. The values mirror
// the Meshtastic firmware's regional tables and must not be edited casually:
// interoperability depends on every device computing from identical bands.
// Declaration order is the order used for catalog listings.
var Regions = []Region{
	{Code: "US", StartMHz: 902.0, EndMHz: 928.0, SpacingMHz: 0, Description: "North America - 915 MHz ISM Band"},
	{Code: "EU_868", StartMHz: 863.0, EndMHz: 870.0, SpacingMHz: 0, Description: "Europe - 868 MHz ISM Band"},
	{Code: "EU_433", StartMHz: 433.0, EndMHz: 434.79, SpacingMHz: 0, Description: "Europe - 433 MHz ISM Band"},
	{Code: "ANZ", StartMHz: 915.0, EndMHz: 928.0, SpacingMHz: 0, Description: "Australia/New Zealand - 915 MHz ISM Band"},
	{Code: "NZ_865", StartMHz: 864.0, EndMHz: 868.0, SpacingMHz: 0, Description: "New Zealand - 865 MHz Band"},
	{Code: "CN", StartMHz: 470.0, EndMHz: 510.0, SpacingMHz: 0, Description: "China - 470-510 MHz Band"},
	{Code: "JP", StartMHz: 920.0, EndMHz: 928.0, SpacingMHz: 0, Description: "Japan - 920 MHz Band"},
	{Code: "KR", StartMHz: 920.0, EndMHz: 923.0, SpacingMHz: 0, Description: "Korea - 920 MHz Band"},
	{Code: "TW", StartMHz: 920.0, EndMHz: 925.0, SpacingMHz: 0, Description: "Taiwan - 920 MHz Band"},
	{Code: "RU", StartMHz: 868.7, EndMHz: 869.2, SpacingMHz: 0, Description: "Russia - 868 MHz Band"},
	{Code: "IN", StartMHz: 865.0, EndMHz: 867.0, SpacingMHz: 0, Description: "India - 865 MHz Band"},
	{Code: "NP_865", StartMHz: 865.0, EndMHz: 867.0, SpacingMHz: 0, Description: "Nepal - 865 MHz Band"},
	{Code: "TH", StartMHz: 920.0, EndMHz: 925.0, SpacingMHz: 0, Description: "Thailand - 920 MHz Band"},
	{Code: "MY_919", StartMHz: 919.0, EndMHz: 924.0, SpacingMHz: 0, Description: "Malaysia - 919 MHz Band"},
	{Code: "MY_433", StartMHz: 433.0, EndMHz: 435.0, SpacingMHz: 0, Description: "Malaysia - 433 MHz Band"},
	{Code: "SG_923", StartMHz: 920.0, EndMHz: 925.0, SpacingMHz: 0, Description: "Singapore - 923 MHz Band"},
	{Code: "UA_868", StartMHz: 863.0, EndMHz: 870.0, SpacingMHz: 0, Description: "Ukraine - 868 MHz Band"},
	{Code: "UA_433", StartMHz: 433.0, EndMHz: 434.79, SpacingMHz: 0, Description: "Ukraine - 433 MHz Band"},
}

// DefaultRegion is the region assumed when none is specified.
const DefaultRegion = "US"

// UnknownRegionError reports a lookup for a region code that is not in the
// catalog. It carries the full catalog so callers can present alternatives.
type UnknownRegionError struct {
	Code    string
	Catalog []Region
}

func (e *UnknownRegionError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "unknown region %q; available regions:", e.Code)
	for _, r := range e.Catalog {
		fmt.Fprintf(&b, "\n  %s: %s", r.Code, r.Description)
	}
	return b.String()
}

// Lookup returns the catalog entry for the given region code. Codes are
// matched exactly (case-sensitive). An unknown code returns an
// *UnknownRegionError carrying the catalog.
func Lookup(code string) (Region, error) {
	for _, r := range Regions {
		if r.Code == code {
			return r, nil
		}
	}
	return Region{}, &UnknownRegionError{Code: code, Catalog: Regions}
}
