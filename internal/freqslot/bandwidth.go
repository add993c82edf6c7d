package freqslot

// DefaultChannel is the channel name assumed when none is specified. It is
// the firmware's out-of-the-box preset, which is why most meshes share it.
const DefaultChannel = "LongFast"

// DefaultBandwidthKHz is the modem bandwidth assumed for any channel name
// that does not match a narrower or wider preset.
const DefaultBandwidthKHz = 250.0

// Presets lists the known modem preset names. Only ShortTurbo, LongMod, and
// LongSlow change the derived bandwidth; the rest take the 250 kHz default.
// Used for catalog-style listings and the daemon's demo rotation.
var Presets = []string{
	"ShortTurbo",
	"ShortFast",
	"ShortSlow",
	"MediumFast",
	"MediumSlow",
	"LongFast",
	"LongModerate",
	"LongSlow",
}

// BandwidthForChannel maps a channel name to its default modem bandwidth in
// kHz. The mapping is an exact-match naming heuristic mirroring the firmware
// preset defaults, not a general preset parser: it must never be generalized
// or fuzzy-matched, because exactness is part of the compatibility contract.
func BandwidthForChannel(name string) float64 {
	switch name {
	case "ShortTurbo":
		return 500
	case "LongMod", "LongSlow":
		return 125
	default:
		return DefaultBandwidthKHz
	}
}

// ResolveBandwidth returns the explicit override when one is given
// (overrideKHz > 0), otherwise the bandwidth derived from the channel name.
// Overrides are passed through unvalidated: an out-of-range bandwidth is the
// caller's responsibility and surfaces downstream as a degenerate slot count.
func ResolveBandwidth(channelName string, overrideKHz float64) float64 {
	if overrideKHz > 0 {
		return overrideKHz
	}
	return BandwidthForChannel(channelName)
}
