package freqslot

import "math"

// CountSlots derives the number of non-overlapping channel slots that fit in
// a band. The division is done in float64 before flooring, matching the
// firmware's integer-slot semantics: a partially fitting slot at the band
// edge is discarded, including any edge-of-band rounding artifacts the
// floating arithmetic produces.
//
// A result of zero or less is a valid return (bandwidth too wide for the
// band), not an error; callers must check it before taking a modulo.
func CountSlots(startMHz, endMHz, spacingMHz, bandwidthKHz float64) int {
	return int(math.Floor((endMHz - startMHz) / (spacingMHz + bandwidthKHz/1000)))
}

// FrequencyForSlot converts a zero-based slot index back into a center
// frequency in MHz, placing each slot's center half a channel-width above
// its lower edge.
func FrequencyForSlot(startMHz float64, slot int, bandwidthKHz float64) float64 {
	return startMHz + bandwidthKHz/2000 + float64(slot)*(bandwidthKHz/1000)
}
