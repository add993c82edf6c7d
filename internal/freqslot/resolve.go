package freqslot

// Result is the full outcome of one channel-to-frequency resolution. It
// carries every intermediate parameter alongside the final frequency so
// callers can display or log the derivation, and is JSON-tagged for the
// daemon API. Slot is zero-based (the modulo result); SlotDisplay is the
// 1-based number the firmware shows operators.
type Result struct {
	Region       Region  `json:"region"`
	ChannelName  string  `json:"channel_name"`
	BandwidthKHz float64 `json:"bandwidth_khz"`
	NumSlots     int     `json:"num_slots"`
	Slot         int     `json:"slot"`
	SlotDisplay  int     `json:"slot_display"`
	FrequencyMHz float64 `json:"frequency_mhz"`
}

// Resolve runs the whole pipeline: region lookup, bandwidth resolution, slot
// count, name hash, and frequency derivation. overrideKHz > 0 forces that
// bandwidth; otherwise it is derived from the channel name.
//
// An unknown region returns *UnknownRegionError; a band too narrow for the
// bandwidth returns *DegenerateSlotsError. The computation is pure: identical
// inputs always produce identical results.
func Resolve(regionCode, channelName string, overrideKHz float64) (Result, error) {
	region, err := Lookup(regionCode)
	if err != nil {
		return Result{}, err
	}

	bw := ResolveBandwidth(channelName, overrideKHz)

	n := CountSlots(region.StartMHz, region.EndMHz, region.SpacingMHz, bw)
	if n <= 0 {
		return Result{}, &DegenerateSlotsError{NumSlots: n, BandwidthKHz: bw}
	}

	slot, err := SlotIndex(channelName, n)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Region:       region,
		ChannelName:  channelName,
		BandwidthKHz: bw,
		NumSlots:     n,
		Slot:         slot,
		SlotDisplay:  slot + 1,
		FrequencyMHz: FrequencyForSlot(region.StartMHz, slot, bw),
	}, nil
}
