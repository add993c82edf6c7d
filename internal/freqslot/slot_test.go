package freqslot

import "testing"

func TestCountSlotsAtDefaultBandwidth(t *testing.T) {
	t.Parallel()

	// Slot counts for every catalog region at the 250 kHz default,
	// pinned against the reference implementation.
	want := map[string]int{
		"US":     104,
		"EU_868": 28,
		"EU_433": 7,
		"ANZ":    52,
		"NZ_865": 16,
		"CN":     160,
		"JP":     32,
		"KR":     12,
		"TW":     20,
		"RU":     2,
		"IN":     8,
		"NP_865": 8,
		"TH":     20,
		"MY_919": 20,
		"MY_433": 8,
		"SG_923": 20,
		"UA_868": 28,
		"UA_433": 7,
	}

	for _, r := range Regions {
		got := CountSlots(r.StartMHz, r.EndMHz, r.SpacingMHz, 250)
		if got != want[r.Code] {
			t.Errorf("%s: CountSlots at 250 kHz = %d, want %d", r.Code, got, want[r.Code])
		}
	}
}

func TestCountSlotsDegenerate(t *testing.T) {
	t.Parallel()

	// Russia's band is only 0.5 MHz wide; anything over 500 kHz leaves
	// no whole slot. A non-positive count is a valid return here.
	if got := CountSlots(868.7, 869.2, 0, 501); got != 0 {
		t.Errorf("CountSlots(RU, 501 kHz) = %d, want 0", got)
	}
	if got := CountSlots(868.7, 869.2, 0, 500); got != 1 {
		t.Errorf("CountSlots(RU, 500 kHz) = %d, want 1", got)
	}
}

func TestCountSlotsWithSpacing(t *testing.T) {
	t.Parallel()

	// Spacing widens each slot's footprint. All catalog rows carry 0
	// today, but the formula must honor it.
	if got := CountSlots(902, 928, 0.25, 250); got != 52 {
		t.Errorf("CountSlots with 0.25 MHz spacing = %d, want 52", got)
	}
}

func TestFrequencyForSlot(t *testing.T) {
	t.Parallel()

	tests := []struct {
		startMHz float64
		slot     int
		bwKHz    float64
		want     float64
	}{
		{902.0, 19, 250, 906.875},
		{902.0, 51, 250, 914.875},
		{863.0, 19, 250, 867.875},
		{902.0, 0, 250, 902.125},
		{902.0, 49, 500, 926.75},
	}

	for _, tc := range tests {
		got := FrequencyForSlot(tc.startMHz, tc.slot, tc.bwKHz)
		if got != tc.want {
			t.Errorf("FrequencyForSlot(%g, %d, %g) = %v, want %v", tc.startMHz, tc.slot, tc.bwKHz, got, tc.want)
		}
	}
}

func TestFrequencyForSlotStaysInBand(t *testing.T) {
	t.Parallel()

	// Every valid slot's center frequency must lie within [start, end)
	// for every catalog region, at each preset-derived bandwidth.
	for _, r := range Regions {
		for _, bw := range []float64{125, 250, 500} {
			n := CountSlots(r.StartMHz, r.EndMHz, r.SpacingMHz, bw)
			for slot := 0; slot < n; slot++ {
				f := FrequencyForSlot(r.StartMHz, slot, bw)
				if f < r.StartMHz || f >= r.EndMHz {
					t.Errorf("%s @ %g kHz: slot %d center %g MHz outside [%g, %g)",
						r.Code, bw, slot, f, r.StartMHz, r.EndMHz)
				}
			}
		}
	}
}
