package freqslot

import (
	"fmt"
	"unicode/utf16"
)

// Hash computes the djb2 hash (Dan Bernstein: seed 5381, multiplier 33) of a
// channel name, matching the firmware's channel hashing. Arithmetic wraps at
// 2^32, which uint32 gives us natively.
//
// The input is iterated as UTF-16 code units, not bytes or runes, matching
// the string model this mapping was validated against. ASCII names are
// unaffected;
// for names outside the BMP each half of the surrogate pair is hashed
// separately. Whether the firmware itself iterates UTF-8 bytes or UTF-16
// units for non-ASCII names is unverified, so this choice is pinned by tests
// rather than assumed interchangeable.
func Hash(name string) uint32 {
	var h uint32 = 5381
	for _, u := range utf16.Encode([]rune(name)) {
		h = h*33 + uint32(u)
	}
	return h
}

// DegenerateSlotsError reports a slot count of zero or less, meaning the
// bandwidth is too wide for the region's band. The modulo that would follow
// is detected and refused here rather than left to fault as a division by
// zero.
type DegenerateSlotsError struct {
	NumSlots     int
	BandwidthKHz float64
}

func (e *DegenerateSlotsError) Error() string {
	if e.BandwidthKHz > 0 {
		return fmt.Sprintf("no usable frequency slots (count %d): bandwidth %g kHz too wide for band", e.NumSlots, e.BandwidthKHz)
	}
	return fmt.Sprintf("no usable frequency slots (count %d)", e.NumSlots)
}

// SlotIndex reduces the channel-name hash modulo the slot count, yielding a
// zero-based slot in [0, numSlots). numSlots <= 0 returns a
// *DegenerateSlotsError.
func SlotIndex(channelName string, numSlots int) (int, error) {
	if numSlots <= 0 {
		return 0, &DegenerateSlotsError{NumSlots: numSlots}
	}
	return int(Hash(channelName) % uint32(numSlots)), nil
}
