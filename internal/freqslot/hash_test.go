package freqslot

import (
	"errors"
	"testing"
)

func TestHash(t *testing.T) {
	t.Parallel()

	// Values pinned against the reference implementation. If any of these
	// move, interoperability with deployed devices is broken.
	tests := []struct {
		name string
		want uint32
	}{
		{"", 5381},
		{"a", 177670},
		{"LongFast", 130429955},
		{"MediumSlow", 1461554379},
		{"ShortTurbo", 2758524545},
		{"LongSlow", 130908986},
		// Long enough to wrap 2^32 many times over.
		{"12345678901234567890123456789012345678901234567890", 2763104806},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := Hash(tc.name); got != tc.want {
				t.Errorf("Hash(%q) = %d, want %d", tc.name, got, tc.want)
			}
		})
	}
}

func TestHashUTF16CodeUnits(t *testing.T) {
	t.Parallel()

	// BMP characters hash as single code units.
	if got := Hash("Café"); got != 2088990616 {
		t.Errorf("Hash(%q) = %d, want 2088990616", "Café", got)
	}

	// U+1F4E1 is outside the BMP: it must hash as the surrogate pair
	// D83D DCE1, not as one code point or four UTF-8 bytes.
	if got := Hash("\U0001F4E1net"); got != 3390852490 {
		t.Errorf("Hash(%q) = %d, want 3390852490", "\U0001F4E1net", got)
	}
}

func TestSlotIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		channel  string
		numSlots int
		want     int
	}{
		{"LongFast", 104, 19},
		{"MediumSlow", 104, 51},
		{"LongFast", 28, 19},
		{"ShortTurbo", 52, 49},
	}

	for _, tc := range tests {
		got, err := SlotIndex(tc.channel, tc.numSlots)
		if err != nil {
			t.Fatalf("SlotIndex(%q, %d): %v", tc.channel, tc.numSlots, err)
		}
		if got != tc.want {
			t.Errorf("SlotIndex(%q, %d) = %d, want %d", tc.channel, tc.numSlots, got, tc.want)
		}
	}
}

func TestSlotIndexDegenerate(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, -1} {
		_, err := SlotIndex("LongFast", n)
		if err == nil {
			t.Fatalf("SlotIndex with %d slots: expected error, got nil", n)
		}
		var degenerate *DegenerateSlotsError
		if !errors.As(err, &degenerate) {
			t.Fatalf("SlotIndex with %d slots: error %v is not *DegenerateSlotsError", n, err)
		}
		if degenerate.NumSlots != n {
			t.Errorf("DegenerateSlotsError.NumSlots = %d, want %d", degenerate.NumSlots, n)
		}
	}
}

func TestSlotIndexCollisionPossible(t *testing.T) {
	t.Parallel()

	// Distinct names may land on the same slot; the mapping makes no
	// injectivity promise. LongFast and MediumSlow collide at 28 slots
	// (the EU_868 default), which is why cross-preset interference is a
	// real deployment concern.
	a, err := SlotIndex("LongFast", 28)
	if err != nil {
		t.Fatal(err)
	}
	b, err := SlotIndex("MediumSlow", 28)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("expected LongFast and MediumSlow to collide at 28 slots, got %d and %d", a, b)
	}
}
