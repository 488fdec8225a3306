/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package bracket

import (
	"testing"
)

// TestSeedSlot verifies the canonical NCAA placement for every seed and
// that round-1 opponents (s and 17-s) share a matchup.
func TestSeedSlot(t *testing.T) {
	wantSlots := map[Seed]int{
		1: 0, 16: 0,
		8: 1, 9: 1,
		5: 2, 12: 2,
		4: 3, 13: 3,
		6: 4, 11: 4,
		3: 5, 14: 5,
		7: 6, 10: 6,
		2: 7, 15: 7,
	}

	for s := Seed(1); s <= 16; s++ {
		got := seedSlot(s)
		if got < 0 || got > 7 {
			t.Errorf("seedSlot(%d) = %d; want within [0,7]", s, got)
		}
		if got != wantSlots[s] {
			t.Errorf("seedSlot(%d) = %d; want %d", s, got, wantSlots[s])
		}
		if mirror := seedSlot(17 - s); got != mirror {
			t.Errorf("seedSlot(%d) = %d but seedSlot(%d) = %d; want equal",
				s, got, 17-s, mirror)
		}
	}
}

// TestSeedSlotSeparation checks that the permutation keeps the top two
// seeds in opposite halves of the region so they cannot meet before the
// regional final.
func TestSeedSlotSeparation(t *testing.T) {
	if seedSlot(1) >= 4 || seedSlot(2) < 4 {
		t.Errorf("seeds 1 (slot %d) and 2 (slot %d) must land in opposite halves",
			seedSlot(1), seedSlot(2))
	}
}

func TestNewSeed(t *testing.T) {
	cases := []struct {
		name    string
		in      int
		wantErr bool
	}{
		{name: "lowest valid", in: 1},
		{name: "highest valid", in: 16},
		{name: "zero", in: 0, wantErr: true},
		{name: "too high", in: 17, wantErr: true},
		{name: "negative", in: -3, wantErr: true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, err := NewSeed(c.in)
			if c.wantErr {
				if err == nil {
					t.Errorf("NewSeed(%d) = %v; want error", c.in, s)
				}
				return
			}
			if err != nil {
				t.Errorf("NewSeed(%d) returned error: %v", c.in, err)
			}
			if int(s) != c.in {
				t.Errorf("NewSeed(%d) = %v; want %v", c.in, s, c.in)
			}
		})
	}
}
