/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package bracket

// seedSlots maps a mirrored seed to its matchup position within a region's
// eight round-1 matchups. The permutation encodes distance to the final:
// adjacent seeds (e.g. 1 and 2) land in opposite halves so they cannot
// meet before the regional final.
var seedSlots = map[Seed]int{
	1: 0,
	8: 1,
	5: 2,
	4: 3,
	6: 4,
	3: 5,
	7: 6,
	2: 7,
}

// seedSlot returns the round-1 matchup position in [0,7] for a validated
// seed. Seeds above 8 mirror onto their round-1 opponent's seed (1 plays
// 16, 8 plays 9, and so on), so seedSlot(s) == seedSlot(17-s).
func seedSlot(s Seed) int {
	if s > 8 {
		s = 17 - s
	}
	return seedSlots[s]
}
