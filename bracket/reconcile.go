/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package bracket

import (
	"context"
)

// StateReader reports which teams are externally observed as currently
// present in a given round's bracket. Rounds with no observed progress
// return an empty set.
type StateReader interface {
	ObservedTeams(ctx context.Context, round RoundKind) (map[string]bool, error)
}

// Reconcile backfills already-decided matchups from an externally
// observed bracket snapshot: a team present in any round past n must
// have won its round-n matchup. The inference runs as one forward pass
// over rounds 1 through 5 and applies each decision through Decide, the
// same path live play uses, so each inferred winner advances before the
// next round is examined. Given a consistent snapshot the pass is order
// independent and idempotent; reconciling an all-empty snapshot leaves a
// fresh tournament unchanged. Play-in eliminations are resolved upstream
// and never inferred here.
func (t *Tournament) Reconcile(ctx context.Context, reader StateReader) error {
	// accumulate observations from the championship downward so a team
	// seen only deep in the bracket still decides every earlier round
	beyond := make(map[RoundKind]map[string]bool)
	later := make(map[string]bool)
	for kind := Round6; kind > Round1; kind-- {
		observed, err := reader.ObservedTeams(ctx, kind)
		if err != nil {
			return err
		}
		if len(observed) > 0 {
			merged := make(map[string]bool, len(later)+len(observed))
			for name := range later {
				merged[name] = true
			}
			for name := range observed {
				merged[name] = true
			}
			later = merged
		}
		beyond[kind] = later
	}

	for kind := Round1; kind < Round6; kind++ {
		rd := t.Round(kind)
		if rd == nil {
			continue
		}
		next, _ := kind.Next()
		observed := beyond[next]
		if len(observed) == 0 {
			continue
		}

		for i := range rd.Matchups {
			m := &rd.Matchups[i]
			for _, ind := range []MatchupInd{Team1, Team2} {
				name := m.Team(ind)
				if name == "" || !observed[name] {
					continue
				}
				if err := t.Decide(kind, i, name); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
