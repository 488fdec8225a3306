/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package bracket

import (
	"fmt"
)

// Tournament owns one round per RoundKind from round 1 through the
// championship. It is exclusively owned by whichever caller runs the
// simulation or reconciliation pass; nothing here is safe for concurrent
// mutation.
type Tournament struct {
	// Rounds in play order. NewTournament fills rounds 1 through 6;
	// tests may build shorter tournaments directly.
	Rounds []*Round
}

// NewTournament builds round 1 from exactly 64 teams (16 seeds by 4
// regions, play-in losers already excluded by the caller) and empty
// rounds 2 through 6. Each team lands in the matchup at
// seedSlot(seed) + 8*regionIndex.
func NewTournament(teams []Team) (*Tournament, error) {
	if len(teams) != NumRegions*16 {
		return nil, &ValidationError{
			Reason: fmt.Sprintf("expected %d teams, got %d",
				NumRegions*16, len(teams)),
		}
	}

	t := &Tournament{}
	for kind := Round1; kind <= Round6; kind++ {
		t.Rounds = append(t.Rounds, NewRound(kind))
	}

	round1 := t.Round(Round1)
	seen := make(map[string]bool, len(teams))
	for _, team := range teams {
		if team.Seed < 1 || team.Seed > 16 {
			return nil, &ValidationError{
				Reason: fmt.Sprintf("out of bounds seed value %d for %q",
					team.Seed, team.Name),
			}
		}
		key := fmt.Sprintf("%v/%d", team.Region, team.Seed)
		if seen[key] {
			return nil, &ValidationError{
				Reason: fmt.Sprintf("duplicate %v seed %d", team.Region,
					team.Seed),
			}
		}
		seen[key] = true

		ind := seedSlot(team.Seed) + 8*team.Region.Index()
		if err := round1.Matchups[ind].addTeam(team.Name, Round1); err != nil {
			return nil, &ValidationError{Reason: err.Error()}
		}
	}

	for i := range round1.Matchups {
		t1, t2 := round1.Matchups[i].Teams()
		if t1 == "" || t2 == "" {
			return nil, &ValidationError{
				Reason: fmt.Sprintf("round 1 matchup %d is missing a team", i),
			}
		}
	}

	return t, nil
}

// Round returns the round with the given kind, or nil if the tournament
// does not contain it.
func (t *Tournament) Round(kind RoundKind) *Round {
	for _, rd := range t.Rounds {
		if rd.Kind == kind {
			return rd
		}
	}
	return nil
}

// Decide designates winner as the victor of the given matchup and
// advances it into the next round's matchup at half the index, first
// empty slot then second. Deciding the same matchup for the same team
// again is idempotent; deciding for a team not in the matchup, flipping
// an already-decided matchup to the other participant, or advancing a
// third distinct team into a full matchup, fails with a StateError.
// Live play and reconciliation both resolve matchups through this one
// path.
func (t *Tournament) Decide(kind RoundKind, matchupInd int, winner string) error {
	rd := t.Round(kind)
	if rd == nil {
		return &StateError{
			Team:   winner,
			Round:  kind,
			Reason: "tournament does not contain this round",
		}
	}
	if matchupInd < 0 || matchupInd >= len(rd.Matchups) {
		return &StateError{
			Team:   winner,
			Round:  kind,
			Reason: fmt.Sprintf("no matchup with index %d", matchupInd),
		}
	}

	m := &rd.Matchups[matchupInd]
	ind, ok := m.slotOf(winner)
	if !ok {
		return &StateError{
			Team:   winner,
			Round:  kind,
			Reason: fmt.Sprintf("not a participant of matchup %d", matchupInd),
		}
	}
	// a matchup never flips; the prior winner may already be seeded in
	// the next round
	if prev, decided := m.Winner(); decided && prev != winner {
		return &StateError{
			Team:  winner,
			Round: kind,
			Reason: fmt.Sprintf("matchup %d already decided for %q",
				matchupInd, prev),
		}
	}
	if err := m.setWinner(ind, kind); err != nil {
		return err
	}

	next, ok := kind.Next()
	if !ok {
		return nil
	}
	nextRd := t.Round(next)
	if nextRd == nil {
		return nil
	}
	return nextRd.Matchups[matchupInd/2].addTeam(winner, next)
}

// Champion returns the winner of the championship game once decided.
func (t *Tournament) Champion() (string, bool) {
	final := t.Round(Round6)
	if final == nil || len(final.Matchups) != 1 {
		return "", false
	}
	return final.Matchups[0].Winner()
}

// Complete reports whether the championship game has been decided.
func (t *Tournament) Complete() bool {
	_, ok := t.Champion()
	return ok
}
