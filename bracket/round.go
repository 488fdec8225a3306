/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package bracket

import (
	"fmt"
)

// RoundKind tags a round: the play-in stage or rounds 1 through 6 of the
// main bracket. Round 6 is the championship game.
type RoundKind int

const (
	PlayIn RoundKind = iota
	Round1
	Round2
	Round3
	Round4
	Round5
	Round6
)

func (k RoundKind) String() string {
	if k == PlayIn {
		return "Play-in"
	}
	return fmt.Sprintf("Round %d", int(k))
}

// NumMatchups returns the fixed matchup count for this round: 4 for the
// play-in stage, 2^(6-n) for round n.
func (k RoundKind) NumMatchups() int {
	if k == PlayIn {
		return 4
	}
	return 1 << (6 - int(k))
}

// Next returns the round the winners advance into. The championship has
// no successor.
func (k RoundKind) Next() (RoundKind, bool) {
	if k == Round6 {
		return 0, false
	}
	return k + 1, true
}

// Round is an ordered sequence of matchups tagged with its RoundKind.
type Round struct {
	Kind     RoundKind
	Matchups []Matchup
}

// NewRound builds an empty round with the matchup count fixed by kind.
func NewRound(kind RoundKind) *Round {
	matchups := make([]Matchup, kind.NumMatchups())
	for i := range matchups {
		matchups[i].index = i
		matchups[i].winner = noWinner
	}
	return &Round{
		Kind:     kind,
		Matchups: matchups,
	}
}

// Decided reports whether every matchup in the round has a winner.
func (rd *Round) Decided() bool {
	for i := range rd.Matchups {
		if !rd.Matchups[i].Decided() {
			return false
		}
	}
	return true
}

// findMatchup returns the matchup containing the named team. Rounds hold
// at most 32 matchups so a linear scan is fine.
func (rd *Round) findMatchup(name string) (*Matchup, bool) {
	for i := range rd.Matchups {
		if _, ok := rd.Matchups[i].slotOf(name); ok {
			return &rd.Matchups[i], true
		}
	}
	return nil, false
}
