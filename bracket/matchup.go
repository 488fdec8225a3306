/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package bracket

import (
	"strconv"
)

// MatchupInd identifies one of a matchup's two team slots.
type MatchupInd int

const (
	Team1 MatchupInd = iota
	Team2
)

const noWinner MatchupInd = -1

// Matchup is a single pairing of at most two teams with an optional
// winner. Slots fill in order and are never cleared; a matchup moves
// from empty to partially filled to full to decided.
type Matchup struct {
	teams  [2]string
	winner MatchupInd
	index  int
}

// Index returns the matchup's stable 0-based position within its round.
func (m *Matchup) Index() int {
	return m.index
}

// Team returns the name in the given slot, or "" if the slot is empty.
func (m *Matchup) Team(ind MatchupInd) string {
	return m.teams[ind]
}

// Teams returns both slots in order.
func (m *Matchup) Teams() (string, string) {
	return m.teams[0], m.teams[1]
}

// Decided reports whether a winner has been designated.
func (m *Matchup) Decided() bool {
	return m.winner != noWinner
}

// Winner returns the winning team's name if the matchup is decided.
func (m *Matchup) Winner() (string, bool) {
	if m.winner == noWinner {
		return "", false
	}
	return m.teams[m.winner], true
}

// slotOf returns which slot holds the named team.
func (m *Matchup) slotOf(name string) (MatchupInd, bool) {
	if m.teams[Team1] == name && name != "" {
		return Team1, true
	}
	if m.teams[Team2] == name && name != "" {
		return Team2, true
	}
	return noWinner, false
}

// addTeam places name into the first empty slot. Adding a name already
// present is a no-op so re-applying an advancement stays idempotent;
// introducing a third distinct team fails.
func (m *Matchup) addTeam(name string, round RoundKind) error {
	if _, ok := m.slotOf(name); ok {
		return nil
	}
	if m.teams[Team1] == "" {
		m.teams[Team1] = name
	} else if m.teams[Team2] == "" {
		m.teams[Team2] = name
	} else {
		return &StateError{
			Team:  name,
			Round: round,
			Reason: "both teams already set in matchup " +
				strconv.Itoa(m.index),
		}
	}
	return nil
}

// setWinner designates the winning slot. Callers guard against flipping
// a decided matchup; re-designating the same slot is harmless.
func (m *Matchup) setWinner(ind MatchupInd, round RoundKind) error {
	if m.teams[ind] == "" {
		return &StateError{
			Round:  round,
			Reason: "cannot designate an empty slot as winner of matchup " + strconv.Itoa(m.index),
		}
	}
	m.winner = ind
	return nil
}
