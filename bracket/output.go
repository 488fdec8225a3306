/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package bracket

import (
	"fmt"
	"strings"
)

const emptySlot = "___"

// BuildBracketOutput formats the tournament into aligned string output,
// one section per round in play order with matchups in index order.
// Winners are marked "(won)"; unfilled slots render as "___".
func BuildBracketOutput(t *Tournament) string {
	var sb strings.Builder

	for _, rd := range t.Rounds {
		type row struct{ team1, team2 string }
		var rows []row
		for i := range rd.Matchups {
			m := &rd.Matchups[i]
			rows = append(rows, row{
				team1: teamDisplay(m, Team1),
				team2: teamDisplay(m, Team2),
			})
		}

		// Compute column width for the left-hand team
		max1 := 0
		for _, r := range rows {
			if l := len(r.team1); l > max1 {
				max1 = l
			}
		}

		sb.WriteString(fmt.Sprintf("%v\n", rd.Kind))
		for _, r := range rows {
			sb.WriteString(fmt.Sprintf("  %-*s vs %s\n", max1, r.team1,
				r.team2))
		}
		sb.WriteString("\n")
	}

	if champ, ok := t.Champion(); ok {
		sb.WriteString(fmt.Sprintf("Champion: %s\n", champ))
	}

	return sb.String()
}

func teamDisplay(m *Matchup, ind MatchupInd) string {
	name := m.Team(ind)
	if name == "" {
		name = emptySlot
	}
	if winner, ok := m.Winner(); ok && winner == m.Team(ind) && name != emptySlot {
		return name + " (won)"
	}
	return name
}
