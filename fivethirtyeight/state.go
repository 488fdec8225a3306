/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package fivethirtyeight

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/mikeb26/marchmadness-bracketbot/bracket"
	"github.com/mikeb26/marchmadness-bracketbot/internal"
)

// BracketState is a snapshot of which teams the interactive bracket SVG
// currently shows in each round. It implements bracket.StateReader, so a
// partially-filled bracket on the page can be reconciled into a
// Tournament before simulating the remainder.
type BracketState struct {
	byRound map[bracket.RoundKind]map[string]bool
}

// FetchBracketState scrapes the bracket SVG. The roster is needed to map
// the page's normalized node names back to canonical team names.
func (c *Client) FetchBracketState(ctx context.Context,
	teams []bracket.Team) (*BracketState, error) {

	doc, err := fetchDoc(ctx, c.forecastClient, internal.ForecastURL)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch 538 bracket: %w", err)
	}

	return parseBracketState(doc, teams), nil
}

// parseBracketState reads the bracket node ids. Each remaining team has
// one node per round with id "node-<normalized name>-<depth>" where
// depth counts down toward the championship (depth = 7 - round).
func parseBracketState(doc *goquery.Document,
	teams []bracket.Team) *BracketState {

	canonical := make(map[string]string, len(teams))
	for _, team := range teams {
		canonical[internal.NodeName(team.Name)] = team.Name
	}

	state := &BracketState{
		byRound: make(map[bracket.RoundKind]map[string]bool),
	}

	doc.Find(".bracket-container svg g.nodes [id^='node-']").Each(
		func(_ int, s *goquery.Selection) {
			id, _ := s.Attr("id")
			rest := strings.TrimPrefix(id, "node-")
			sep := strings.LastIndex(rest, "-")
			if sep < 0 {
				return
			}
			depth, err := strconv.Atoi(rest[sep+1:])
			if err != nil {
				return
			}
			round := 7 - depth
			if round < int(bracket.Round1) || round > int(bracket.Round6) {
				return
			}
			name, ok := canonical[rest[:sep]]
			if !ok {
				return
			}

			kind := bracket.RoundKind(round)
			if state.byRound[kind] == nil {
				state.byRound[kind] = make(map[string]bool)
			}
			state.byRound[kind][name] = true
		})

	return state
}

// ObservedTeams implements bracket.StateReader. Rounds the page shows no
// progress for come back as empty sets.
func (bs *BracketState) ObservedTeams(ctx context.Context,
	round bracket.RoundKind) (map[string]bool, error) {

	return bs.byRound[round], nil
}
