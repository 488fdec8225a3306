/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package fivethirtyeight

import (
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/mikeb26/marchmadness-bracketbot/bracket"
)

const bracketSVGHTML = `
<html><body>
<div class="bracket-container">
<svg><g><g class="nodes">
  <circle id="node-Gonzaga-6"></circle>
  <circle id="node-Gonzaga-5"></circle>
  <circle id="node-MichiganState-6"></circle>
  <circle id="node-TexasAM-CorpusChristi-6"></circle>
  <circle id="node-Unknown-6"></circle>
  <circle id="node-Gonzaga-99"></circle>
  <circle id="not-a-node"></circle>
</g></g></svg>
</div>
</body></html>`

func TestParseBracketState(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(bracketSVGHTML))
	if err != nil {
		t.Fatalf("unable to build document: %v", err)
	}
	teams := []bracket.Team{
		{Name: "Gonzaga", Region: bracket.West, Seed: 1},
		{Name: "Michigan State", Region: bracket.East, Seed: 7},
		{Name: "Texas A&M-Corpus Christi", Region: bracket.South, Seed: 16},
	}

	state := parseBracketState(doc, teams)
	ctx := context.Background()

	// depth 6 nodes are round-1 presence
	round1, err := state.ObservedTeams(ctx, bracket.Round1)
	if err != nil {
		t.Fatalf("ObservedTeams returned error: %v", err)
	}
	for _, name := range []string{"Gonzaga", "Michigan State",
		"Texas A&M-Corpus Christi"} {
		if !round1[name] {
			t.Errorf("round 1 observation missing %q: %v", name, round1)
		}
	}
	if round1["Unknown"] {
		t.Errorf("round 1 observation contains a team not on the roster")
	}

	// only Gonzaga has advanced to round 2 (depth 5)
	round2, err := state.ObservedTeams(ctx, bracket.Round2)
	if err != nil {
		t.Fatalf("ObservedTeams returned error: %v", err)
	}
	if len(round2) != 1 || !round2["Gonzaga"] {
		t.Errorf("round 2 observation = %v; want only Gonzaga", round2)
	}

	// rounds with no nodes come back empty
	round5, err := state.ObservedTeams(ctx, bracket.Round5)
	if err != nil {
		t.Fatalf("ObservedTeams returned error: %v", err)
	}
	if len(round5) != 0 {
		t.Errorf("round 5 observation = %v; want empty", round5)
	}
}
