/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package bracket

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

// Predictor supplies the win probability, as an integer percent in
// [0,100], for the named team in the given round's matchup. A missing
// prediction fails with a LookupError.
type Predictor interface {
	WinProbability(ctx context.Context, team string, round RoundKind) (int, error)
}

// ActionSink reflects a decided matchup externally (e.g. clicking the
// team's node on the forecast bracket). Failures are ActionErrors and
// are never retried.
type ActionSink interface {
	ApplyWinner(ctx context.Context, team string, round RoundKind) error
}

// Simulator resolves every undecided matchup round by round using an
// external Predictor, reporting each decision to an ActionSink. A nil
// sink skips external reporting (dry runs).
type Simulator struct {
	pred Predictor
	sink ActionSink
	rnd  *rand.Rand
}

// NewSimulator builds a Simulator. Passing a nil rnd seeds one from the
// clock; tests pass a fixed-seed source for reproducible runs.
func NewSimulator(pred Predictor, sink ActionSink, rnd *rand.Rand) *Simulator {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Simulator{
		pred: pred,
		sink: sink,
		rnd:  rnd,
	}
}

// Run resolves the tournament in strict bracket order: rounds in
// increasing order, matchups in index order within each round. For each
// undecided matchup it draws uniformly in [0,1) against the first slot
// team's win probability, decides the matchup, and reports the winner to
// the sink. The first error anywhere aborts the run; already-applied
// external actions stay in effect and a later run can resume via
// Reconcile. Returns the champion on success.
func (s *Simulator) Run(ctx context.Context, t *Tournament) (string, error) {
	for _, rd := range t.Rounds {
		if rd.Kind == PlayIn {
			// play-in results are folded into the roster upstream
			continue
		}
		for i := range rd.Matchups {
			m := &rd.Matchups[i]
			if m.Decided() {
				continue
			}
			team1, team2 := m.Teams()
			if team1 == "" || team2 == "" {
				return "", &StateError{
					Round:  rd.Kind,
					Reason: fmt.Sprintf("matchup %d is missing a team", i),
				}
			}

			pct, err := s.pred.WinProbability(ctx, team1, rd.Kind)
			if err != nil {
				return "", err
			}
			winner := team2
			if s.rnd.Float64() < float64(pct)/100.0 {
				winner = team1
			}

			if err := t.Decide(rd.Kind, i, winner); err != nil {
				return "", err
			}
			if s.sink != nil {
				if err := s.sink.ApplyWinner(ctx, winner, rd.Kind); err != nil {
					return "", err
				}
			}
		}
	}

	champ, ok := t.Champion()
	if !ok {
		return "", &StateError{
			Round:  Round6,
			Reason: "championship matchup left undecided",
		}
	}
	return champ, nil
}
