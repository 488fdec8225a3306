/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package bracket

import (
	"fmt"
)

// ValidationError indicates bad roster input: a seed outside [1,16], a
// duplicate (region, seed) pair, or the wrong number of teams feeding
// round 1.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid bracket: " + e.Reason
}

// StateError indicates the engine was asked to do something its current
// state cannot support, such as deciding a matchup for a non-participant
// or advancing a third team into a full matchup.
type StateError struct {
	Team   string
	Round  RoundKind
	Reason string
}

func (e *StateError) Error() string {
	if e.Team == "" {
		return fmt.Sprintf("%v: %v", e.Round, e.Reason)
	}
	return fmt.Sprintf("%v: team %q: %v", e.Round, e.Team, e.Reason)
}

// LookupError indicates no win probability is available for a team/round
// pair.
type LookupError struct {
	Team  string
	Round RoundKind
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("no win probability for %q in %v", e.Team, e.Round)
}

// ActionError indicates the external action for a decided matchup could
// not be applied. Actions already applied before the failure remain in
// effect; recovery is a fresh run reconciled against the updated external
// state.
type ActionError struct {
	Team  string
	Round RoundKind
	Err   error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("unable to apply winner %q in %v: %v", e.Team,
		e.Round, e.Err)
}

func (e *ActionError) Unwrap() error {
	return e.Err
}
