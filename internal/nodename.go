/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"strings"
	"unicode"
)

// NodeName converts a team's display name into the form the forecast
// page uses in its bracket node element ids: letters and dashes survive,
// everything else (spaces, periods, digits, ampersands) is dropped.
// e.g. "Texas A&M-Corpus Christi" becomes "TexasAM-CorpusChristi".
func NodeName(team string) string {
	return strings.Map(func(r rune) rune {
		if r == '-' || unicode.IsLetter(r) {
			return r
		}
		return -1
	}, team)
}
