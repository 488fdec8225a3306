/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"testing"
)

func TestNodeName(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain name",
			in:   "Gonzaga",
			want: "Gonzaga",
		},
		{
			name: "spaces dropped",
			in:   "Michigan State",
			want: "MichiganState",
		},
		{
			name: "dash kept",
			in:   "Texas A&M-Corpus Christi",
			want: "TexasAM-CorpusChristi",
		},
		{
			name: "periods and digits dropped",
			in:   "St. Peter's 15",
			want: "StPeters",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := NodeName(c.in); got != c.want {
				t.Errorf("NodeName(%q) = %q; want %q", c.in, got, c.want)
			}
		})
	}
}
