/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package roster persists the scraped field to disk so simulation runs
// don't re-scrape the team table on every invocation.
package roster

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mikeb26/marchmadness-bracketbot/bracket"
)

// DefaultPath is where the teams command writes the field by default.
const DefaultPath = "teams.json"

// Write stores the teams as pretty-printed JSON at path, replacing any
// prior roster.
func Write(path string, teams []bracket.Team) error {
	data, err := json.MarshalIndent(teams, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to encode roster: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("unable to write roster %s: %w", path, err)
	}

	return nil
}

// Load reads a previously written roster. Team validation happens
// downstream when the tournament is constructed.
func Load(path string) ([]bracket.Team, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read roster %s: %w", path, err)
	}
	var teams []bracket.Team
	if err := json.Unmarshal(data, &teams); err != nil {
		return nil, fmt.Errorf("unable to parse roster %s: %w", path, err)
	}

	return teams, nil
}
