/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package bracket

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Region is one of the four groupings of 16 seeded teams in the main
// bracket.
type Region int

const (
	West Region = iota
	South
	Midwest
	East
)

// regionIndexes fixes each region's position within round 1. Regions 0
// and 1 meet in one national semifinal and regions 2 and 3 in the other,
// matching the printed bracket layout; the table must not be reordered.
var regionIndexes = map[Region]int{
	West:    0,
	East:    1,
	South:   2,
	Midwest: 3,
}

// NumRegions is the number of regions in the main bracket.
const NumRegions = 4

// Index returns the region's fixed position within round 1.
func (r Region) Index() int {
	return regionIndexes[r]
}

func (r Region) String() string {
	switch r {
	case West:
		return "West"
	case South:
		return "South"
	case Midwest:
		return "Midwest"
	case East:
		return "East"
	}
	return "?"
}

// ParseRegion converts a region name as it appears on the forecast page
// into a Region. Matching is case insensitive.
func ParseRegion(s string) (Region, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "west":
		return West, nil
	case "south":
		return South, nil
	case "midwest":
		return Midwest, nil
	case "east":
		return East, nil
	}
	return 0, &ValidationError{Reason: fmt.Sprintf("unexpected region %q", s)}
}

// MarshalJSON emits the region by name so teams.json stays readable.
func (r Region) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *Region) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseRegion(name)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Seed is a team's rank within its region, always in [1,16].
type Seed int

// NewSeed validates and constructs a Seed.
func NewSeed(v int) (Seed, error) {
	if v < 1 || v > 16 {
		return 0, &ValidationError{
			Reason: fmt.Sprintf("out of bounds seed value %d", v),
		}
	}
	return Seed(v), nil
}

// Team is a single tournament entrant. Name is unique across the
// tournament and (Region, Seed) is unique within a region.
type Team struct {
	Name   string `json:"name"`
	Region Region `json:"region"`
	Seed   Seed   `json:"seed"`
}
