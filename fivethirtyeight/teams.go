/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package fivethirtyeight

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/mikeb26/marchmadness-bracketbot/bracket"
	"github.com/mikeb26/marchmadness-bracketbot/internal"
)

// FetchTeams scrapes the full field from the forecast page's team table.
// The result still contains both participants of each play-in game (two
// entries sharing a region/seed pair); see DedupePlayIns.
func (c *Client) FetchTeams(ctx context.Context) ([]bracket.Team, error) {
	doc, err := fetchDoc(ctx, c.rosterClient, internal.ForecastURL)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch 538 team table: %w", err)
	}

	return parseTeams(doc)
}

// parseTeams extracts Team entries from the forecast team table. Each
// row's .team-name cell holds "Name <span>seed</span>" and .region holds
// the region name.
func parseTeams(doc *goquery.Document) ([]bracket.Team, error) {
	var teams []bracket.Team
	var parseErr error

	doc.Find("#team-table tbody tr").EachWithBreak(
		func(_ int, row *goquery.Selection) bool {
			nameCell := row.Find(".team-name")
			seedText := strings.TrimSpace(nameCell.Find("span").Text())
			name := strings.TrimSpace(
				strings.TrimSuffix(strings.TrimSpace(nameCell.Text()), seedText))
			if name == "" {
				parseErr = fmt.Errorf("no team name found")
				return false
			}
			seedNum, err := strconv.Atoi(seedText)
			if err != nil {
				parseErr = fmt.Errorf("no seed found for %q", name)
				return false
			}
			seed, err := bracket.NewSeed(seedNum)
			if err != nil {
				parseErr = err
				return false
			}
			region, err := bracket.ParseRegion(row.Find(".region").Text())
			if err != nil {
				parseErr = err
				return false
			}

			teams = append(teams, bracket.Team{
				Name:   name,
				Region: region,
				Seed:   seed,
			})
			return true
		})
	if parseErr != nil {
		return nil, fmt.Errorf("unable to parse 538 team table: %w", parseErr)
	}

	return teams, nil
}

// DedupePlayIns reduces the scraped field to the 64-team main bracket by
// dropping the weaker entry of each play-in pair. When a forecast is
// available the team with the better round-1 outlook survives; otherwise
// ties break on name order so the result stays deterministic.
func DedupePlayIns(teams []bracket.Team, forecast *Forecast) []bracket.Team {
	sorted := make([]bracket.Team, len(teams))
	copy(sorted, teams)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Region != b.Region {
			return a.Region.Index() < b.Region.Index()
		}
		if a.Seed != b.Seed {
			return a.Seed < b.Seed
		}
		if forecast != nil {
			pa, aOk := forecast.lookup(a.Name, bracket.Round1)
			pb, bOk := forecast.lookup(b.Name, bracket.Round1)
			if aOk && bOk && pa != pb {
				return pa > pb
			}
		}
		return a.Name < b.Name
	})

	var deduped []bracket.Team
	for i, team := range sorted {
		if i > 0 && sorted[i-1].Region == team.Region &&
			sorted[i-1].Seed == team.Seed {
			continue
		}
		deduped = append(deduped, team)
	}

	return deduped
}
