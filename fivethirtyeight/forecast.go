/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package fivethirtyeight

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/mikeb26/marchmadness-bracketbot/bracket"
	"github.com/mikeb26/marchmadness-bracketbot/internal"
)

type forecastKey struct {
	team  string
	round bracket.RoundKind
}

// Forecast holds the per-team, per-round win percentages scraped from
// the forecast page. It implements bracket.Predictor.
type Forecast struct {
	probs map[forecastKey]int

	// Updated is the page's own "Updated ..." timestamp, zero when the
	// page omits or changes it.
	Updated time.Time
}

// FetchForecast scrapes win percentages for every team and round from
// the forecast team table.
func (c *Client) FetchForecast(ctx context.Context) (*Forecast, error) {
	doc, err := fetchDoc(ctx, c.forecastClient, internal.ForecastURL)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch 538 forecast: %w", err)
	}

	return parseForecast(doc)
}

// parseForecast extracts the percent cells from the team table. Each row
// carries one td.pct per round (data-round 1..6) rendered as "73%",
// ">99%", or "<1%".
func parseForecast(doc *goquery.Document) (*Forecast, error) {
	forecast := &Forecast{
		probs: make(map[forecastKey]int),
	}
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

			row.Find("td.pct").EachWithBreak(
				func(cellInd int, cell *goquery.Selection) bool {
					round := cellInd + 1
					if attr, ok := cell.Attr("data-round"); ok {
						if v, err := strconv.Atoi(attr); err == nil {
							round = v
						}
					}
					if round < int(bracket.Round1) || round > int(bracket.Round6) {
						return true
					}
					pct, err := ParsePercent(cell.Text())
					if err != nil {
						parseErr = fmt.Errorf("team %q round %d: %w", name,
							round, err)
						return false
					}
					forecast.probs[forecastKey{
						team:  name,
						round: bracket.RoundKind(round),
					}] = pct
					return true
				})
			return parseErr == nil
		})
	if parseErr != nil {
		return nil, fmt.Errorf("unable to parse 538 forecast: %w", parseErr)
	}

	forecast.Updated = parseUpdated(doc)

	return forecast, nil
}

// parseUpdated pulls the page's "Updated March 17, 2022, at 5:42 PM"
// timestamp. Best effort; the engine never depends on it.
func parseUpdated(doc *goquery.Document) time.Time {
	text := strings.TrimSpace(doc.Find("p.timestamp").First().Text())
	text = strings.TrimPrefix(text, "Updated")
	text = strings.ReplaceAll(text, ", at ", " ")
	text = strings.ReplaceAll(text, " at ", " ")
	updated, err := internal.ParseDateOrZero(strings.TrimSpace(text))
	if err != nil {
		log.Printf("fivethirtyeight: unable to parse forecast timestamp: %v",
			err)
		return time.Time{}
	}
	return updated
}

// WinProbability implements bracket.Predictor.
func (f *Forecast) WinProbability(ctx context.Context, team string,
	round bracket.RoundKind) (int, error) {

	pct, ok := f.lookup(team, round)
	if !ok {
		return 0, &bracket.LookupError{Team: team, Round: round}
	}
	return pct, nil
}

func (f *Forecast) lookup(team string, round bracket.RoundKind) (int, bool) {
	pct, ok := f.probs[forecastKey{team: team, round: round}]
	return pct, ok
}

// ParsePercent converts a forecast percent cell into an integer percent.
// The page renders near-certain outcomes as ">99%" and near-impossible
// ones as "<1%"; those normalize to 100 and 0. Everything else must be a
// literal integer percent.
func ParsePercent(s string) (int, error) {
	s = strings.TrimSpace(s)
	switch s {
	case ">99%":
		return 100, nil
	case "<1%":
		return 0, nil
	}

	digits, ok := strings.CutSuffix(s, "%")
	if !ok {
		return 0, fmt.Errorf("unparseable win percentage %q", s)
	}
	pct, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("unparseable win percentage %q", s)
	}
	if pct < 0 || pct > 100 {
		return 0, fmt.Errorf("win percentage %q out of range", s)
	}

	return pct, nil
}
