/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package fivethirtyeight

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"

	"github.com/mikeb26/marchmadness-bracketbot/bracket"
	"github.com/mikeb26/marchmadness-bracketbot/internal"
	"github.com/mikeb26/marchmadness-bracketbot/internal/httpcache"
)

// Client fetches the 538 March Madness forecast page. The roster is
// effectively static once the field is announced while the forecast
// percentages move after every game, so the two go through separately
// tuned caching clients.
type Client struct {
	rosterClient   *http.Client
	forecastClient *http.Client
}

func NewClient(ctx context.Context) *Client {
	ret := &Client{
		rosterClient: httpcache.NewCachedHttpClient(ctx, 24*time.Hour),
	}
	if ret.rosterClient != http.DefaultClient {
		ret.forecastClient = httpcache.NewCachedHttpClient(ctx, time.Hour)
	} else {
		ret.forecastClient = http.DefaultClient
	}

	return ret
}

// FetchAll retrieves the roster and the forecast concurrently.
func (c *Client) FetchAll(ctx context.Context) ([]bracket.Team, *Forecast, error) {
	var teams []bracket.Team
	var forecast *Forecast

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		teams, err = c.FetchTeams(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		forecast, err = c.FetchForecast(gCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return teams, forecast, nil
}

// fetchDoc gets the HTML document at the given URL using the configured
// User-Agent.
func fetchDoc(ctx context.Context, client *http.Client,
	url string) (*goquery.Document, error) {

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", internal.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d fetching %s", resp.StatusCode, url)
	}

	return goquery.NewDocumentFromReader(resp.Body)
}
