/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package automate applies simulated outcomes to the forecast page
// through a companion browser-automation service: each decided matchup
// becomes one click on the winning team's bracket node. The service
// endpoint is injected here and never reaches the bracket engine.
package automate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/mikeb26/marchmadness-bracketbot/bracket"
	"github.com/mikeb26/marchmadness-bracketbot/internal"
)

// Client talks to the node-clicker service. It implements
// bracket.ActionSink.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient builds a Client for the given service endpoint; an empty
// endpoint selects the default local service.
func NewClient(endpoint string) *Client {
	if endpoint == "" {
		endpoint = internal.DefaultClickerEndpoint
	}
	return &Client{
		endpoint:   strings.TrimSuffix(endpoint, "/"),
		httpClient: http.DefaultClient,
	}
}

type clickRequest struct {
	Node string `json:"node"`
}

// ApplyWinner implements bracket.ActionSink by clicking the winner's
// node for the given round. Any transport failure or non-2xx response is
// an ActionError; the caller decides whether to resume via
// reconciliation. Never retried here.
func (c *Client) ApplyWinner(ctx context.Context, team string,
	round bracket.RoundKind) error {

	node := fmt.Sprintf("%s-%d", internal.NodeName(team), 7-int(round))
	body, err := json.Marshal(clickRequest{Node: node})
	if err != nil {
		return &bracket.ActionError{Team: team, Round: round, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.endpoint+"/click",
		bytes.NewReader(body))
	if err != nil {
		return &bracket.ActionError{Team: team, Round: round, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", internal.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &bracket.ActionError{Team: team, Round: round, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK ||
		resp.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return &bracket.ActionError{
			Team:  team,
			Round: round,
			Err: fmt.Errorf("clicker returned status %d: %s",
				resp.StatusCode, strings.TrimSpace(string(detail))),
		}
	}

	return nil
}
