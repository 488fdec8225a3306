/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package automate

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mikeb26/marchmadness-bracketbot/bracket"
)

func TestApplyWinner(t *testing.T) {
	var gotPath, gotNode string

	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			var req clickRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Errorf("unable to decode click request: %v", err)
			}
			gotNode = req.Node
			w.WriteHeader(http.StatusOK)
		}))
	defer srv.Close()

	c := NewClient(srv.URL)
	err := c.ApplyWinner(context.Background(), "Texas A&M-Corpus Christi",
		bracket.Round1)
	if err != nil {
		t.Fatalf("ApplyWinner returned error: %v", err)
	}
	if gotPath != "/click" {
		t.Errorf("request path = %q; want /click", gotPath)
	}
	if gotNode != "TexasAM-CorpusChristi-6" {
		t.Errorf("clicked node = %q; want TexasAM-CorpusChristi-6", gotNode)
	}

	// championship click uses depth 1
	err = c.ApplyWinner(context.Background(), "Gonzaga", bracket.Round6)
	if err != nil {
		t.Fatalf("ApplyWinner returned error: %v", err)
	}
	if gotNode != "Gonzaga-1" {
		t.Errorf("clicked node = %q; want Gonzaga-1", gotNode)
	}
}

func TestApplyWinnerServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "element not found", http.StatusInternalServerError)
		}))
	defer srv.Close()

	c := NewClient(srv.URL)
	err := c.ApplyWinner(context.Background(), "Gonzaga", bracket.Round2)
	var actionErr *bracket.ActionError
	if !errors.As(err, &actionErr) {
		t.Fatalf("ApplyWinner error = %v; want *bracket.ActionError", err)
	}
	if actionErr.Team != "Gonzaga" || actionErr.Round != bracket.Round2 {
		t.Errorf("ActionError = %+v; want Team Gonzaga Round 2", actionErr)
	}
}

func TestApplyWinnerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient(srv.URL)
	err := c.ApplyWinner(context.Background(), "Gonzaga", bracket.Round1)
	var actionErr *bracket.ActionError
	if !errors.As(err, &actionErr) {
		t.Fatalf("ApplyWinner error = %v; want *bracket.ActionError", err)
	}
}
