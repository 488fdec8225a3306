/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	_ "embed"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/mikeb26/marchmadness-bracketbot/automate"
	"github.com/mikeb26/marchmadness-bracketbot/bracket"
	"github.com/mikeb26/marchmadness-bracketbot/fivethirtyeight"
	"github.com/mikeb26/marchmadness-bracketbot/internal"
	"github.com/mikeb26/marchmadness-bracketbot/roster"
)

//go:embed help.txt
var helpText string

// cmdHandler defines the signature for command handler functions.
type cmdHandler func(ctx context.Context, args []string)

// commands maps command names to their respective handler functions.
var commands = map[string]cmdHandler{
	"help":     handleHelp,
	"teams":    handleTeams,
	"show":     handleShow,
	"simulate": handleSimulate,
	"resume":   handleResume,
}

func main() {
	ctx := context.Background()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	cmd := os.Args[1]
	if handler, ok := commands[cmd]; ok {
		handler(ctx, os.Args[2:])
	} else {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Printf("%v", helpText)
}

func handleHelp(ctx context.Context, args []string) {
	usage()
}

// handleTeams scrapes the full field from the forecast page and persists
// it. The raw field still carries both play-in entrants per slot; the
// dedupe to 64 happens when a bracket is built.
func handleTeams(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("teams", flag.ExitOnError)
	out := fs.String("out", roster.DefaultPath, "Path to write the team table to")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	client := fivethirtyeight.NewClient(ctx)
	teams, err := client.FetchTeams(ctx)
	if err != nil {
		log.Fatalf("Error fetching teams: %v", err)
	}
	for _, team := range teams {
		log.Printf("Found team %v (%v seed %v)", team.Name, team.Region,
			team.Seed)
	}

	if err := roster.Write(*out, teams); err != nil {
		log.Fatalf("Error writing %v: %v", *out, err)
	}
	fmt.Printf("Wrote %d teams to %s\n", len(teams), *out)
}

// handleShow prints a fresh, unplayed bracket built from the roster.
func handleShow(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	teamsPath := fs.String("teams", roster.DefaultPath, "Path to a previously written team table")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	tourney, _, err := buildTournament(ctx, *teamsPath)
	if err != nil {
		log.Fatalf("Error building bracket: %v", err)
	}
	fmt.Print(bracket.BuildBracketOutput(tourney))
}

func handleSimulate(ctx context.Context, args []string) {
	runSimulation(ctx, "simulate", args, false)
}

// handleResume reconciles against the bracket already visible on the
// forecast page before simulating whatever remains undecided.
func handleResume(ctx context.Context, args []string) {
	runSimulation(ctx, "resume", args, true)
}

func runSimulation(ctx context.Context, name string, args []string,
	reconcile bool) {

	fs := flag.NewFlagSet(name, flag.ExitOnError)
	teamsPath := fs.String("teams", roster.DefaultPath, "Path to a previously written team table")
	endpoint := fs.String("endpoint", internal.DefaultClickerEndpoint, "Browser automation service endpoint")
	seed := fs.Int64("seed", 0, "Random seed; 0 seeds from the clock")
	dryRun := fs.Bool("dry-run", false, "Decide matchups without clicking the page")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	tourney, inputs, err := buildTournament(ctx, *teamsPath)
	if err != nil {
		log.Fatalf("Error building bracket: %v", err)
	}

	if reconcile {
		state, err := inputs.c.FetchBracketState(ctx, inputs.teams)
		if err != nil {
			log.Fatalf("Error fetching bracket state: %v", err)
		}
		if err := tourney.Reconcile(ctx, state); err != nil {
			log.Fatalf("Error reconciling bracket state: %v", err)
		}
	}

	var sink bracket.ActionSink
	if !*dryRun {
		sink = automate.NewClient(*endpoint)
	}
	var rnd *rand.Rand
	if *seed != 0 {
		rnd = rand.New(rand.NewSource(*seed))
	}

	sim := bracket.NewSimulator(inputs.forecast, sink, rnd)
	if _, err := sim.Run(ctx, tourney); err != nil {
		log.Fatalf("Error simulating bracket: %v", err)
	}

	fmt.Print(bracket.BuildBracketOutput(tourney))
}

// tournamentInputs bundles everything buildTournament gathered so the
// caller can reuse the scraping client and forecast.
type tournamentInputs struct {
	c        *fivethirtyeight.Client
	teams    []bracket.Team
	forecast *fivethirtyeight.Forecast
}

// buildTournament loads the roster from teamsPath when present, scraping
// it otherwise, and constructs an unplayed 64-team bracket. The forecast
// is always fetched so every command picks the same play-in survivors
// that a simulation would.
func buildTournament(ctx context.Context,
	teamsPath string) (*bracket.Tournament, *tournamentInputs, error) {

	inputs := &tournamentInputs{
		c: fivethirtyeight.NewClient(ctx),
	}

	var err error
	inputs.teams, err = roster.Load(teamsPath)
	if err != nil {
		log.Printf("No usable roster at %v (%v); scraping instead", teamsPath,
			err)
		inputs.teams, inputs.forecast, err = inputs.c.FetchAll(ctx)
		if err != nil {
			return nil, nil, err
		}
	} else {
		inputs.forecast, err = inputs.c.FetchForecast(ctx)
		if err != nil {
			return nil, nil, err
		}
	}

	field := fivethirtyeight.DedupePlayIns(inputs.teams, inputs.forecast)
	tourney, err := bracket.NewTournament(field)
	if err != nil {
		return nil, nil, err
	}
	inputs.teams = field

	return tourney, inputs, nil
}
