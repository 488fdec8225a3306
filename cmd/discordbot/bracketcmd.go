/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	_ "embed"
	"fmt"
	"log"
	"math/rand"

	"github.com/bwmarrin/discordgo"

	"github.com/mikeb26/marchmadness-bracketbot/bracket"
	"github.com/mikeb26/marchmadness-bracketbot/fivethirtyeight"
)

type BracketSubCommand string

const (
	BracketAboutCmd    BracketSubCommand = "about"
	BracketHelpCmd     BracketSubCommand = "help"
	BracketShowCmd     BracketSubCommand = "show"
	BracketSimulateCmd BracketSubCommand = "simulate"
)

var bracketSubCmdHdlrs = map[BracketSubCommand]CmdHandler{
	BracketAboutCmd:    bracketAboutCmdHandler,
	BracketHelpCmd:     bracketHelpCmdHandler,
	BracketShowCmd:     bracketShowCmdHandler,
	BracketSimulateCmd: bracketSimulateCmdHandler,
}

func bracketCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	data := inter.ApplicationCommandData()
	hdlr := bracketHelpCmdHandler
	if len(data.Options) > 0 {
		if subName := data.Options[0].Name; subName != "" {
			h, ok := bracketSubCmdHdlrs[BracketSubCommand(subName)]
			if ok {
				hdlr = h
			}
		}
	}
	return hdlr(ctx, inter)
}

//go:embed about.txt
var aboutText string

func bracketAboutCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}

	resp.Data.Content = truncateContent(aboutText)

	return resp
}

//go:embed help.md
var helpText string

func bracketHelpCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}

	resp.Data.Content = truncateContent(helpText)
	return resp
}

// bracketShowCmdHandler handles /bracket show: the current field as an
// unplayed bracket.
func bracketShowCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}

	broadcast := false // default
	data := inter.ApplicationCommandData()
	if len(data.Options) > 0 {
		for _, opt := range data.Options[0].Options {
			if opt.Name == "broadcast" {
				broadcast = opt.BoolValue()
			}
		}
	}

	tourney, _, err := buildTournament(ctx)
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error building bracket: %v", err)
		log.Printf("discordbot.show: %v", resp.Data.Content)
		return resp
	}

	// Wrap output in code block for monospace formatting in Discord
	resp.Data.Content = fmt.Sprintf("```\n%s```",
		truncateContent(bracket.BuildBracketOutput(tourney)))
	if broadcast {
		resp.Data.Flags = 0
	}

	return resp
}

// bracketSimulateCmdHandler handles /bracket simulate. The bot only
// reports the simulated outcome; it never clicks anything, so the run
// uses a nil action sink.
func bracketSimulateCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}

	broadcast := false // default
	var seed int64
	data := inter.ApplicationCommandData()
	if len(data.Options) > 0 {
		for _, opt := range data.Options[0].Options {
			if opt.Name == "seed" {
				seed = opt.IntValue()
			} else if opt.Name == "broadcast" {
				broadcast = opt.BoolValue()
			}
		}
	}

	tourney, forecast, err := buildTournament(ctx)
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error building bracket: %v", err)
		log.Printf("discordbot.simulate: %v", resp.Data.Content)
		return resp
	}

	var rnd *rand.Rand
	if seed != 0 {
		rnd = rand.New(rand.NewSource(seed))
	}
	sim := bracket.NewSimulator(forecast, nil, rnd)
	champ, err := sim.Run(ctx, tourney)
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error simulating bracket: %v", err)
		log.Printf("discordbot.simulate: %v", resp.Data.Content)
		return resp
	}

	content := fmt.Sprintf("My simulated champion: **%v**\n```\n%s```", champ,
		bracket.BuildBracketOutput(tourney))
	resp.Data.Content = truncateContent(content)
	if broadcast {
		resp.Data.Flags = 0
	}

	return resp
}

// buildTournament scrapes the current field and forecast and constructs
// an unplayed 64-team bracket from them.
func buildTournament(ctx context.Context) (*bracket.Tournament,
	*fivethirtyeight.Forecast, error) {

	client := fivethirtyeight.NewClient(ctx)
	teams, forecast, err := client.FetchAll(ctx)
	if err != nil {
		return nil, nil, err
	}

	field := fivethirtyeight.DedupePlayIns(teams, forecast)
	tourney, err := bracket.NewTournament(field)
	if err != nil {
		return nil, nil, err
	}

	return tourney, forecast, nil
}

// https://discord.com/developers/docs/resources/channel#start-thread-in-forum-or-media-channel-forum-and-media-thread-message-params-object
// limits messages to 2k characters
func truncateContent(s string) string {
	const MsgLimit = 1988 // keep space for newlines and markdown
	runes := []rune(s)
	if len(runes) > MsgLimit {
		s = fmt.Sprintf("%v...", string(runes[:MsgLimit]))
	}
	return s
}
