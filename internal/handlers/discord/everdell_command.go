package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/everdell-tracker/internal/models"
	"github.com/KirkDiggler/everdell-tracker/internal/services/messaging"
	"github.com/KirkDiggler/everdell-tracker/internal/services/tracker"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// Button IDs
const (
	ButtonAddPlayer    = "everdell_add_player"
	ButtonResetScores  = "everdell_reset"
	ButtonConfirmReset = "everdell_reset_confirm"
	ButtonCancelReset  = "everdell_reset_cancel"
	ButtonRefreshBoard = "everdell_refresh"
)

// maxDelta bounds a single score change typed into a slash command
const maxDelta = 200

// EverdellCommand handles the /everdell command and the scoreboard buttons
type EverdellCommand struct {
	BaseCommand
	trackerService   tracker.Service
	messagingService messaging.Service
}

// NewEverdellCommand creates a new everdell command handler
func NewEverdellCommand(trackerService tracker.Service, messagingService messaging.Service) *EverdellCommand {
	playerOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        "player",
		Description: "Player number as shown on the board",
		Required:    true,
		MinValue:    floatPtr(1),
		MaxValue:    4,
	}

	categoryChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(models.Categories()))
	for _, c := range models.Categories() {
		categoryChoices = append(categoryChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  c.Label,
			Value: string(c.Key),
		})
	}

	return &EverdellCommand{
		BaseCommand: BaseCommand{
			Name:        "everdell",
			Description: "Everdell score tracker",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "board",
					Description: "Show the scoreboard for this channel",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "add",
					Description: "Add a player",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "remove",
					Description: "Remove a player",
					Options:     []*discordgo.ApplicationCommandOption{playerOption},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "rename",
					Description: "Rename a player",
					Options: []*discordgo.ApplicationCommandOption{
						playerOption,
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "New name",
							Required:    true,
							MaxLength:   32,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "score",
					Description: "Change a player's score in one category",
					Options: []*discordgo.ApplicationCommandOption{
						playerOption,
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "category",
							Description: "Scoring category",
							Required:    true,
							Choices:     categoryChoices,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "delta",
							Description: "Points to add (negative to subtract), defaults to 1",
							MinValue:    floatPtr(-maxDelta),
							MaxValue:    maxDelta,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "reset",
					Description: "Reset every score to zero",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "guide",
					Description: "Show the scoring reference",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "end",
					Description: "Show final standings and clear the scoreboard",
				},
			},
		},
		trackerService:   trackerService,
		messagingService: messagingService,
	}
}

// Handle processes a Discord interaction for the everdell command
func (c *EverdellCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	resp, err := c.runSubcommand(context.Background(), i.ChannelID, data.Options[0])
	if err != nil {
		log.Warn().Err(err).
			Str("channel_id", i.ChannelID).
			Str("command", data.Options[0].Name).
			Msg("everdell command failed")
		resp = c.errorResponse(context.Background(), err)
	}

	return resp.send(s, i)
}

// HandlesComponent reports whether the custom ID is one of the scoreboard buttons
func (c *EverdellCommand) HandlesComponent(customID string) bool {
	switch customID {
	case ButtonAddPlayer, ButtonResetScores, ButtonConfirmReset, ButtonCancelReset, ButtonRefreshBoard:
		return true
	}
	return false
}

// HandleComponent processes a scoreboard button click
func (c *EverdellCommand) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID

	resp, err := c.runComponent(context.Background(), i.ChannelID, customID)
	if err != nil {
		log.Warn().Err(err).
			Str("channel_id", i.ChannelID).
			Str("custom_id", customID).
			Msg("everdell button failed")
		resp = c.errorResponse(context.Background(), err)
	}

	return resp.send(s, i)
}

// runSubcommand executes a subcommand and renders the reply
func (c *EverdellCommand) runSubcommand(ctx context.Context, channelID string, sub *discordgo.ApplicationCommandInteractionDataOption) (*response, error) {
	opts := optionMap(sub.Options)

	switch sub.Name {
	case "board":
		out, err := c.trackerService.GetBoard(ctx, &tracker.GetBoardInput{ChannelID: channelID})
		if err != nil {
			return nil, err
		}
		return c.boardResponse(ctx, out.Board)

	case "add":
		out, err := c.trackerService.AddPlayer(ctx, &tracker.AddPlayerInput{ChannelID: channelID})
		if err != nil {
			return nil, err
		}
		resp, err := c.boardResponse(ctx, out.Board)
		if err != nil {
			return nil, err
		}
		if !out.Added {
			resp.Content = fmt.Sprintf("The table is full! Everdell seats at most %d players.", len(out.Board.Players))
		}
		return resp, nil

	case "remove":
		out, err := c.trackerService.RemovePlayer(ctx, &tracker.RemovePlayerInput{
			ChannelID: channelID,
			Player:    tracker.PlayerRef{Position: intOption(opts, "player", 0)},
		})
		if err != nil {
			return nil, err
		}
		resp, err := c.boardResponse(ctx, out.Board)
		if err != nil {
			return nil, err
		}
		if !out.Removed {
			resp.Content = "At least one player has to stay on the board."
		}
		return resp, nil

	case "rename":
		out, err := c.trackerService.RenamePlayer(ctx, &tracker.RenamePlayerInput{
			ChannelID: channelID,
			Player:    tracker.PlayerRef{Position: intOption(opts, "player", 0)},
			Name:      stringOption(opts, "name", ""),
		})
		if err != nil {
			return nil, err
		}
		return c.boardResponse(ctx, out.Board)

	case "score":
		out, err := c.trackerService.AdjustScore(ctx, &tracker.AdjustScoreInput{
			ChannelID: channelID,
			Player:    tracker.PlayerRef{Position: intOption(opts, "player", 0)},
			Category:  stringOption(opts, "category", ""),
			Delta:     intOption(opts, "delta", 1),
		})
		if err != nil {
			return nil, err
		}
		return c.boardResponse(ctx, out.Board)

	case "reset":
		return c.resetPrompt(ctx, channelID)

	case "guide":
		guide, err := c.messagingService.GetScoringGuide(ctx, &messaging.GetScoringGuideInput{})
		if err != nil {
			return nil, err
		}
		return renderGuide(guide), nil

	case "end":
		out, err := c.trackerService.EndSession(ctx, &tracker.EndSessionInput{ChannelID: channelID})
		if err != nil {
			return nil, err
		}
		return renderFinalBoard(out.FinalBoard), nil
	}

	return nil, errors.New("unknown subcommand")
}

// runComponent executes a button click and renders the reply
func (c *EverdellCommand) runComponent(ctx context.Context, channelID, customID string) (*response, error) {
	switch customID {
	case ButtonAddPlayer:
		out, err := c.trackerService.AddPlayer(ctx, &tracker.AddPlayerInput{ChannelID: channelID})
		if err != nil {
			return nil, err
		}
		resp, err := c.boardResponse(ctx, out.Board)
		if err != nil {
			return nil, err
		}
		resp.Update = true
		return resp, nil

	case ButtonRefreshBoard:
		out, err := c.trackerService.GetBoard(ctx, &tracker.GetBoardInput{ChannelID: channelID})
		if err != nil {
			return nil, err
		}
		resp, err := c.boardResponse(ctx, out.Board)
		if err != nil {
			return nil, err
		}
		resp.Update = true
		return resp, nil

	case ButtonResetScores:
		return c.resetPrompt(ctx, channelID)

	case ButtonConfirmReset:
		out, err := c.trackerService.ResetScores(ctx, &tracker.ResetScoresInput{
			ChannelID: channelID,
			Confirmed: true,
		})
		if err != nil {
			return nil, err
		}
		resp, err := c.boardResponse(ctx, out.Board)
		if err != nil {
			return nil, err
		}
		resp.Update = true
		return resp, nil

	case ButtonCancelReset:
		return &response{
			Content:    "Reset cancelled. Scores are unchanged.",
			Embeds:     []*discordgo.MessageEmbed{},
			Components: []discordgo.MessageComponent{},
			Ephemeral:  true,
			Update:     true,
		}, nil
	}

	return nil, fmt.Errorf("unknown component %q", customID)
}

func (c *EverdellCommand) boardResponse(ctx context.Context, board *models.Scoreboard) (*response, error) {
	leader, err := c.messagingService.GetLeaderMessage(ctx, &messaging.GetLeaderMessageInput{
		Board: board,
	})
	if err != nil {
		return nil, err
	}
	return renderBoard(board, leader), nil
}

func (c *EverdellCommand) resetPrompt(ctx context.Context, channelID string) (*response, error) {
	out, err := c.trackerService.GetBoard(ctx, &tracker.GetBoardInput{ChannelID: channelID})
	if err != nil {
		return nil, err
	}

	prompt, err := c.messagingService.GetResetConfirmation(ctx, &messaging.GetResetConfirmationInput{
		PlayerCount: len(out.Board.Players),
	})
	if err != nil {
		return nil, err
	}

	return renderResetConfirmation(prompt), nil
}

func (c *EverdellCommand) errorResponse(ctx context.Context, err error) *response {
	msg, msgErr := c.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{Err: err})
	if msgErr != nil {
		return errorResponse(err.Error())
	}
	return errorResponse(msg.Message)
}

func optionMap(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

func intOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string, fallback int) int {
	opt, ok := opts[name]
	if !ok || opt.Type != discordgo.ApplicationCommandOptionInteger {
		return fallback
	}
	return int(opt.IntValue())
}

func stringOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name, fallback string) string {
	opt, ok := opts[name]
	if !ok || opt.Type != discordgo.ApplicationCommandOptionString {
		return fallback
	}
	return opt.StringValue()
}

func floatPtr(v float64) *float64 {
	return &v
}
