package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/everdell-tracker/internal/models"
	"github.com/KirkDiggler/everdell-tracker/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

const boardColor = 0x15803d // Forest green

var colorEmoji = map[models.ColorTag]string{
	models.ColorAmber:   "🟠",
	models.ColorEmerald: "🟢",
	models.ColorBlue:    "🔵",
	models.ColorPurple:  "🟣",
}

// renderBoard renders the scoreboard embed and its control buttons
func renderBoard(board *models.Scoreboard, leader *messaging.GetLeaderMessageOutput) *response {
	embed := &discordgo.MessageEmbed{
		Title:  "🌳 Everdell Points Tracker",
		Color:  boardColor,
		Fields: make([]*discordgo.MessageEmbedField, 0, len(board.Players)),
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Track your journey through the valley",
		},
	}

	if !board.UpdatedAt.IsZero() {
		embed.Timestamp = board.UpdatedAt.Format(time.RFC3339)
	}

	if leader != nil && leader.Show {
		embed.Description = fmt.Sprintf("**%s**\n%s", leader.Title, leader.Message)
		if leader.Flavor != "" {
			embed.Description += "\n*" + leader.Flavor + "*"
		}
		if board.Leader != nil {
			embed.Color = board.Leader.Player.Color.RGB()
		}
	}

	for idx, player := range board.Players {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   playerHeading(idx+1, player),
			Value:  playerBreakdown(player),
			Inline: true,
		})
	}

	return &response{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: boardButtons(board),
	}
}

func playerHeading(position int, player *models.Player) string {
	name := player.Name
	if strings.TrimSpace(name) == "" {
		name = "(unnamed)"
	}
	return fmt.Sprintf("%d. %s %s", position, colorEmoji[player.Color], name)
}

func playerBreakdown(player *models.Player) string {
	var b strings.Builder
	for _, c := range models.Categories() {
		fmt.Fprintf(&b, "%s: %d\n", c.Label, player.Scores[c.Key])
	}
	fmt.Fprintf(&b, "**Total Score: %d**", player.Total())
	return b.String()
}

func boardButtons(board *models.Scoreboard) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Add Player",
					Style:    discordgo.SuccessButton,
					CustomID: ButtonAddPlayer,
					Disabled: !board.CanAddPlayer,
					Emoji: &discordgo.ComponentEmoji{
						Name: "👥",
					},
				},
				discordgo.Button{
					Label:    "Reset All",
					Style:    discordgo.DangerButton,
					CustomID: ButtonResetScores,
					Emoji: &discordgo.ComponentEmoji{
						Name: "🔄",
					},
				},
				discordgo.Button{
					Label:    "Refresh",
					Style:    discordgo.SecondaryButton,
					CustomID: ButtonRefreshBoard,
				},
			},
		},
	}
}

// renderResetConfirmation renders the ephemeral reset prompt
func renderResetConfirmation(prompt *messaging.GetResetConfirmationOutput) *response {
	return &response{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       prompt.Title,
				Description: prompt.Message,
				Color:       0xd97706, // Amber color
			},
		},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    "Confirm",
						Style:    discordgo.DangerButton,
						CustomID: ButtonConfirmReset,
					},
					discordgo.Button{
						Label:    "Cancel",
						Style:    discordgo.SecondaryButton,
						CustomID: ButtonCancelReset,
					},
				},
			},
		},
		Ephemeral: true,
	}
}

// renderGuide renders the scoring reference
func renderGuide(guide *messaging.GetScoringGuideOutput) *response {
	embed := &discordgo.MessageEmbed{
		Title: guide.Title,
		Color: boardColor,
	}

	for _, section := range guide.Sections {
		lines := make([]string, len(section.Entries))
		for i, entry := range section.Entries {
			lines[i] = fmt.Sprintf("• **%s:** %s", entry.Name, entry.Detail)
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   section.Title + ":",
			Value:  strings.Join(lines, "\n"),
			Inline: true,
		})
	}

	categories := make([]string, len(guide.Categories))
	for i, c := range guide.Categories {
		categories[i] = fmt.Sprintf("`%s` %s: %s", c.Key, c.Label, c.Description)
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:  "Categories",
		Value: strings.Join(categories, "\n"),
	})

	return &response{
		Embeds:    []*discordgo.MessageEmbed{embed},
		Ephemeral: true,
	}
}

// renderFinalBoard renders the standings of an ended session
func renderFinalBoard(board *models.Scoreboard) *response {
	lines := make([]string, len(board.Standings))
	for i, st := range board.Standings {
		lines[i] = fmt.Sprintf("%d. %s %s: %d", st.Rank, colorEmoji[st.Player.Color], st.Player.Name, st.Total)
	}

	return &response{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       "🍂 Final Standings",
				Description: strings.Join(lines, "\n"),
				Color:       boardColor,
			},
		},
	}
}
