package bot

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// Command pairs a slash-command definition with its handler, mirroring the
// application-command registry the bot exposes to Discord.
type Command struct {
	Data    *discordgo.ApplicationCommand
	Perform func(ctx context.Context, r Replier, i *discordgo.InteractionCreate)
}

// Commands builds the registry. Every handler shares the one orchestrator
// instead of redefining the entitlement/brain/segmenter plumbing per command.
func Commands(orch *Orchestrator) map[string]Command {
	return map[string]Command{
		"ask":   askCommand(orch),
		"info":  infoCommand(orch),
		"sub":   subCommand(orch),
		"about": aboutCommand(),
	}
}

func askCommand(orch *Orchestrator) Command {
	spec := QuerySpec{
		ChatName:    func(query string) string { return "Card => " + query },
		Title:       truncateTitle,
		Prompt:      buildAskPrompt,
		Temperature: 0.5,
		MaxTokens:   4000,
		FollowUp:    true,
	}

	return Command{
		Data: &discordgo.ApplicationCommand{
			Name:        "ask",
			Description: "Ask me anything drug-related.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "query",
					Description: "The question you'd like to ask",
					Required:    true,
				},
			},
		},
		Perform: func(ctx context.Context, r Replier, i *discordgo.InteractionCreate) {
			query := i.ApplicationCommandData().Options[0].StringValue()
			orch.HandleQuery(ctx, r, interactionUserID(i), i.GuildID, query, spec)
		},
	}
}

func infoCommand(orch *Orchestrator) Command {
	spec := QuerySpec{
		ChatName:    func(name string) string { return "Card => " + name },
		Title:       capitalize,
		Prompt:      buildInfoPrompt,
		Temperature: 0.15,
		MaxTokens:   4096,
		FollowUp:    false,
	}

	return Command{
		Data: &discordgo.ApplicationCommand{
			Name:        "info",
			Description: "Get basic info about a substance",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "substance",
					Description: "The substance you want information about",
					Required:    true,
				},
			},
		},
		Perform: func(ctx context.Context, r Replier, i *discordgo.InteractionCreate) {
			substance := parseSubstanceName(i.ApplicationCommandData().Options[0].StringValue())
			orch.HandleQuery(ctx, r, interactionUserID(i), i.GuildID, substance, spec)
		},
	}
}

func subCommand(orch *Orchestrator) Command {
	return Command{
		Data: &discordgo.ApplicationCommand{
			Name:        "sub",
			Description: "Subscribe to get unlimited prompts for 1 YEAR",
		},
		Perform: func(ctx context.Context, r Replier, i *discordgo.InteractionCreate) {
			orch.HandleSubscribe(ctx, r, interactionUserID(i))
		},
	}
}

func aboutCommand() Command {
	return Command{
		Data: &discordgo.ApplicationCommand{
			Name:        "about",
			Description: "Get information about PsyAI",
		},
		Perform: func(ctx context.Context, r Replier, i *discordgo.InteractionCreate) {
			if err := r.RespondEmbed(aboutEmbed()); err != nil {
				zerolog.Ctx(ctx).Error().Err(err).Msg("Reply delivery failed.")
			}
		},
	}
}

func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

// truncateTitle caps the embed title at Discord's 100-character limit.
func truncateTitle(query string) string {
	if len(query) > 100 {
		return query[:97] + "..."
	}
	return query
}

// parseSubstanceName normalizes user input to the backend's naming: lower
// case, no spaces.
func parseSubstanceName(raw string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), " ", "")
}

func capitalize(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
