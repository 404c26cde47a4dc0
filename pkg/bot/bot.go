package bot

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Bot owns the Discord session and dispatches interactions to the command
// registry.
type Bot struct {
	session    *discordgo.Session
	commands   map[string]Command
	registered []*discordgo.ApplicationCommand
}

func New(token string, orch *Orchestrator) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("creating discord session: %w", err)
	}

	b := &Bot{
		session:  session,
		commands: Commands(orch),
	}
	session.AddHandler(b.handleInteraction)
	session.Identify.Intents = discordgo.IntentsGuilds

	return b, nil
}

// Start opens the gateway connection and registers the slash commands
// globally.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("opening gateway connection: %w", err)
	}

	for name, cmd := range b.commands {
		created, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, "", cmd.Data)
		if err != nil {
			return fmt.Errorf("registering /%s: %w", name, err)
		}
		b.registered = append(b.registered, created)
		log.Info().Str("command", name).Msg("Registered application command.")
	}

	return nil
}

func (b *Bot) Close() error {
	return b.session.Close()
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	data := i.ApplicationCommandData()
	cmd, ok := b.commands[data.Name]
	if !ok {
		return
	}

	r := &interactionReplier{session: s, interaction: i}
	logger := log.With().
		Str("interaction_id", uuid.NewString()).
		Str("command", data.Name).
		Str("discord_id", r.userID()).
		Logger()
	ctx := logger.WithContext(context.Background())

	// Known failure paths all reply in place; this guard closes out
	// anything that still escapes so the interaction is never stranded
	// without a terminal reply.
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error().Interface("panic", rec).Msg("Interaction handler panicked.")
			if err := r.Edit(MsgSomethingWrong); err != nil {
				_ = r.Respond(MsgSomethingWrong)
			}
		}
	}()

	logger.Info().Msg("Handling interaction.")
	cmd.Perform(ctx, r, i)
}
