package bot

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/psyai-redux/psyai-bot/pkg/domain"
	"github.com/psyai-redux/psyai-bot/pkg/service/gate"
)

// Store is the entitlement store surface the orchestrator needs.
type Store interface {
	GetOrCreate(discordID string) (*domain.EntitlementRecord, error)
	DecrementTrial(discordID string) error
}

// Broker opens brain conversations and fetches answers.
type Broker interface {
	NewChat(ctx context.Context, name string) (string, error)
	Ask(ctx context.Context, chatID string, question string, temperature float64, maxTokens int) (string, error)
}

// CheckoutInitiator creates payment sessions for the upsell path.
type CheckoutInitiator interface {
	CreateCheckoutSession(ctx context.Context, discordUserID string) (string, error)
}

// Orchestrator runs the per-interaction flow: gate, decrement, brain
// round-trip, segmentation, reply. One instance is shared by every command
// handler.
type Orchestrator struct {
	store    Store
	brain    Broker
	checkout CheckoutInitiator
	gate     *gate.Gate
}

func NewOrchestrator(store Store, brain Broker, checkout CheckoutInitiator, g *gate.Gate) *Orchestrator {
	return &Orchestrator{
		store:    store,
		brain:    brain,
		checkout: checkout,
		gate:     g,
	}
}

// QuerySpec is the per-command shape of a query interaction: how to name the
// chat, build the prompt, title the reply, and deliver it.
type QuerySpec struct {
	ChatName    func(input string) string
	Title       func(input string) string
	Prompt      func(input string) string
	Temperature float64
	MaxTokens   int
	// FollowUp delivers the answer as a fresh follow-up message after
	// deleting the placeholder instead of editing it in place.
	FollowUp bool
}

// HandleQuery drives one metered question through the gate, the brain and
// back out as an embed. Every failure path ends in a terminal reply.
func (o *Orchestrator) HandleQuery(ctx context.Context, r Replier, userID string, guildID string, input string, spec QuerySpec) {
	logger := zerolog.Ctx(ctx)

	record, err := o.store.GetOrCreate(userID)
	if err != nil {
		logger.Error().Err(err).Msg("Entitlement lookup failed.")
		o.respond(ctx, r, MsgSomethingWrong)
		return
	}

	switch o.gate.Decide(guildID, record) {
	case gate.Deny:
		o.upsell(ctx, r, userID, trialEndedDM)
		return
	case gate.AllowAndDecrement:
		// Charge before the conversational call so a crash mid-flow
		// undercounts usage instead of double-charging it.
		if err := o.store.DecrementTrial(userID); err != nil {
			logger.Error().Err(err).Msg("Trial decrement failed.")
			o.respond(ctx, r, MsgSomethingWrong)
			return
		}
	}

	// Acknowledge before the slow round-trip; the platform's response
	// window is shorter than a brain call.
	if err := r.Defer(); err != nil {
		logger.Error().Err(err).Msg("Could not acknowledge interaction.")
		return
	}

	chatID, err := o.brain.NewChat(ctx, spec.ChatName(input))
	if err != nil {
		logger.Warn().Err(err).Msg("Chat session creation failed.")
		o.edit(ctx, r, MsgNoChatID)
		return
	}

	answer, err := o.brain.Ask(ctx, chatID, spec.Prompt(input), spec.Temperature, spec.MaxTokens)
	if err != nil {
		logger.Warn().Err(err).Str("chat_id", chatID).Msg("Answer fetch failed.")
		o.edit(ctx, r, MsgNoDoseCard)
		return
	}

	embed := answerEmbed(spec.Title(input), answer)
	if spec.FollowUp {
		if err := r.Delete(); err != nil {
			logger.Warn().Err(err).Msg("Could not delete placeholder reply.")
		}
		if err := r.FollowUp(embed); err != nil {
			logger.Error().Err(err).Msg("Reply delivery failed.")
			return
		}
	} else {
		if err := r.EditEmbed(embed); err != nil {
			logger.Error().Err(err).Msg("Reply delivery failed.")
			return
		}
	}

	logger.Info().Str("chat_id", chatID).Int("segments", len(embed.Fields)-1).Msg("Replied.")
}

// HandleSubscribe serves the explicit /sub command.
func (o *Orchestrator) HandleSubscribe(ctx context.Context, r Replier, userID string) {
	logger := zerolog.Ctx(ctx)

	record, err := o.store.GetOrCreate(userID)
	if err != nil {
		logger.Error().Err(err).Msg("Entitlement lookup failed.")
		o.respond(ctx, r, MsgSomethingWrong)
		return
	}

	if record.SubscriptionStatus {
		o.respond(ctx, r, MsgAlreadySubbed)
		return
	}

	o.upsell(ctx, r, userID, subscribeDM)
}

// upsell DMs a checkout link and closes the visible interaction with a
// neutral notice. The brain is never involved on this path.
func (o *Orchestrator) upsell(ctx context.Context, r Replier, userID string, dmTemplate string) {
	logger := zerolog.Ctx(ctx)

	url, err := o.checkout.CreateCheckoutSession(ctx, userID)
	if err != nil {
		logger.Error().Err(err).Msg("Checkout session creation failed.")
		o.respond(ctx, r, MsgSomethingWrong)
		return
	}

	// Without the DM the checkout URL is lost (DMs disabled is common),
	// so the "check your messages" notice would be false.
	if err := r.DirectMessage(fmt.Sprintf(dmTemplate, url)); err != nil {
		logger.Warn().Err(err).Msg("Could not DM checkout link.")
		o.respond(ctx, r, MsgSomethingWrong)
		return
	}
	o.respond(ctx, r, MsgCheckDMs)
}

func (o *Orchestrator) respond(ctx context.Context, r Replier, content string) {
	if err := r.Respond(content); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("Reply delivery failed.")
	}
}

func (o *Orchestrator) edit(ctx context.Context, r Replier, content string) {
	if err := r.Edit(content); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("Reply delivery failed.")
	}
}
