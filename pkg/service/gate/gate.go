package gate

import (
	"github.com/psyai-redux/psyai-bot/pkg/domain"
)

// Decision is the metering outcome for one interaction.
type Decision int

const (
	// Allow lets the interaction proceed without touching the record.
	Allow Decision = iota
	// AllowAndDecrement lets the interaction proceed and charges one
	// trial prompt before the conversational call.
	AllowAndDecrement
	// Deny blocks the interaction; the caller must run the upsell path.
	Deny
)

// Gate decides whether a user's interaction may proceed. It is pure: the
// caller applies the decrement and the upsell.
type Gate struct {
	exemptGuilds map[string]struct{}
}

func New(exemptGuildIDs []string) *Gate {
	exempt := make(map[string]struct{}, len(exemptGuildIDs))
	for _, id := range exemptGuildIDs {
		exempt[id] = struct{}{}
	}
	return &Gate{exemptGuilds: exempt}
}

// Decide evaluates, in order: guild exemption, trial quota, subscription.
// Exemption comes first so staff guilds never spend quota or see upsells.
func (g *Gate) Decide(guildID string, record *domain.EntitlementRecord) Decision {
	if _, ok := g.exemptGuilds[guildID]; ok && guildID != "" {
		return Allow
	}
	if !record.SubscriptionStatus && record.TrialPrompts > 0 {
		return AllowAndDecrement
	}
	if !record.SubscriptionStatus {
		return Deny
	}
	return Allow
}
