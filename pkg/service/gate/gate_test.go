package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/psyai-redux/psyai-bot/pkg/domain"
)

const exemptGuild = "1032772277223297085"

func newTestGate() *Gate {
	return New([]string{exemptGuild, "1037189729294225518"})
}

func TestDecideExemptGuildBypassesMetering(t *testing.T) {
	g := newTestGate()

	// Even with zero trial prompts and no subscription.
	record := &domain.EntitlementRecord{DiscordID: "u1", TrialPrompts: 0}
	assert.Equal(t, Allow, g.Decide(exemptGuild, record))

	record = &domain.EntitlementRecord{DiscordID: "u1", TrialPrompts: 5}
	assert.Equal(t, Allow, g.Decide(exemptGuild, record))
}

func TestDecideTrialUserIsCharged(t *testing.T) {
	g := newTestGate()
	record := &domain.EntitlementRecord{DiscordID: "u1", TrialPrompts: 3}

	assert.Equal(t, AllowAndDecrement, g.Decide("someplace", record))
	assert.Equal(t, AllowAndDecrement, g.Decide("", record))
}

func TestDecideExhaustedTrialIsDenied(t *testing.T) {
	g := newTestGate()
	record := &domain.EntitlementRecord{DiscordID: "u1", TrialPrompts: 0}

	assert.Equal(t, Deny, g.Decide("someplace", record))
	assert.Equal(t, Deny, g.Decide("", record))
}

func TestDecideSubscriberIsUnmetered(t *testing.T) {
	g := newTestGate()
	record := &domain.EntitlementRecord{DiscordID: "u1", SubscriptionStatus: true, TrialPrompts: 0}

	assert.Equal(t, Allow, g.Decide("someplace", record))
}

func TestDecideEmptyGuildNeverExempt(t *testing.T) {
	// A DM interaction has no guild; an empty ID must not match anything.
	g := New([]string{""})
	record := &domain.EntitlementRecord{DiscordID: "u1", TrialPrompts: 0}

	assert.Equal(t, Deny, g.Decide("", record))
}
