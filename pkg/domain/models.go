package domain

// EntitlementRecord is the per-user row tracking subscription state and the
// remaining free-trial prompts. DiscordID is the primary key.
type EntitlementRecord struct {
	DiscordID          string `json:"discord_id" db:"discord_id"`
	SubscriptionStatus bool   `json:"subscription_status" db:"subscription_status"`
	StripeID           string `json:"stripe_id" db:"stripe_id"`
	TrialPrompts       int    `json:"trial_prompts" db:"trial_prompts"`
}
