package userprovider

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/psyai-redux/psyai-bot/pkg/domain"
)

const DEFAULT_TRIAL_PROMPTS = 5

var ErrStoreUnavailable = errors.New("entitlement store unavailable")

type Config struct {
	DatabasePath   string
	MigrationsPath string
}

// UserProvider persists one entitlement record per Discord user.
type UserProvider struct {
	db *sql.DB
}

func NewUserProvider(cfg Config) (*UserProvider, error) {
	m, err := migrate.New("file://"+cfg.MigrationsPath, "sqlite3://"+cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("opening migrations: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	srcErr, dbErr := m.Close()
	if srcErr != nil {
		return nil, srcErr
	}
	if dbErr != nil {
		return nil, dbErr
	}

	db, err := sql.Open("sqlite3", cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// A single connection serializes writers, which keeps the conditional
	// decrement atomic under concurrent double-submission.
	db.SetMaxOpenConns(1)

	return &UserProvider{db: db}, nil
}

func (p *UserProvider) Close() error {
	return p.db.Close()
}

// GetOrCreate returns the entitlement record for the given Discord user,
// inserting the default record on first sight. Safe to race: the insert is
// a no-op when the row already exists.
func (p *UserProvider) GetOrCreate(discordID string) (*domain.EntitlementRecord, error) {
	_, err := p.db.Exec(
		`INSERT OR IGNORE INTO user_association (discord_id, subscription_status, stripe_id, trial_prompts)
		 VALUES (?, 0, 'placeholder', ?)`,
		discordID, DEFAULT_TRIAL_PROMPTS,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	record := domain.EntitlementRecord{}
	err = p.db.QueryRow(
		`SELECT discord_id, subscription_status, stripe_id, trial_prompts
		 FROM user_association WHERE discord_id = ?`,
		discordID,
	).Scan(&record.DiscordID, &record.SubscriptionStatus, &record.StripeID, &record.TrialPrompts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return &record, nil
}

// DecrementTrial spends one trial prompt. The update is conditional so the
// counter never goes below zero and subscribed users are never charged; a
// raced no-op is not an error.
func (p *UserProvider) DecrementTrial(discordID string) error {
	res, err := p.db.Exec(
		`UPDATE user_association SET trial_prompts = trial_prompts - 1
		 WHERE discord_id = ? AND subscription_status = 0 AND trial_prompts > 0`,
		discordID,
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		log.Debug().Str("discord_id", discordID).Msg("Trial decrement matched no row.")
	}
	return nil
}

// MarkSubscribed records a completed subscription. Hook for the payment
// confirmation flow; nothing in the bot itself calls it yet.
func (p *UserProvider) MarkSubscribed(discordID string, stripeID string) error {
	_, err := p.db.Exec(
		`UPDATE user_association SET subscription_status = 1, stripe_id = ?
		 WHERE discord_id = ?`,
		stripeID, discordID,
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}
