package checkout

import (
	"context"
	"errors"
	"fmt"

	stripe "github.com/stripe/stripe-go/v84"
)

var ErrPaymentProvider = errors.New("checkout session creation failed")

// Config holds the Stripe settings for the yearly subscription plan.
type Config struct {
	APIKey     string
	PriceID    string
	SuccessURL string
	CancelURL  string
}

// Service creates Stripe Checkout sessions for the subscription upsell.
type Service struct {
	client *stripe.Client
	cfg    Config
}

func New(cfg Config) (*Service, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("checkout: STRIPE_API_KEY is required")
	}
	if cfg.PriceID == "" {
		return nil, fmt.Errorf("checkout: STRIPE_PLAN_ID is required")
	}

	return &Service{
		client: stripe.NewClient(cfg.APIKey),
		cfg:    cfg,
	}, nil
}

// CreateCheckoutSession opens a subscription-mode Checkout session tagged
// with the Discord user ID so a later payment confirmation can resolve back
// to the entitlement record. Returns the redirect URL.
func (s *Service) CreateCheckoutSession(ctx context.Context, discordUserID string) (string, error) {
	sess, err := s.client.V1CheckoutSessions.Create(ctx, &stripe.CheckoutSessionCreateParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionCreateLineItemParams{
			{
				Price:    stripe.String(s.cfg.PriceID),
				Quantity: stripe.Int64(1),
			},
		},
		Metadata:   map[string]string{"discord_id": discordUserID},
		SuccessURL: stripe.String(s.cfg.SuccessURL),
		CancelURL:  stripe.String(s.cfg.CancelURL),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPaymentProvider, err)
	}
	if sess.URL == "" {
		return "", fmt.Errorf("%w: session has no redirect URL", ErrPaymentProvider)
	}

	return sess.URL, nil
}
