// Package payments wraps the payment processor behind a small interface so
// the checkout flow stays testable without network calls.
package payments

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"github.com/santhoshclientric/Revyn-sub001/logging"
)

// ErrNotPaid is returned by Confirm while the checkout is still open.
var ErrNotPaid = errors.New("checkout session is not paid")

// Checkout is the result of starting a payment.
type Checkout struct {
	SessionID string
	URL       string
}

// Client is the payment processor boundary: start a checkout, confirm it,
// get a transaction identifier back.
type Client interface {
	CreateCheckout(ctx context.Context, orderID string) (*Checkout, error)
	// Confirm returns the transaction identifier once the session is paid,
	// or ErrNotPaid while it is still open.
	Confirm(ctx context.Context, sessionID string) (transactionID string, err error)
}

// Config carries the Stripe settings read from viper.
type Config struct {
	APIKey     string
	PriceID    string
	SuccessURL string
	CancelURL  string
}

type StripeClient struct {
	api *client.API
	cfg Config
}

func NewStripeClient(cfg Config) *StripeClient {
	api := &client.API{}
	api.Init(cfg.APIKey, nil)
	return &StripeClient{api: api, cfg: cfg}
}

func (s *StripeClient) CreateCheckout(_ context.Context, orderID string) (*Checkout, error) {
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{Price: stripe.String(s.cfg.PriceID), Quantity: stripe.Int64(1)},
		},
		ClientReferenceID: stripe.String(orderID),
		SuccessURL:        stripe.String(s.cfg.SuccessURL),
		CancelURL:         stripe.String(s.cfg.CancelURL),
	}

	sess, err := s.api.CheckoutSessions.New(params)
	if err != nil {
		logging.Log.Errorf("PAYMENTS: failed to create checkout session for order %s: %v", orderID, err)
		return nil, fmt.Errorf("create checkout session: %w", err)
	}

	return &Checkout{SessionID: sess.ID, URL: sess.URL}, nil
}

func (s *StripeClient) Confirm(_ context.Context, sessionID string) (string, error) {
	sess, err := s.api.CheckoutSessions.Get(sessionID, nil)
	if err != nil {
		logging.Log.Errorf("PAYMENTS: failed to fetch checkout session %s: %v", sessionID, err)
		return "", fmt.Errorf("fetch checkout session: %w", err)
	}

	if sess.PaymentStatus != stripe.CheckoutSessionPaymentStatusPaid {
		return "", ErrNotPaid
	}
	if sess.PaymentIntent == nil {
		return "", fmt.Errorf("paid session %s has no payment intent", sessionID)
	}
	return sess.PaymentIntent.ID, nil
}
