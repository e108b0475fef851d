package provider

import (
	"context"
	"encoding/json"
	"fmt"

	stripe "github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/client"
	"github.com/stripe/stripe-go/v80/webhook"

	"github.com/dukapay/dukapay/internal/pkg/logger"
	"github.com/dukapay/dukapay/internal/pkg/models"
	"github.com/dukapay/dukapay/services/payments"
)

// cardOutcomes translates the card processor's intent status vocabulary into
// the universal outcome set. The webhook is authoritative for the final
// status; an explicit confirm and the webhook funnel through the same
// idempotent transition.
var cardOutcomes = map[stripe.PaymentIntentStatus]payments.Outcome{
	stripe.PaymentIntentStatusSucceeded:             payments.OutcomeSucceeded,
	stripe.PaymentIntentStatusProcessing:            payments.OutcomeProcessing,
	stripe.PaymentIntentStatusCanceled:              payments.OutcomeCanceled,
	stripe.PaymentIntentStatusRequiresPaymentMethod: payments.OutcomeFailed,
	stripe.PaymentIntentStatusRequiresConfirmation:  payments.OutcomePending,
	stripe.PaymentIntentStatusRequiresAction:        payments.OutcomePending,
	stripe.PaymentIntentStatusRequiresCapture:       payments.OutcomeProcessing,
}

// CardAdapter implements payments.ProviderAdapter over the card processor
// SDK. One instance is constructed at startup from configuration; the SDK
// client is held here, never as a package-level singleton.
type CardAdapter struct {
	api           *client.API
	webhookSecret string
	logger        *logger.ZapLogger
}

// NewCardAdapter creates a card adapter from configuration
func NewCardAdapter(cfg models.StripeConfig, zapLogger *logger.ZapLogger) *CardAdapter {
	api := &client.API{}
	api.Init(cfg.SecretKey, nil)

	return &CardAdapter{
		api:           api,
		webhookSecret: cfg.WebhookSecret,
		logger:        zapLogger,
	}
}

// Name returns the provider identifier
func (a *CardAdapter) Name() models.PaymentProvider {
	return models.ProviderCard
}

// Initiate creates a payment intent scoped to the amount, currency, and
// order metadata. The returned client secret drives the client-side
// confirmation; the final status arrives via webhook.
func (a *CardAdapter) Initiate(ctx context.Context, req *payments.InitiateRequest) (*payments.InitiateResult, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.Amount),
		Currency: stripe.String(req.Currency),
		PaymentMethodTypes: stripe.StringSlice([]string{
			"card",
		}),
	}
	params.Context = ctx
	params.AddMetadata("order_id", req.OrderID)
	params.AddMetadata("user_id", req.UserID)
	params.AddMetadata("payment_id", req.PaymentID)
	if req.Description != "" {
		params.Description = stripe.String(req.Description)
	}

	pi, err := a.api.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	a.logger.Info("Created payment intent",
		logger.String("payment_id", req.PaymentID),
		logger.String("intent_id", pi.ID))

	return &payments.InitiateResult{
		ProviderTxnID: pi.ID,
		Mode:          payments.ModeSync,
		ClientInstructions: map[string]string{
			"client_secret": pi.ClientSecret,
		},
	}, nil
}

// Confirm fetches the intent and maps its current status. The webhook for
// the same intent may land before or after this call; both apply the same
// idempotent transition.
func (a *CardAdapter) Confirm(ctx context.Context, providerTxnID string) (*payments.ConfirmResult, error) {
	pi, err := a.getIntent(ctx, providerTxnID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve payment intent: %w", err)
	}

	result := &payments.ConfirmResult{
		Outcome:          OutcomeFromIntentStatus(pi.Status),
		MethodDescriptor: cardDescriptor(pi),
	}
	if pi.LastPaymentError != nil {
		result.ErrorMessage = pi.LastPaymentError.Msg
	}

	return result, nil
}

// Query fetches the intent for reconciliation
func (a *CardAdapter) Query(ctx context.Context, providerTxnID string) (*payments.QueryResult, error) {
	pi, err := a.getIntent(ctx, providerTxnID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve payment intent: %w", err)
	}

	return &payments.QueryResult{
		Outcome:          OutcomeFromIntentStatus(pi.Status),
		MethodDescriptor: cardDescriptor(pi),
		Raw:              string(pi.Status),
	}, nil
}

// Refund resolves the underlying charge from the intent and refunds it. The
// refund API wants the charge, not the intent.
func (a *CardAdapter) Refund(ctx context.Context, req *payments.RefundRequest) (*payments.RefundResult, error) {
	pi, err := a.getIntent(ctx, req.ProviderTxnID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve payment intent: %w", err)
	}
	if pi.LatestCharge == nil {
		return nil, fmt.Errorf("payment intent %s has no charge to refund", req.ProviderTxnID)
	}

	params := &stripe.RefundParams{
		Charge: stripe.String(pi.LatestCharge.ID),
		Amount: stripe.Int64(req.Amount),
	}
	params.Context = ctx

	ref, err := a.api.Refunds.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create refund: %w", err)
	}

	return &payments.RefundResult{
		RefundID:       ref.ID,
		RefundedAmount: ref.Amount,
	}, nil
}

// CancelIntent cancels a not-yet-confirmed intent on the provider side
func (a *CardAdapter) CancelIntent(ctx context.Context, providerTxnID string) error {
	params := &stripe.PaymentIntentCancelParams{}
	params.Context = ctx

	if _, err := a.api.PaymentIntents.Cancel(providerTxnID, params); err != nil {
		return fmt.Errorf("failed to cancel payment intent: %w", err)
	}
	return nil
}

// VerifyWebhook authenticates the webhook signature against the raw request
// body before any field is trusted, then translates the event.
func (a *CardAdapter) VerifyWebhook(payload []byte, signature string) (*payments.WebhookEvent, error) {
	event, err := webhook.ConstructEvent(payload, signature, a.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("webhook signature verification failed: %w", err)
	}
	return TranslateWebhookEvent(&event)
}

// TranslateWebhookEvent maps a verified event into the universal vocabulary
func TranslateWebhookEvent(event *stripe.Event) (*payments.WebhookEvent, error) {
	translated := &payments.WebhookEvent{Type: string(event.Type)}

	switch string(event.Type) {
	case "payment_intent.succeeded", "payment_intent.payment_failed", "payment_intent.canceled":
	default:
		return translated, nil
	}

	var pi stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
		return nil, fmt.Errorf("failed to parse webhook payment intent: %w", err)
	}

	translated.Relevant = true
	translated.ProviderTxnID = pi.ID
	translated.MethodDescriptor = cardDescriptor(&pi)

	switch string(event.Type) {
	case "payment_intent.succeeded":
		translated.Outcome = payments.OutcomeSucceeded
	case "payment_intent.canceled":
		translated.Outcome = payments.OutcomeCanceled
	default:
		translated.Outcome = payments.OutcomeFailed
		if pi.LastPaymentError != nil {
			translated.ErrorMessage = pi.LastPaymentError.Msg
		}
	}

	return translated, nil
}

// OutcomeFromIntentStatus maps an intent status to the universal outcome set
func OutcomeFromIntentStatus(status stripe.PaymentIntentStatus) payments.Outcome {
	if outcome, ok := cardOutcomes[status]; ok {
		return outcome
	}
	return payments.OutcomeFailed
}

func (a *CardAdapter) getIntent(ctx context.Context, id string) (*stripe.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx
	params.AddExpand("latest_charge")
	return a.api.PaymentIntents.Get(id, params)
}

// cardDescriptor builds the payment method descriptor from the charge
func cardDescriptor(pi *stripe.PaymentIntent) string {
	if pi.LatestCharge == nil || pi.LatestCharge.PaymentMethodDetails == nil || pi.LatestCharge.PaymentMethodDetails.Card == nil {
		return ""
	}
	card := pi.LatestCharge.PaymentMethodDetails.Card
	return fmt.Sprintf("%s ending %s", card.Brand, card.Last4)
}
