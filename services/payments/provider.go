package payments

import (
	"context"

	"github.com/dukapay/dukapay/internal/pkg/models"
)

// ProviderMode describes how a provider reports the final charge result.
// Sync providers leave the record pending until confirmed; async providers
// acknowledge handling and report the result out-of-band.
type ProviderMode string

const (
	ModeSync  ProviderMode = "sync"
	ModeAsync ProviderMode = "async"
)

// Outcome is the universal result vocabulary every provider-native code set
// translates into. It mirrors the payment state machine one-to-one.
type Outcome string

const (
	OutcomePending    Outcome = "pending"
	OutcomeProcessing Outcome = "processing"
	OutcomeSucceeded  Outcome = "succeeded"
	OutcomeFailed     Outcome = "failed"
	OutcomeCanceled   Outcome = "canceled"
)

// Status maps an outcome onto the payment state machine
func (o Outcome) Status() models.PaymentStatus {
	switch o {
	case OutcomeProcessing:
		return models.PaymentStatusProcessing
	case OutcomeSucceeded:
		return models.PaymentStatusSucceeded
	case OutcomeFailed:
		return models.PaymentStatusFailed
	case OutcomeCanceled:
		return models.PaymentStatusCanceled
	}
	return models.PaymentStatusPending
}

// InitiateRequest carries everything an adapter needs to start a charge.
// PhoneNumber is already normalized to international form for mobile money.
type InitiateRequest struct {
	PaymentID   string
	OrderID     string
	UserID      string
	Amount      int64
	Currency    string
	PhoneNumber string
	Description string
}

// InitiateResult is the provider acknowledgement of a new charge
type InitiateResult struct {
	ProviderTxnID      string
	Mode               ProviderMode
	ClientInstructions map[string]string
}

// ConfirmResult is the outcome of an explicit confirmation or capture call
type ConfirmResult struct {
	Outcome          Outcome
	MethodDescriptor string
	CaptureID        string
	ErrorMessage     string
}

// QueryResult is the outcome of a status poll against the provider
type QueryResult struct {
	Outcome          Outcome
	MethodDescriptor string
	Raw              string
}

// RefundRequest carries the correlation data a refund needs. CaptureID is
// required by the wallet provider; Recipient by the mobile money reversal.
type RefundRequest struct {
	ProviderTxnID string
	CaptureID     string
	Recipient     string
	Amount        int64
	Currency      string
}

// RefundResult is the provider acknowledgement of a refund
type RefundResult struct {
	RefundID       string
	RefundedAmount int64
}

// ProviderAdapter is the uniform capability set over one payment provider.
// Implementations own the provider wire protocol and its result vocabulary;
// nothing provider-specific leaks past this interface.
type ProviderAdapter interface {
	Name() models.PaymentProvider
	Initiate(ctx context.Context, req *InitiateRequest) (*InitiateResult, error)
	Confirm(ctx context.Context, providerTxnID string) (*ConfirmResult, error)
	Query(ctx context.Context, providerTxnID string) (*QueryResult, error)
	Refund(ctx context.Context, req *RefundRequest) (*RefundResult, error)
}

// Canceler is implemented by adapters that support pre-confirmation
// cancellation on the provider side. Cancellation of an already-acknowledged
// async operation is best-effort only.
type Canceler interface {
	CancelIntent(ctx context.Context, providerTxnID string) error
}

// WebhookEvent is a card processor webhook translated into the universal
// vocabulary. Relevant is false for event types the ingress does not track.
type WebhookEvent struct {
	Type             string
	ProviderTxnID    string
	Outcome          Outcome
	MethodDescriptor string
	ErrorMessage     string
	Relevant         bool
}

// WebhookVerifier authenticates a webhook against the raw request body and
// translates it. Verification always precedes any field access.
type WebhookVerifier interface {
	VerifyWebhook(payload []byte, signature string) (*WebhookEvent, error)
}

// ResultCodeMapper is the single result-code translation table shared by the
// mobile money callback and query paths
type ResultCodeMapper interface {
	OutcomeFromResultCode(code string) (Outcome, string)
}
