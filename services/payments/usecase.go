package payments

import (
	"context"

	"github.com/dukapay/dukapay/internal/pkg/models"
	"github.com/dukapay/dukapay/internal/pkg/requestcontext"
)

// PaymentUC is the payment orchestrator contract. It sequences the risk
// gate, the provider adapter, and the ledger for outbound operations, and
// applies inbound provider outcomes through the same guarded transition.
type PaymentUC interface {
	InitiatePayment(ctx context.Context, req *models.InitiatePaymentRequest, reqCtx *requestcontext.RequestContext) (*models.InitiatePaymentResponse, error)
	ConfirmPayment(ctx context.Context, paymentID string) (*models.Payment, error)
	RefundPayment(ctx context.Context, paymentID string, amount int64) (*models.Payment, error)
	CancelPayment(ctx context.Context, paymentID string) (*models.Payment, error)
	GetStatus(ctx context.Context, paymentID string) (*models.Payment, error)
	GetStatusByOrderID(ctx context.Context, orderID string) (*models.Payment, error)

	// ApplyProviderOutcome resolves the record by provider correlation id and
	// applies the outcome idempotently. Used by the callback ingress.
	ApplyProviderOutcome(ctx context.Context, providerTxnID string, outcome Outcome, methodDescriptor, errorMessage string) (*models.Payment, error)
}
