package payments

import (
	"context"

	"github.com/dukapay/dukapay/internal/pkg/models"
	"github.com/dukapay/dukapay/internal/pkg/requestcontext"
)

// NotifierGW publishes terminal payment status events for the notification
// service. Publishing is fire-and-forget: failures are logged, never
// propagated into the payment flow.
type NotifierGW interface {
	PublishPaymentStatus(ctx context.Context, event models.PaymentStatusEvent) error
}

// RiskAssessor performs the synchronous pre-charge risk assessment. It
// always returns an assessment; downstream failures fail open.
type RiskAssessor interface {
	Assess(ctx context.Context, txn models.RiskTransaction, reqCtx *requestcontext.RequestContext) models.RiskAssessment
}
