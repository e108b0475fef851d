package payments

import (
	"context"

	"github.com/dukapay/dukapay/internal/pkg/models"
)

// StatusUpdate carries the terminal data written together with a status
// transition. Nil fields are left untouched; MetadataPut keys are merged
// into the record's metadata.
type StatusUpdate struct {
	ProviderTxnID    *string
	MethodDescriptor *string
	ErrorMessage     *string
	RefundID         *string
	RefundedAmount   *int64
	MetadataPut      models.Metadata
}

// PaymentRepo is the authoritative payment record store. Status writes go
// through TransitionStatus, which applies the optimistic precondition guard;
// records are never hard-deleted.
type PaymentRepo interface {
	CreatePayment(ctx context.Context, payment *models.Payment) error
	GetPayment(ctx context.Context, id string) (*models.Payment, error)
	GetPaymentByOrderID(ctx context.Context, orderID string) (*models.Payment, error)
	GetPaymentByProviderTxnID(ctx context.Context, providerTxnID string) (*models.Payment, error)
	HasActivePayment(ctx context.Context, orderID string) (bool, error)

	// AttachProviderSession stores the provider correlation id on a still
	// pending record, guarded on the pending status.
	AttachProviderSession(ctx context.Context, paymentID, providerTxnID string, meta models.Metadata) error

	// TransitionStatus sets the target status only if the current status is
	// one of the allowed prior states for it. It reports whether the write
	// took effect; a false return with no error means another writer got
	// there first or the transition is illegal from the current state.
	TransitionStatus(ctx context.Context, paymentID string, target models.PaymentStatus, update StatusUpdate) (bool, error)
}
