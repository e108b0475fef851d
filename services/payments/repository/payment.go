package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/dukapay/dukapay/internal/pkg/models"
	"github.com/dukapay/dukapay/services/payments"
	payerrors "github.com/dukapay/dukapay/services/payments/errors"
)

// PaymentRepo implements payments.PaymentRepo on PostgreSQL
type PaymentRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewPaymentRepo creates a new payment repository
func NewPaymentRepo(cfg *models.Config, db *sqlx.DB) *PaymentRepo {
	return &PaymentRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreatePayment inserts a new payment record
func (r *PaymentRepo) CreatePayment(ctx context.Context, payment *models.Payment) error {
	query := `
		INSERT INTO payments (
			id, order_id, user_id, provider, provider_txn_id,
			amount, currency, status, method_descriptor,
			refund_id, refunded_amount, risk_snapshot, metadata,
			error_message, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	riskJSON, err := marshalRisk(payment.Risk)
	if err != nil {
		return err
	}
	metaJSON, err := marshalMetadata(payment.Metadata)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(
		ctx,
		query,
		payment.ID,
		payment.OrderID,
		payment.UserID,
		payment.Provider,
		payment.ProviderTxnID,
		payment.Amount,
		payment.Currency,
		payment.Status,
		payment.MethodDescriptor,
		payment.RefundID,
		payment.RefundedAmount,
		riskJSON,
		metaJSON,
		payment.ErrorMessage,
		payment.CreatedAt,
		payment.UpdatedAt,
	)

	return err
}

const paymentColumns = `
	id, order_id, user_id, provider, provider_txn_id,
	amount, currency, status, method_descriptor,
	refund_id, refunded_amount, risk_snapshot, metadata,
	error_message, created_at, updated_at
`

// GetPayment retrieves a payment by ID
func (r *PaymentRepo) GetPayment(ctx context.Context, id string) (*models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	return r.scanPayment(r.db.QueryRowContext(ctx, query, id))
}

// GetPaymentByOrderID retrieves the most recent payment attempt for an order
func (r *PaymentRepo) GetPaymentByOrderID(ctx context.Context, orderID string) (*models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE order_id = $1 ORDER BY created_at DESC LIMIT 1`
	return r.scanPayment(r.db.QueryRowContext(ctx, query, orderID))
}

// GetPaymentByProviderTxnID retrieves a payment by provider correlation id
func (r *PaymentRepo) GetPaymentByProviderTxnID(ctx context.Context, providerTxnID string) (*models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE provider_txn_id = $1`
	return r.scanPayment(r.db.QueryRowContext(ctx, query, providerTxnID))
}

// HasActivePayment reports whether a non-terminal payment exists for the order
func (r *PaymentRepo) HasActivePayment(ctx context.Context, orderID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM payments
			WHERE order_id = $1 AND status IN ('pending', 'processing')
		)
	`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, orderID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// AttachProviderSession stores the provider correlation id on a pending record
func (r *PaymentRepo) AttachProviderSession(ctx context.Context, paymentID, providerTxnID string, meta models.Metadata) error {
	query := `
		UPDATE payments
		SET provider_txn_id = $2, metadata = metadata || $3::jsonb, updated_at = $4
		WHERE id = $1 AND status = 'pending'
	`

	metaJSON, err := marshalMetadata(meta)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, paymentID, providerTxnID, metaJSON, time.Now())
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return payerrors.ErrInvalidTransition
	}
	return nil
}

// TransitionStatus applies the optimistic precondition-guarded status write:
// the target status is set only if the current status is one of its allowed
// prior states. Exactly one of two racing writers observes applied=true.
func (r *PaymentRepo) TransitionStatus(ctx context.Context, paymentID string, target models.PaymentStatus, update payments.StatusUpdate) (bool, error) {
	prior := models.AllowedPriorStates(target)
	if len(prior) == 0 {
		return false, payerrors.ErrInvalidTransition
	}

	metaJSON, err := marshalMetadata(update.MetadataPut)
	if err != nil {
		return false, err
	}

	query, args, err := sqlx.In(`
		UPDATE payments
		SET status = ?,
			provider_txn_id = COALESCE(?, provider_txn_id),
			method_descriptor = COALESCE(?, method_descriptor),
			error_message = COALESCE(?, error_message),
			refund_id = COALESCE(?, refund_id),
			refunded_amount = COALESCE(?, refunded_amount),
			metadata = metadata || ?::jsonb,
			updated_at = ?
		WHERE id = ? AND status IN (?)`,
		target,
		update.ProviderTxnID,
		update.MethodDescriptor,
		update.ErrorMessage,
		update.RefundID,
		update.RefundedAmount,
		metaJSON,
		time.Now(),
		paymentID,
		prior,
	)
	if err != nil {
		return false, fmt.Errorf("failed to build transition query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// scanPayment parses one payment row, mapping nullable columns
func (r *PaymentRepo) scanPayment(row *sql.Row) (*models.Payment, error) {
	payment := &models.Payment{}
	var providerTxnID, methodDescriptor, refundID, errorMessage sql.NullString
	var riskJSON, metaJSON []byte

	err := row.Scan(
		&payment.ID,
		&payment.OrderID,
		&payment.UserID,
		&payment.Provider,
		&providerTxnID,
		&payment.Amount,
		&payment.Currency,
		&payment.Status,
		&methodDescriptor,
		&refundID,
		&payment.RefundedAmount,
		&riskJSON,
		&metaJSON,
		&errorMessage,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, payerrors.ErrPaymentNotFound
		}
		return nil, err
	}

	if providerTxnID.Valid {
		payment.ProviderTxnID = &providerTxnID.String
	}
	if methodDescriptor.Valid {
		payment.MethodDescriptor = &methodDescriptor.String
	}
	if refundID.Valid {
		payment.RefundID = &refundID.String
	}
	if errorMessage.Valid {
		payment.ErrorMessage = &errorMessage.String
	}

	if len(riskJSON) > 0 {
		risk := &models.RiskAssessment{}
		if err := json.Unmarshal(riskJSON, risk); err != nil {
			return nil, fmt.Errorf("failed to parse risk snapshot: %w", err)
		}
		payment.Risk = risk
	}

	if len(metaJSON) > 0 {
		if err := json.Unmarshal(metaJSON, &payment.Metadata); err != nil {
			return nil, fmt.Errorf("failed to parse metadata: %w", err)
		}
	}

	return payment, nil
}

func marshalRisk(risk *models.RiskAssessment) ([]byte, error) {
	if risk == nil {
		return nil, nil
	}
	data, err := json.Marshal(risk)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal risk snapshot: %w", err)
	}
	return data, nil
}

func marshalMetadata(meta models.Metadata) ([]byte, error) {
	if meta == nil {
		meta = models.Metadata{}
	}
	data, err := json.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata: %w", err)
	}
	return data, nil
}
