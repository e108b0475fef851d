package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukapay/dukapay/internal/pkg/models"
	"github.com/dukapay/dukapay/services/payments"
	payerrors "github.com/dukapay/dukapay/services/payments/errors"
)

func newTestRepo(t *testing.T) (*PaymentRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db := sqlx.NewDb(mockDB, "sqlmock")
	return NewPaymentRepo(&models.Config{}, db), mock
}

func paymentRowColumns() []string {
	return []string{
		"id", "order_id", "user_id", "provider", "provider_txn_id",
		"amount", "currency", "status", "method_descriptor",
		"refund_id", "refunded_amount", "risk_snapshot", "metadata",
		"error_message", "created_at", "updated_at",
	}
}

func TestCreatePayment(t *testing.T) {
	repo, mock := newTestRepo(t)

	now := time.Now()
	payment := &models.Payment{
		ID:        "pay-1",
		OrderID:   "order-1",
		UserID:    "user-1",
		Provider:  models.ProviderCard,
		Amount:    10000,
		Currency:  "usd",
		Status:    models.PaymentStatusPending,
		Risk:      &models.RiskAssessment{Enabled: true, Action: models.RiskActionAllow},
		Metadata:  models.Metadata{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	mock.ExpectExec("INSERT INTO payments").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.CreatePayment(context.Background(), payment))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPayment(t *testing.T) {
	repo, mock := newTestRepo(t)

	risk, err := json.Marshal(models.RiskAssessment{Enabled: true, Score: 15, Action: models.RiskActionAllow})
	require.NoError(t, err)
	meta, err := json.Marshal(models.Metadata{"msisdn": "254712345678"})
	require.NoError(t, err)

	now := time.Now()
	rows := sqlmock.NewRows(paymentRowColumns()).AddRow(
		"pay-1", "order-1", "user-1", "mobile_money", "ws_CO_1",
		int64(10000), "kes", "succeeded", "mobile money receipt NLJ7RT61SV",
		nil, int64(0), risk, meta,
		nil, now, now,
	)

	mock.ExpectQuery("SELECT (.+) FROM payments WHERE id =").
		WithArgs("pay-1").
		WillReturnRows(rows)

	payment, err := repo.GetPayment(context.Background(), "pay-1")

	require.NoError(t, err)
	assert.Equal(t, "pay-1", payment.ID)
	assert.Equal(t, models.ProviderMobileMoney, payment.Provider)
	assert.Equal(t, models.PaymentStatusSucceeded, payment.Status)
	require.NotNil(t, payment.ProviderTxnID)
	assert.Equal(t, "ws_CO_1", *payment.ProviderTxnID)
	require.NotNil(t, payment.Risk)
	assert.Equal(t, 15, payment.Risk.Score)
	assert.Equal(t, "254712345678", payment.Metadata["msisdn"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPaymentNotFound(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM payments WHERE id =").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(paymentRowColumns()))

	_, err := repo.GetPayment(context.Background(), "missing")

	assert.ErrorIs(t, err, payerrors.ErrPaymentNotFound)
}

func TestHasActivePayment(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("order-1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	active, err := repo.HasActivePayment(context.Background(), "order-1")

	require.NoError(t, err)
	assert.True(t, active)
}

func TestTransitionStatusApplied(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectExec("UPDATE payments").
		WillReturnResult(sqlmock.NewResult(0, 1))

	descriptor := "visa ending 4242"
	applied, err := repo.TransitionStatus(context.Background(), "pay-1", models.PaymentStatusSucceeded, payments.StatusUpdate{
		MethodDescriptor: &descriptor,
	})

	require.NoError(t, err)
	assert.True(t, applied)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransitionStatusGuardRejectsStaleWrite(t *testing.T) {
	repo, mock := newTestRepo(t)

	// zero rows affected: the record was not in an allowed prior state
	mock.ExpectExec("UPDATE payments").
		WillReturnResult(sqlmock.NewResult(0, 0))

	applied, err := repo.TransitionStatus(context.Background(), "pay-1", models.PaymentStatusSucceeded, payments.StatusUpdate{})

	require.NoError(t, err)
	assert.False(t, applied)
}

func TestTransitionStatusUnknownTarget(t *testing.T) {
	repo, _ := newTestRepo(t)

	// pending is never a transition target
	_, err := repo.TransitionStatus(context.Background(), "pay-1", models.PaymentStatusPending, payments.StatusUpdate{})

	assert.ErrorIs(t, err, payerrors.ErrInvalidTransition)
}

func TestAttachProviderSession(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectExec("UPDATE payments").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.AttachProviderSession(context.Background(), "pay-1", "pi_123", nil)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAttachProviderSessionNotPending(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectExec("UPDATE payments").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.AttachProviderSession(context.Background(), "pay-1", "pi_123", nil)

	assert.ErrorIs(t, err, payerrors.ErrInvalidTransition)
}
