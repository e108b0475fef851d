package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukapay/dukapay/internal/pkg/logger"
	"github.com/dukapay/dukapay/internal/pkg/models"
	"github.com/dukapay/dukapay/internal/pkg/requestcontext"
	"github.com/dukapay/dukapay/services/payments"
	payerrors "github.com/dukapay/dukapay/services/payments/errors"
	"github.com/dukapay/dukapay/services/payments/mocks"
)

type ucMocks struct {
	repo     *mocks.MockPaymentRepo
	card     *mocks.MockCancelableAdapter
	mm       *mocks.MockProviderAdapter
	wallet   *mocks.MockProviderAdapter
	risk     *mocks.MockRiskAssessor
	notifier *mocks.MockNotifierGW
}

func newTestUC(t *testing.T) (payments.PaymentUC, *ucMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := &ucMocks{
		repo:     mocks.NewMockPaymentRepo(ctrl),
		card:     mocks.NewMockCancelableAdapter(ctrl),
		mm:       mocks.NewMockProviderAdapter(ctrl),
		wallet:   mocks.NewMockProviderAdapter(ctrl),
		risk:     mocks.NewMockRiskAssessor(ctrl),
		notifier: mocks.NewMockNotifierGW(ctrl),
	}

	zapLogger, err := logger.NewZapLogger(logger.Config{Level: "debug"})
	require.NoError(t, err)

	cfg := &models.Config{
		Payments: models.PaymentsConfig{StalenessThresholdSec: 120},
	}

	adapters := map[models.PaymentProvider]payments.ProviderAdapter{
		models.ProviderCard:        m.card,
		models.ProviderMobileMoney: m.mm,
		models.ProviderWallet:      m.wallet,
	}

	return NewPaymentUC(cfg, m.repo, adapters, m.risk, m.notifier, zapLogger), m
}

func allowAssessment() models.RiskAssessment {
	return models.RiskAssessment{
		Enabled:   true,
		Action:    models.RiskActionAllow,
		CheckedAt: time.Now(),
	}
}

func cardRequest() *models.InitiatePaymentRequest {
	return &models.InitiatePaymentRequest{
		OrderID:  "order-1",
		UserID:   "user-1",
		Amount:   10000,
		Currency: "usd",
		Provider: models.ProviderCard,
	}
}

func strPtr(s string) *string { return &s }

func TestInitiatePaymentCardSync(t *testing.T) {
	uc, m := newTestUC(t)

	m.repo.EXPECT().HasActivePayment(gomock.Any(), "order-1").Return(false, nil)
	m.risk.EXPECT().Assess(gomock.Any(), gomock.Any(), gomock.Any()).Return(allowAssessment())

	var createdID string
	m.repo.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *models.Payment) error {
			createdID = p.ID
			assert.Equal(t, models.PaymentStatusPending, p.Status)
			assert.NotNil(t, p.Risk)
			return nil
		})

	m.card.EXPECT().Initiate(gomock.Any(), gomock.Any()).Return(&payments.InitiateResult{
		ProviderTxnID:      "pi_123",
		Mode:               payments.ModeSync,
		ClientInstructions: map[string]string{"client_secret": "pi_123_secret"},
	}, nil)

	m.repo.EXPECT().AttachProviderSession(gomock.Any(), gomock.Any(), "pi_123", gomock.Nil()).Return(nil)

	resp, err := uc.InitiatePayment(context.Background(), cardRequest(), &requestcontext.RequestContext{})

	require.NoError(t, err)
	assert.Equal(t, createdID, resp.PaymentID)
	assert.Equal(t, models.PaymentStatusPending, resp.Status)
	assert.Equal(t, "pi_123_secret", resp.ClientInstructions["client_secret"])
	assert.Equal(t, models.RiskActionAllow, resp.Risk.Action)
}

func TestInitiatePaymentMobileMoneyAsync(t *testing.T) {
	uc, m := newTestUC(t)

	req := &models.InitiatePaymentRequest{
		OrderID:     "order-2",
		UserID:      "user-1",
		Amount:      10000,
		Currency:    "kes",
		Provider:    models.ProviderMobileMoney,
		PhoneNumber: "0712 345 678",
	}

	m.repo.EXPECT().HasActivePayment(gomock.Any(), "order-2").Return(false, nil)
	m.risk.EXPECT().Assess(gomock.Any(), gomock.Any(), gomock.Any()).Return(allowAssessment())

	m.repo.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *models.Payment) error {
			assert.Equal(t, "254712345678", p.Metadata["msisdn"])
			return nil
		})

	m.mm.EXPECT().Initiate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, ir *payments.InitiateRequest) (*payments.InitiateResult, error) {
			assert.Equal(t, "254712345678", ir.PhoneNumber)
			return &payments.InitiateResult{
				ProviderTxnID: "ws_CO_1",
				Mode:          payments.ModeAsync,
			}, nil
		})

	m.repo.EXPECT().TransitionStatus(gomock.Any(), gomock.Any(), models.PaymentStatusProcessing, gomock.Any()).Return(true, nil)

	resp, err := uc.InitiatePayment(context.Background(), req, &requestcontext.RequestContext{})

	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusProcessing, resp.Status)
	assert.Equal(t, "ws_CO_1", resp.ProviderTxnID)
}

func TestInitiatePaymentValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *models.InitiatePaymentRequest)
	}{
		{name: "empty order id", mutate: func(r *models.InitiatePaymentRequest) { r.OrderID = "" }},
		{name: "empty user id", mutate: func(r *models.InitiatePaymentRequest) { r.UserID = "" }},
		{name: "zero amount", mutate: func(r *models.InitiatePaymentRequest) { r.Amount = 0 }},
		{name: "negative amount", mutate: func(r *models.InitiatePaymentRequest) { r.Amount = -500 }},
		{name: "unsupported currency", mutate: func(r *models.InitiatePaymentRequest) { r.Currency = "xyz" }},
		{name: "unknown provider", mutate: func(r *models.InitiatePaymentRequest) { r.Provider = "crypto" }},
		{name: "bad mobile money phone", mutate: func(r *models.InitiatePaymentRequest) {
			r.Provider = models.ProviderMobileMoney
			r.PhoneNumber = "02012345"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newTestUC(t)

			req := cardRequest()
			tt.mutate(req)

			_, err := uc.InitiatePayment(context.Background(), req, nil)

			require.Error(t, err)
			assert.True(t, payerrors.IsValidation(err))
		})
	}
}

func TestInitiatePaymentRejectsActiveOrder(t *testing.T) {
	uc, m := newTestUC(t)

	m.repo.EXPECT().HasActivePayment(gomock.Any(), "order-1").Return(true, nil)

	_, err := uc.InitiatePayment(context.Background(), cardRequest(), nil)

	assert.ErrorIs(t, err, payerrors.ErrOrderPaymentActive)
}

func TestInitiatePaymentRiskBlockSkipsProvider(t *testing.T) {
	uc, m := newTestUC(t)

	blocked := allowAssessment()
	blocked.Action = models.RiskActionBlock
	blocked.Score = 90
	blocked.Reasons = []string{"user attempt velocity exceeded"}

	m.repo.EXPECT().HasActivePayment(gomock.Any(), "order-1").Return(false, nil)
	m.risk.EXPECT().Assess(gomock.Any(), gomock.Any(), gomock.Any()).Return(blocked)
	m.repo.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(nil)
	m.repo.EXPECT().TransitionStatus(gomock.Any(), gomock.Any(), models.PaymentStatusFailed, gomock.Any()).Return(true, nil)
	m.repo.EXPECT().GetPayment(gomock.Any(), gomock.Any()).Return(&models.Payment{
		ID:     "pay-1",
		Status: models.PaymentStatusFailed,
	}, nil)
	m.notifier.EXPECT().PublishPaymentStatus(gomock.Any(), gomock.Any()).Return(nil)

	// no Initiate expectation on any adapter: a blocked payment never
	// reaches the provider
	_, err := uc.InitiatePayment(context.Background(), cardRequest(), &requestcontext.RequestContext{})

	require.Error(t, err)
	assert.True(t, payerrors.IsRiskBlocked(err))
}

func TestInitiatePaymentProviderFailureMarksFailed(t *testing.T) {
	uc, m := newTestUC(t)

	m.repo.EXPECT().HasActivePayment(gomock.Any(), "order-1").Return(false, nil)
	m.risk.EXPECT().Assess(gomock.Any(), gomock.Any(), gomock.Any()).Return(allowAssessment())
	m.repo.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(nil)
	m.card.EXPECT().Initiate(gomock.Any(), gomock.Any()).Return(nil, errors.New("gateway timeout"))
	m.repo.EXPECT().TransitionStatus(gomock.Any(), gomock.Any(), models.PaymentStatusFailed, gomock.Any()).Return(true, nil)
	m.repo.EXPECT().GetPayment(gomock.Any(), gomock.Any()).Return(&models.Payment{
		ID:     "pay-1",
		Status: models.PaymentStatusFailed,
	}, nil)
	m.notifier.EXPECT().PublishPaymentStatus(gomock.Any(), gomock.Any()).Return(nil)

	_, err := uc.InitiatePayment(context.Background(), cardRequest(), nil)

	require.Error(t, err)
	assert.True(t, payerrors.IsProvider(err, payerrors.StageInitiate))
}

func TestConfirmPaymentSucceeds(t *testing.T) {
	uc, m := newTestUC(t)

	pending := &models.Payment{
		ID:            "pay-1",
		OrderID:       "order-1",
		Provider:      models.ProviderCard,
		ProviderTxnID: strPtr("pi_123"),
		Status:        models.PaymentStatusPending,
	}
	succeeded := &models.Payment{
		ID:            "pay-1",
		OrderID:       "order-1",
		Provider:      models.ProviderCard,
		ProviderTxnID: strPtr("pi_123"),
		Status:        models.PaymentStatusSucceeded,
	}

	m.repo.EXPECT().GetPayment(gomock.Any(), "pay-1").Return(pending, nil)
	m.card.EXPECT().Confirm(gomock.Any(), "pi_123").Return(&payments.ConfirmResult{
		Outcome:          payments.OutcomeSucceeded,
		MethodDescriptor: "visa ending 4242",
	}, nil)
	m.repo.EXPECT().TransitionStatus(gomock.Any(), "pay-1", models.PaymentStatusSucceeded, gomock.Any()).Return(true, nil)
	m.repo.EXPECT().GetPayment(gomock.Any(), "pay-1").Return(succeeded, nil)
	m.notifier.EXPECT().PublishPaymentStatus(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	payment, err := uc.ConfirmPayment(context.Background(), "pay-1")

	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusSucceeded, payment.Status)
}

func TestConfirmPaymentIdempotentOnSucceeded(t *testing.T) {
	uc, m := newTestUC(t)

	m.repo.EXPECT().GetPayment(gomock.Any(), "pay-1").Return(&models.Payment{
		ID:     "pay-1",
		Status: models.PaymentStatusSucceeded,
	}, nil)

	payment, err := uc.ConfirmPayment(context.Background(), "pay-1")

	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusSucceeded, payment.Status)
}

func TestConfirmPaymentTransportErrorFallsBackToQuery(t *testing.T) {
	uc, m := newTestUC(t)

	processing := &models.Payment{
		ID:            "pay-1",
		Provider:      models.ProviderMobileMoney,
		ProviderTxnID: strPtr("ws_CO_1"),
		Status:        models.PaymentStatusProcessing,
	}

	m.repo.EXPECT().GetPayment(gomock.Any(), "pay-1").Return(processing, nil)
	m.mm.EXPECT().Confirm(gomock.Any(), "ws_CO_1").Return(nil, errors.New("connection reset"))
	m.mm.EXPECT().Query(gomock.Any(), "ws_CO_1").Return(&payments.QueryResult{
		Outcome: payments.OutcomeSucceeded,
	}, nil)
	m.repo.EXPECT().TransitionStatus(gomock.Any(), "pay-1", models.PaymentStatusSucceeded, gomock.Any()).Return(true, nil)
	m.repo.EXPECT().GetPayment(gomock.Any(), "pay-1").Return(&models.Payment{
		ID:     "pay-1",
		Status: models.PaymentStatusSucceeded,
	}, nil)
	m.notifier.EXPECT().PublishPaymentStatus(gomock.Any(), gomock.Any()).Return(nil)

	payment, err := uc.ConfirmPayment(context.Background(), "pay-1")

	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusSucceeded, payment.Status)
}

func TestConfirmPaymentBothCallsFailing(t *testing.T) {
	uc, m := newTestUC(t)

	m.repo.EXPECT().GetPayment(gomock.Any(), "pay-1").Return(&models.Payment{
		ID:            "pay-1",
		Provider:      models.ProviderCard,
		ProviderTxnID: strPtr("pi_123"),
		Status:        models.PaymentStatusPending,
	}, nil)
	m.card.EXPECT().Confirm(gomock.Any(), "pi_123").Return(nil, errors.New("timeout"))
	m.card.EXPECT().Query(gomock.Any(), "pi_123").Return(nil, errors.New("timeout"))

	// the record is left untouched: the charge truth is unknown
	_, err := uc.ConfirmPayment(context.Background(), "pay-1")

	require.Error(t, err)
	assert.True(t, payerrors.IsProvider(err, payerrors.StageConfirm))
}

func TestApplyProviderOutcomeLostRaceIsNoOp(t *testing.T) {
	uc, m := newTestUC(t)

	m.repo.EXPECT().GetPaymentByProviderTxnID(gomock.Any(), "ws_CO_1").Return(&models.Payment{
		ID:            "pay-1",
		Provider:      models.ProviderMobileMoney,
		ProviderTxnID: strPtr("ws_CO_1"),
		Status:        models.PaymentStatusProcessing,
	}, nil)
	m.repo.EXPECT().TransitionStatus(gomock.Any(), "pay-1", models.PaymentStatusSucceeded, gomock.Any()).Return(false, nil)
	m.repo.EXPECT().GetPayment(gomock.Any(), "pay-1").Return(&models.Payment{
		ID:     "pay-1",
		Status: models.PaymentStatusSucceeded,
	}, nil)

	// the racing writer already landed succeeded: no second notification
	payment, err := uc.ApplyProviderOutcome(context.Background(), "ws_CO_1", payments.OutcomeSucceeded, "", "")

	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusSucceeded, payment.Status)
}

func TestApplyProviderOutcomeConflictingTransition(t *testing.T) {
	uc, m := newTestUC(t)

	m.repo.EXPECT().GetPaymentByProviderTxnID(gomock.Any(), "ws_CO_1").Return(&models.Payment{
		ID:            "pay-1",
		Provider:      models.ProviderMobileMoney,
		ProviderTxnID: strPtr("ws_CO_1"),
		Status:        models.PaymentStatusProcessing,
	}, nil)
	m.repo.EXPECT().TransitionStatus(gomock.Any(), "pay-1", models.PaymentStatusFailed, gomock.Any()).Return(false, nil)
	m.repo.EXPECT().GetPayment(gomock.Any(), "pay-1").Return(&models.Payment{
		ID:     "pay-1",
		Status: models.PaymentStatusSucceeded,
	}, nil)

	_, err := uc.ApplyProviderOutcome(context.Background(), "ws_CO_1", payments.OutcomeFailed, "", "declined")

	assert.ErrorIs(t, err, payerrors.ErrInvalidTransition)
}

func TestApplyProviderOutcomeIdempotentReplay(t *testing.T) {
	uc, m := newTestUC(t)

	m.repo.EXPECT().GetPaymentByProviderTxnID(gomock.Any(), "ws_CO_1").Return(&models.Payment{
		ID:            "pay-1",
		ProviderTxnID: strPtr("ws_CO_1"),
		Status:        models.PaymentStatusSucceeded,
	}, nil)

	// replayed callback with an equal status writes nothing
	payment, err := uc.ApplyProviderOutcome(context.Background(), "ws_CO_1", payments.OutcomeSucceeded, "", "")

	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusSucceeded, payment.Status)
}

func TestRefundPaymentFullBalance(t *testing.T) {
	uc, m := newTestUC(t)

	succeeded := &models.Payment{
		ID:            "pay-1",
		Provider:      models.ProviderWallet,
		ProviderTxnID: strPtr("5O1"),
		Amount:        10000,
		Currency:      "usd",
		Status:        models.PaymentStatusSucceeded,
		Metadata:      models.Metadata{"capture_id": "3C6"},
	}

	m.repo.EXPECT().GetPayment(gomock.Any(), "pay-1").Return(succeeded, nil)
	m.wallet.EXPECT().Refund(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *payments.RefundRequest) (*payments.RefundResult, error) {
			assert.Equal(t, int64(10000), req.Amount)
			assert.Equal(t, "3C6", req.CaptureID)
			return &payments.RefundResult{RefundID: "1JU", RefundedAmount: 10000}, nil
		})
	m.repo.EXPECT().TransitionStatus(gomock.Any(), "pay-1", models.PaymentStatusRefunded, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, _ models.PaymentStatus, update payments.StatusUpdate) (bool, error) {
			require.NotNil(t, update.RefundedAmount)
			assert.Equal(t, int64(10000), *update.RefundedAmount)
			return true, nil
		})
	m.repo.EXPECT().GetPayment(gomock.Any(), "pay-1").Return(&models.Payment{
		ID:             "pay-1",
		Status:         models.PaymentStatusRefunded,
		RefundedAmount: 10000,
	}, nil)
	m.notifier.EXPECT().PublishPaymentStatus(gomock.Any(), gomock.Any()).Return(nil)

	payment, err := uc.RefundPayment(context.Background(), "pay-1", 0)

	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusRefunded, payment.Status)
}

func TestRefundPaymentExceedingBalanceRejected(t *testing.T) {
	uc, m := newTestUC(t)

	m.repo.EXPECT().GetPayment(gomock.Any(), "pay-1").Return(&models.Payment{
		ID:            "pay-1",
		Provider:      models.ProviderCard,
		ProviderTxnID: strPtr("pi_123"),
		Amount:        10000,
		Status:        models.PaymentStatusSucceeded,
	}, nil)

	_, err := uc.RefundPayment(context.Background(), "pay-1", 10001)

	require.Error(t, err)
	assert.True(t, payerrors.IsValidation(err))
}

func TestRefundPaymentNonSucceededRejected(t *testing.T) {
	uc, m := newTestUC(t)

	m.repo.EXPECT().GetPayment(gomock.Any(), "pay-1").Return(&models.Payment{
		ID:     "pay-1",
		Status: models.PaymentStatusProcessing,
	}, nil)

	_, err := uc.RefundPayment(context.Background(), "pay-1", 0)

	assert.ErrorIs(t, err, payerrors.ErrInvalidTransition)
}

func TestRefundPaymentProviderFailureKeepsSucceeded(t *testing.T) {
	uc, m := newTestUC(t)

	m.repo.EXPECT().GetPayment(gomock.Any(), "pay-1").Return(&models.Payment{
		ID:            "pay-1",
		Provider:      models.ProviderCard,
		ProviderTxnID: strPtr("pi_123"),
		Amount:        10000,
		Status:        models.PaymentStatusSucceeded,
	}, nil)
	m.card.EXPECT().Refund(gomock.Any(), gomock.Any()).Return(nil, errors.New("refund window closed"))

	// no TransitionStatus expectation: the record stays succeeded
	_, err := uc.RefundPayment(context.Background(), "pay-1", 5000)

	require.Error(t, err)
	assert.True(t, payerrors.IsProvider(err, payerrors.StageRefund))
}

func TestCancelPaymentPendingWithProviderSession(t *testing.T) {
	uc, m := newTestUC(t)

	m.repo.EXPECT().GetPayment(gomock.Any(), "pay-1").Return(&models.Payment{
		ID:            "pay-1",
		Provider:      models.ProviderCard,
		ProviderTxnID: strPtr("pi_123"),
		Status:        models.PaymentStatusPending,
	}, nil)
	m.card.CancelEXPECT().CancelIntent(gomock.Any(), "pi_123").Return(nil)
	m.repo.EXPECT().TransitionStatus(gomock.Any(), "pay-1", models.PaymentStatusCanceled, gomock.Any()).Return(true, nil)
	m.repo.EXPECT().GetPayment(gomock.Any(), "pay-1").Return(&models.Payment{
		ID:     "pay-1",
		Status: models.PaymentStatusCanceled,
	}, nil)
	m.notifier.EXPECT().PublishPaymentStatus(gomock.Any(), gomock.Any()).Return(nil)

	payment, err := uc.CancelPayment(context.Background(), "pay-1")

	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCanceled, payment.Status)
}

func TestCancelPaymentProcessingRejected(t *testing.T) {
	uc, m := newTestUC(t)

	m.repo.EXPECT().GetPayment(gomock.Any(), "pay-1").Return(&models.Payment{
		ID:     "pay-1",
		Status: models.PaymentStatusProcessing,
	}, nil)

	_, err := uc.CancelPayment(context.Background(), "pay-1")

	assert.ErrorIs(t, err, payerrors.ErrInvalidTransition)
}

func TestCancelPaymentIdempotentOnCanceled(t *testing.T) {
	uc, m := newTestUC(t)

	m.repo.EXPECT().GetPayment(gomock.Any(), "pay-1").Return(&models.Payment{
		ID:     "pay-1",
		Status: models.PaymentStatusCanceled,
	}, nil)

	payment, err := uc.CancelPayment(context.Background(), "pay-1")

	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCanceled, payment.Status)
}

func TestGetStatusFreshRecordNotPolled(t *testing.T) {
	uc, m := newTestUC(t)

	m.repo.EXPECT().GetPayment(gomock.Any(), "pay-1").Return(&models.Payment{
		ID:            "pay-1",
		Provider:      models.ProviderMobileMoney,
		ProviderTxnID: strPtr("ws_CO_1"),
		Status:        models.PaymentStatusProcessing,
		UpdatedAt:     time.Now(),
	}, nil)

	payment, err := uc.GetStatus(context.Background(), "pay-1")

	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusProcessing, payment.Status)
}

func TestGetStatusStaleProcessingIsPolled(t *testing.T) {
	uc, m := newTestUC(t)

	m.repo.EXPECT().GetPayment(gomock.Any(), "pay-1").Return(&models.Payment{
		ID:            "pay-1",
		Provider:      models.ProviderMobileMoney,
		ProviderTxnID: strPtr("ws_CO_1"),
		Status:        models.PaymentStatusProcessing,
		UpdatedAt:     time.Now().Add(-10 * time.Minute),
	}, nil)
	m.mm.EXPECT().Query(gomock.Any(), "ws_CO_1").Return(&payments.QueryResult{
		Outcome: payments.OutcomeFailed,
	}, nil)
	m.repo.EXPECT().TransitionStatus(gomock.Any(), "pay-1", models.PaymentStatusFailed, gomock.Any()).Return(true, nil)
	m.repo.EXPECT().GetPayment(gomock.Any(), "pay-1").Return(&models.Payment{
		ID:     "pay-1",
		Status: models.PaymentStatusFailed,
	}, nil)
	m.notifier.EXPECT().PublishPaymentStatus(gomock.Any(), gomock.Any()).Return(nil)

	payment, err := uc.GetStatus(context.Background(), "pay-1")

	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusFailed, payment.Status)
}

func TestGetStatusStaleWalletPendingIsPolled(t *testing.T) {
	uc, m := newTestUC(t)

	m.repo.EXPECT().GetPayment(gomock.Any(), "pay-1").Return(&models.Payment{
		ID:            "pay-1",
		Provider:      models.ProviderWallet,
		ProviderTxnID: strPtr("5O1"),
		Status:        models.PaymentStatusPending,
		UpdatedAt:     time.Now().Add(-10 * time.Minute),
	}, nil)
	m.wallet.EXPECT().Query(gomock.Any(), "5O1").Return(&payments.QueryResult{
		Outcome: payments.OutcomeProcessing,
	}, nil)
	m.repo.EXPECT().TransitionStatus(gomock.Any(), "pay-1", models.PaymentStatusProcessing, gomock.Any()).Return(true, nil)
	m.repo.EXPECT().GetPayment(gomock.Any(), "pay-1").Return(&models.Payment{
		ID:     "pay-1",
		Status: models.PaymentStatusProcessing,
	}, nil)

	payment, err := uc.GetStatus(context.Background(), "pay-1")

	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusProcessing, payment.Status)
}

func TestGetStatusPollFailureReturnsStoredRecord(t *testing.T) {
	uc, m := newTestUC(t)

	stored := &models.Payment{
		ID:            "pay-1",
		Provider:      models.ProviderMobileMoney,
		ProviderTxnID: strPtr("ws_CO_1"),
		Status:        models.PaymentStatusProcessing,
		UpdatedAt:     time.Now().Add(-10 * time.Minute),
	}
	m.repo.EXPECT().GetPayment(gomock.Any(), "pay-1").Return(stored, nil)
	m.mm.EXPECT().Query(gomock.Any(), "ws_CO_1").Return(nil, errors.New("gateway down"))

	payment, err := uc.GetStatus(context.Background(), "pay-1")

	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusProcessing, payment.Status)
}
