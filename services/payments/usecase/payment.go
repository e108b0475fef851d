package usecase

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/google/uuid"

	"github.com/dukapay/dukapay/internal/pkg/logger"
	"github.com/dukapay/dukapay/internal/pkg/models"
	"github.com/dukapay/dukapay/internal/pkg/requestcontext"
	"github.com/dukapay/dukapay/internal/utils"
	"github.com/dukapay/dukapay/services/payments"
	payerrors "github.com/dukapay/dukapay/services/payments/errors"
)

const riskBlockMessage = "blocked by risk assessment"

// paymentUC orchestrates the risk gate, the provider adapters, and the
// payment ledger. All status writes funnel through applyOutcome so that
// callbacks, confirms, and polls race safely.
type paymentUC struct {
	cfg      *models.Config
	repo     payments.PaymentRepo
	adapters map[models.PaymentProvider]payments.ProviderAdapter
	risk     payments.RiskAssessor
	notifier payments.NotifierGW
	logger   *logger.ZapLogger
}

// NewPaymentUC creates the payment orchestrator
func NewPaymentUC(
	cfg *models.Config,
	repo payments.PaymentRepo,
	adapters map[models.PaymentProvider]payments.ProviderAdapter,
	risk payments.RiskAssessor,
	notifier payments.NotifierGW,
	zapLogger *logger.ZapLogger,
) payments.PaymentUC {
	return &paymentUC{
		cfg:      cfg,
		repo:     repo,
		adapters: adapters,
		risk:     risk,
		notifier: notifier,
		logger:   zapLogger,
	}
}

// InitiatePayment validates the request, runs the risk gate, records the
// attempt, and starts the charge with the provider. The record is created
// before the provider call so a blocked or failed initiation still leaves
// an auditable row.
func (uc *paymentUC) InitiatePayment(ctx context.Context, req *models.InitiatePaymentRequest, reqCtx *requestcontext.RequestContext) (*models.InitiatePaymentResponse, error) {
	adapter, err := uc.validateInitiate(req)
	if err != nil {
		return nil, err
	}

	active, err := uc.repo.HasActivePayment(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}
	if active {
		return nil, payerrors.ErrOrderPaymentActive
	}

	assessment := uc.risk.Assess(ctx, models.RiskTransaction{
		OrderID:  req.OrderID,
		UserID:   req.UserID,
		Amount:   req.Amount,
		Currency: req.Currency,
		Provider: req.Provider,
	}, reqCtx)

	now := time.Now()
	payment := &models.Payment{
		ID:        uuid.New().String(),
		OrderID:   req.OrderID,
		UserID:    req.UserID,
		Provider:  req.Provider,
		Amount:    req.Amount,
		Currency:  utils.NormalizeCurrency(req.Currency),
		Status:    models.PaymentStatusPending,
		Risk:      &assessment,
		Metadata:  models.Metadata{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.Provider == models.ProviderMobileMoney {
		payment.Metadata["msisdn"] = req.PhoneNumber
	}

	if err := uc.repo.CreatePayment(ctx, payment); err != nil {
		return nil, err
	}

	if assessment.Action == models.RiskActionBlock {
		uc.markFailed(ctx, payment.ID, riskBlockMessage)
		uc.logger.Warn("Payment blocked by risk gate",
			logger.String("payment_id", payment.ID),
			logger.String("order_id", req.OrderID),
			logger.Int("score", assessment.Score))
		return nil, &payerrors.RiskBlockedError{Reasons: assessment.Reasons}
	}

	result, err := adapter.Initiate(ctx, &payments.InitiateRequest{
		PaymentID:   payment.ID,
		OrderID:     req.OrderID,
		UserID:      req.UserID,
		Amount:      req.Amount,
		Currency:    payment.Currency,
		PhoneNumber: req.PhoneNumber,
		Description: req.Description,
	})
	if err != nil {
		// a timeout leaves money-movement state unknown: keep the record
		// pending for later reconciliation instead of declaring failure
		if !isTimeout(err) {
			uc.markFailed(ctx, payment.ID, err.Error())
		}
		return nil, payerrors.NewProviderError(req.Provider, payerrors.StageInitiate, err)
	}

	status := models.PaymentStatusPending
	if result.Mode == payments.ModeAsync {
		applied, err := uc.repo.TransitionStatus(ctx, payment.ID, models.PaymentStatusProcessing, payments.StatusUpdate{
			ProviderTxnID: &result.ProviderTxnID,
		})
		if err != nil {
			return nil, err
		}
		if applied {
			status = models.PaymentStatusProcessing
		}
	} else {
		if err := uc.repo.AttachProviderSession(ctx, payment.ID, result.ProviderTxnID, nil); err != nil {
			return nil, err
		}
	}

	uc.logger.Info("Payment initiated",
		logger.String("payment_id", payment.ID),
		logger.String("order_id", req.OrderID),
		logger.String("provider", string(req.Provider)),
		logger.String("status", string(status)))

	return &models.InitiatePaymentResponse{
		PaymentID:          payment.ID,
		ProviderTxnID:      result.ProviderTxnID,
		Status:             status,
		ClientInstructions: result.ClientInstructions,
		Risk: &models.RiskSummary{
			Action: assessment.Action,
			Score:  assessment.Score,
		},
	}, nil
}

// ConfirmPayment asks the provider for the charge result and applies it.
// When the confirm call itself fails the provider is polled once before
// giving up, since a transport failure says nothing about the charge.
func (uc *paymentUC) ConfirmPayment(ctx context.Context, paymentID string) (*models.Payment, error) {
	payment, err := uc.repo.GetPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if payment.Status == models.PaymentStatusSucceeded {
		return payment, nil
	}
	if payment.Status.Terminal() {
		return nil, payerrors.ErrInvalidTransition
	}
	if payment.ProviderTxnID == nil {
		return nil, payerrors.NewValidationError("payment_id", "payment has no provider session to confirm")
	}

	adapter, ok := uc.adapters[payment.Provider]
	if !ok {
		return nil, payerrors.NewValidationError("provider", "unknown provider")
	}

	result, err := adapter.Confirm(ctx, *payment.ProviderTxnID)
	if err != nil {
		query, queryErr := adapter.Query(ctx, *payment.ProviderTxnID)
		if queryErr != nil {
			return nil, payerrors.NewProviderError(payment.Provider, payerrors.StageConfirm, err)
		}
		return uc.applyOutcome(ctx, payment, query.Outcome, query.MethodDescriptor, "", nil)
	}

	var meta models.Metadata
	if result.CaptureID != "" {
		meta = models.Metadata{"capture_id": result.CaptureID}
	}
	return uc.applyOutcome(ctx, payment, result.Outcome, result.MethodDescriptor, result.ErrorMessage, meta)
}

// RefundPayment refunds up to the remaining refundable balance. A zero
// amount refunds the full balance. A provider refusal leaves the record
// succeeded.
func (uc *paymentUC) RefundPayment(ctx context.Context, paymentID string, amount int64) (*models.Payment, error) {
	payment, err := uc.repo.GetPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment.Status != models.PaymentStatusSucceeded {
		return nil, payerrors.ErrInvalidTransition
	}
	if payment.ProviderTxnID == nil {
		return nil, payerrors.NewValidationError("payment_id", "payment has no provider transaction to refund")
	}

	remaining := payment.RefundableBalance()
	if amount == 0 {
		amount = remaining
	}
	if amount < 0 {
		return nil, payerrors.NewValidationError("amount", "must not be negative")
	}
	if amount > remaining {
		return nil, payerrors.NewValidationError("amount", "exceeds refundable balance")
	}

	adapter, ok := uc.adapters[payment.Provider]
	if !ok {
		return nil, payerrors.NewValidationError("provider", "unknown provider")
	}

	result, err := adapter.Refund(ctx, &payments.RefundRequest{
		ProviderTxnID: *payment.ProviderTxnID,
		CaptureID:     payment.Metadata["capture_id"],
		Recipient:     payment.Metadata["msisdn"],
		Amount:        amount,
		Currency:      payment.Currency,
	})
	if err != nil {
		return nil, payerrors.NewProviderError(payment.Provider, payerrors.StageRefund, err)
	}

	refunded := payment.RefundedAmount + result.RefundedAmount
	applied, err := uc.repo.TransitionStatus(ctx, payment.ID, models.PaymentStatusRefunded, payments.StatusUpdate{
		RefundID:       &result.RefundID,
		RefundedAmount: &refunded,
	})
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, payerrors.ErrInvalidTransition
	}

	updated, err := uc.repo.GetPayment(ctx, payment.ID)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Payment refunded",
		logger.String("payment_id", payment.ID),
		logger.String("refund_id", result.RefundID),
		logger.Int64("amount", result.RefundedAmount))
	uc.notify(ctx, updated)

	return updated, nil
}

// CancelPayment cancels a payment that has not yet been handed to the
// provider's final flow. Only pending records can be canceled; provider-side
// cancellation is best-effort.
func (uc *paymentUC) CancelPayment(ctx context.Context, paymentID string) (*models.Payment, error) {
	payment, err := uc.repo.GetPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment.Status == models.PaymentStatusCanceled {
		return payment, nil
	}
	if payment.Status != models.PaymentStatusPending {
		return nil, payerrors.ErrInvalidTransition
	}

	if payment.ProviderTxnID != nil {
		if canceler, ok := uc.adapters[payment.Provider].(payments.Canceler); ok {
			if err := canceler.CancelIntent(ctx, *payment.ProviderTxnID); err != nil {
				uc.logger.Warn("Provider-side cancel failed, canceling locally",
					logger.String("payment_id", payment.ID),
					logger.Err(err))
			}
		}
	}

	return uc.applyOutcome(ctx, payment, payments.OutcomeCanceled, "", "", nil)
}

// GetStatus returns the stored record, refreshing it from the provider when
// it has been sitting in a non-final state past the staleness threshold
func (uc *paymentUC) GetStatus(ctx context.Context, paymentID string) (*models.Payment, error) {
	payment, err := uc.repo.GetPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	return uc.refreshIfStale(ctx, payment), nil
}

// GetStatusByOrderID returns the most recent payment attempt for an order
func (uc *paymentUC) GetStatusByOrderID(ctx context.Context, orderID string) (*models.Payment, error) {
	payment, err := uc.repo.GetPaymentByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return uc.refreshIfStale(ctx, payment), nil
}

// ApplyProviderOutcome resolves a record by provider correlation id and
// applies the outcome. Used by the callback ingress.
func (uc *paymentUC) ApplyProviderOutcome(ctx context.Context, providerTxnID string, outcome payments.Outcome, methodDescriptor, errorMessage string) (*models.Payment, error) {
	payment, err := uc.repo.GetPaymentByProviderTxnID(ctx, providerTxnID)
	if err != nil {
		return nil, err
	}
	return uc.applyOutcome(ctx, payment, outcome, methodDescriptor, errorMessage, nil)
}

// applyOutcome maps the outcome onto the state machine and applies it
// through the guarded transition. Equal current and target status is an
// idempotent no-op; a lost race against a writer that reached the same
// status is also a no-op. Terminal transitions publish a status event
// exactly once, on the applied write.
func (uc *paymentUC) applyOutcome(ctx context.Context, payment *models.Payment, outcome payments.Outcome, methodDescriptor, errorMessage string, meta models.Metadata) (*models.Payment, error) {
	target := outcome.Status()
	if target == models.PaymentStatusPending || payment.Status == target {
		return payment, nil
	}

	update := payments.StatusUpdate{MetadataPut: meta}
	if methodDescriptor != "" {
		update.MethodDescriptor = &methodDescriptor
	}
	if errorMessage != "" {
		update.ErrorMessage = &errorMessage
	}

	applied, err := uc.repo.TransitionStatus(ctx, payment.ID, target, update)
	if err != nil {
		return nil, err
	}

	current, err := uc.repo.GetPayment(ctx, payment.ID)
	if err != nil {
		return nil, err
	}

	if !applied {
		if current.Status == target {
			return current, nil
		}
		return nil, payerrors.ErrInvalidTransition
	}

	uc.logger.Info("Payment status transition",
		logger.String("payment_id", payment.ID),
		logger.String("from", string(payment.Status)),
		logger.String("to", string(target)))

	if target.Terminal() {
		uc.notify(ctx, current)
	}
	return current, nil
}

// refreshIfStale polls the provider for records stuck in a non-final state.
// Processing records of any provider qualify; pending wallet records do too,
// because the customer may have approved without the capture ever landing.
// Poll failures fall back to the stored record.
func (uc *paymentUC) refreshIfStale(ctx context.Context, payment *models.Payment) *models.Payment {
	if payment.ProviderTxnID == nil {
		return payment
	}

	stale := time.Since(payment.UpdatedAt) > time.Duration(uc.cfg.Payments.StalenessThresholdSec)*time.Second
	pollable := payment.Status == models.PaymentStatusProcessing ||
		(payment.Status == models.PaymentStatusPending && payment.Provider == models.ProviderWallet)
	if !stale || !pollable {
		return payment
	}

	adapter, ok := uc.adapters[payment.Provider]
	if !ok {
		return payment
	}

	result, err := adapter.Query(ctx, *payment.ProviderTxnID)
	if err != nil {
		uc.logger.Warn("Stale payment poll failed",
			logger.String("payment_id", payment.ID),
			logger.Err(err))
		return payment
	}

	updated, err := uc.applyOutcome(ctx, payment, result.Outcome, result.MethodDescriptor, "", nil)
	if err != nil {
		uc.logger.Warn("Stale payment refresh not applied",
			logger.String("payment_id", payment.ID),
			logger.Err(err))
		return payment
	}
	return updated
}

// validateInitiate rejects bad input before anything is written or called.
// The mobile money phone number is normalized in place.
func (uc *paymentUC) validateInitiate(req *models.InitiatePaymentRequest) (payments.ProviderAdapter, error) {
	if req.OrderID == "" {
		return nil, payerrors.NewValidationError("order_id", "must not be empty")
	}
	if req.UserID == "" {
		return nil, payerrors.NewValidationError("user_id", "must not be empty")
	}
	if req.Amount <= 0 {
		return nil, payerrors.NewValidationError("amount", "must be a positive amount in minor units")
	}
	if !utils.IsSupportedCurrency(req.Currency) {
		return nil, payerrors.NewValidationError("currency", "unsupported currency code")
	}
	if !models.KnownProvider(req.Provider) {
		return nil, payerrors.NewValidationError("provider", "must be one of card, mobile_money, wallet")
	}

	adapter, ok := uc.adapters[req.Provider]
	if !ok {
		return nil, payerrors.NewValidationError("provider", "provider is not enabled")
	}

	if req.Provider == models.ProviderMobileMoney {
		msisdn, err := utils.NormalizeMSISDN(req.PhoneNumber)
		if err != nil {
			return nil, payerrors.NewValidationError("phone_number", err.Error())
		}
		req.PhoneNumber = msisdn
	}

	return adapter, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// markFailed is a best-effort terminal write used on initiation failures
func (uc *paymentUC) markFailed(ctx context.Context, paymentID, message string) {
	applied, err := uc.repo.TransitionStatus(ctx, paymentID, models.PaymentStatusFailed, payments.StatusUpdate{
		ErrorMessage: &message,
	})
	if err != nil {
		uc.logger.Error("Failed to mark payment failed",
			logger.String("payment_id", paymentID),
			logger.Err(err))
		return
	}
	if applied {
		if payment, err := uc.repo.GetPayment(ctx, paymentID); err == nil {
			uc.notify(ctx, payment)
		}
	}
}

// notify publishes a terminal status event. Publishing is fire-and-forget;
// a broker failure never fails the payment operation.
func (uc *paymentUC) notify(ctx context.Context, payment *models.Payment) {
	event := models.PaymentStatusEvent{
		PaymentID: payment.ID,
		OrderID:   payment.OrderID,
		UserID:    payment.UserID,
		Provider:  payment.Provider,
		Status:    payment.Status,
		Amount:    payment.Amount,
		Currency:  payment.Currency,
		Timestamp: time.Now(),
	}
	if err := uc.notifier.PublishPaymentStatus(ctx, event); err != nil {
		uc.logger.Error("Failed to publish payment status event",
			logger.String("payment_id", payment.ID),
			logger.Err(err))
	}
}
