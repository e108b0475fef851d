package models

import (
	"time"
)

// PaymentProvider identifies one of the three supported payment integrations
type PaymentProvider string

const (
	ProviderCard        PaymentProvider = "card"
	ProviderMobileMoney PaymentProvider = "mobile_money"
	ProviderWallet      PaymentProvider = "wallet"
)

// KnownProvider reports whether p is one of the supported providers
func KnownProvider(p PaymentProvider) bool {
	switch p {
	case ProviderCard, ProviderMobileMoney, ProviderWallet:
		return true
	}
	return false
}

// PaymentStatus is the authoritative payment state machine
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusSucceeded  PaymentStatus = "succeeded"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusCanceled   PaymentStatus = "canceled"
	PaymentStatusRefunded   PaymentStatus = "refunded"
)

// allowedPriorStates enumerates the legal transitions: the target status maps
// to the set of states a record may be in for the write to apply.
var allowedPriorStates = map[PaymentStatus][]PaymentStatus{
	PaymentStatusProcessing: {PaymentStatusPending},
	PaymentStatusSucceeded:  {PaymentStatusPending, PaymentStatusProcessing},
	PaymentStatusFailed:     {PaymentStatusPending, PaymentStatusProcessing},
	PaymentStatusCanceled:   {PaymentStatusPending},
	PaymentStatusRefunded:   {PaymentStatusSucceeded},
}

// AllowedPriorStates returns the states from which target may be entered
func AllowedPriorStates(target PaymentStatus) []PaymentStatus {
	return allowedPriorStates[target]
}

// Terminal reports whether the status admits no further transitions
// except succeeded→refunded
func (s PaymentStatus) Terminal() bool {
	switch s {
	case PaymentStatusSucceeded, PaymentStatusFailed, PaymentStatusCanceled, PaymentStatusRefunded:
		return true
	}
	return false
}

// RiskAction is the classification produced by the risk gate
type RiskAction string

const (
	RiskActionAllow     RiskAction = "allow"
	RiskActionChallenge RiskAction = "challenge"
	RiskActionBlock     RiskAction = "block"
)

// RiskAssessment is the snapshot embedded into a payment record at initiation
type RiskAssessment struct {
	Enabled   bool       `json:"enabled"`
	Score     int        `json:"score"`
	Action    RiskAction `json:"action"`
	Reasons   []string   `json:"reasons"`
	SessionID string     `json:"session_id,omitempty"`
	RequestID string     `json:"request_id,omitempty"`
	CheckedAt time.Time  `json:"checked_at"`
}

// Metadata is a bounded string-to-string map attached to a payment record.
// Arbitrary nested structures are deliberately not representable.
type Metadata map[string]string

// Payment is the authoritative record for one transaction attempt.
// Status is only ever changed through the guarded transition write in the
// repository; records are never hard-deleted.
type Payment struct {
	ID               string          `json:"id" db:"id"`
	OrderID          string          `json:"order_id" db:"order_id"`
	UserID           string          `json:"user_id" db:"user_id"`
	Provider         PaymentProvider `json:"provider" db:"provider"`
	ProviderTxnID    *string         `json:"provider_txn_id,omitempty" db:"provider_txn_id"`
	Amount           int64           `json:"amount" db:"amount"`
	Currency         string          `json:"currency" db:"currency"`
	Status           PaymentStatus   `json:"status" db:"status"`
	MethodDescriptor *string         `json:"method_descriptor,omitempty" db:"method_descriptor"`
	RefundID         *string         `json:"refund_id,omitempty" db:"refund_id"`
	RefundedAmount   int64           `json:"refunded_amount" db:"refunded_amount"`
	Risk             *RiskAssessment `json:"risk,omitempty" db:"risk_snapshot"`
	Metadata         Metadata        `json:"metadata,omitempty" db:"metadata"`
	ErrorMessage     *string         `json:"error_message,omitempty" db:"error_message"`
	CreatedAt        time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at" db:"updated_at"`
}

// RefundableBalance returns the amount still eligible for refund
func (p *Payment) RefundableBalance() int64 {
	return p.Amount - p.RefundedAmount
}

// RiskTransaction is the projection of a payment handed to the risk gate
type RiskTransaction struct {
	OrderID  string          `json:"order_id"`
	UserID   string          `json:"user_id"`
	Amount   int64           `json:"amount"`
	Currency string          `json:"currency"`
	Provider PaymentProvider `json:"provider"`
}

// InitiatePaymentRequest is the inbound payload for creating a payment attempt
type InitiatePaymentRequest struct {
	OrderID     string          `json:"order_id"`
	UserID      string          `json:"user_id"`
	Amount      int64           `json:"amount"`
	Currency    string          `json:"currency"`
	Provider    PaymentProvider `json:"provider"`
	PhoneNumber string          `json:"phone_number,omitempty"`
	Description string          `json:"description,omitempty"`
}

// RiskSummary is the caller-facing slice of an assessment
type RiskSummary struct {
	Action RiskAction `json:"action"`
	Score  int        `json:"score"`
}

// InitiatePaymentResponse is returned to the caller after initiation
type InitiatePaymentResponse struct {
	PaymentID          string            `json:"payment_id"`
	ProviderTxnID      string            `json:"provider_txn_id,omitempty"`
	Status             PaymentStatus     `json:"status"`
	ClientInstructions map[string]string `json:"client_instructions,omitempty"`
	Risk               *RiskSummary      `json:"risk,omitempty"`
}

// PaymentStatusEvent is published on terminal status for the notification service
type PaymentStatusEvent struct {
	PaymentID string          `json:"payment_id"`
	OrderID   string          `json:"order_id"`
	UserID    string          `json:"user_id"`
	Provider  PaymentProvider `json:"provider"`
	Status    PaymentStatus   `json:"status"`
	Amount    int64           `json:"amount"`
	Currency  string          `json:"currency"`
	Timestamp time.Time       `json:"timestamp"`
}
