package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dukapay/dukapay/internal/pkg/models"
)

var (
	ErrPaymentNotFound       = errors.New("payment not found")
	ErrOrderPaymentActive    = errors.New("order already has a payment in progress")
	ErrInvalidTransition     = errors.New("illegal payment status transition")
	ErrSignatureVerification = errors.New("webhook signature verification failed")
)

// ValidationError rejects bad input before any network call is made
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError creates a validation error for a field
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is a validation error
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// RiskBlockedError is terminal: the record is failed and no provider call
// was made
type RiskBlockedError struct {
	Reasons []string
}

func (e *RiskBlockedError) Error() string {
	return fmt.Sprintf("payment blocked by risk assessment: %s", strings.Join(e.Reasons, ", "))
}

// IsRiskBlocked reports whether err is a risk block
func IsRiskBlocked(err error) bool {
	var rb *RiskBlockedError
	return errors.As(err, &rb)
}

// ProviderStage identifies which provider operation failed
type ProviderStage string

const (
	StageInitiate ProviderStage = "initiate"
	StageConfirm  ProviderStage = "confirm"
	StageQuery    ProviderStage = "query"
	StageRefund   ProviderStage = "refund"
)

// ProviderError wraps a failure from a provider call. Initiation and
// confirmation failures mark the record failed; refund failures leave it
// succeeded.
type ProviderError struct {
	Provider models.PaymentProvider
	Stage    ProviderStage
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s %s failed: %v", e.Provider, e.Stage, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError wraps a provider call failure
func NewProviderError(provider models.PaymentProvider, stage ProviderStage, err error) *ProviderError {
	return &ProviderError{Provider: provider, Stage: stage, Err: err}
}

// IsProvider reports whether err is a provider error, optionally at a stage
func IsProvider(err error, stage ProviderStage) bool {
	var pe *ProviderError
	if !errors.As(err, &pe) {
		return false
	}
	return stage == "" || pe.Stage == stage
}
