package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dukapay/dukapay/internal/pkg/constants"
	"github.com/dukapay/dukapay/internal/pkg/logger"
	"github.com/dukapay/dukapay/internal/pkg/models"
	natspkg "github.com/dukapay/dukapay/internal/pkg/nats"
)

// PaymentGW publishes payment events to the message broker for downstream
// consumers, primarily the notification service
type PaymentGW struct {
	nats   *natspkg.Client
	logger *logger.ZapLogger
}

// NewPaymentGW creates a new payment gateway
func NewPaymentGW(natsClient *natspkg.Client, zapLogger *logger.ZapLogger) *PaymentGW {
	return &PaymentGW{
		nats:   natsClient,
		logger: zapLogger,
	}
}

// PublishPaymentStatus publishes a terminal payment status event
func (g *PaymentGW) PublishPaymentStatus(_ context.Context, event models.PaymentStatusEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal payment status event: %w", err)
	}

	if err := g.nats.Publish(constants.SubjectPaymentStatus, data); err != nil {
		return err
	}

	g.logger.Debug("Published payment status event",
		logger.String("payment_id", event.PaymentID),
		logger.String("status", string(event.Status)))
	return nil
}
