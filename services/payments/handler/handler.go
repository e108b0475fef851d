package handler

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/dukapay/dukapay/internal/pkg/logger"
	"github.com/dukapay/dukapay/internal/pkg/models"
	"github.com/dukapay/dukapay/internal/utils"
	"github.com/dukapay/dukapay/services/payments"
	payerrors "github.com/dukapay/dukapay/services/payments/errors"
)

// PaymentHandler exposes the payment orchestrator and the provider callback
// ingress over HTTP
type PaymentHandler struct {
	paymentUC payments.PaymentUC
	verifier  payments.WebhookVerifier
	codes     payments.ResultCodeMapper
	cfg       *models.Config
	logger    *logger.ZapLogger
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(
	paymentUC payments.PaymentUC,
	verifier payments.WebhookVerifier,
	codes payments.ResultCodeMapper,
	cfg *models.Config,
	zapLogger *logger.ZapLogger,
) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: paymentUC,
		verifier:  verifier,
		codes:     codes,
		cfg:       cfg,
		logger:    zapLogger,
	}
}

// respondError maps domain errors onto HTTP status codes
func (h *PaymentHandler) respondError(c echo.Context, err error) error {
	switch {
	case payerrors.IsValidation(err):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, payerrors.ErrPaymentNotFound):
		return utils.NotFoundResponse(c, "payment not found")
	case errors.Is(err, payerrors.ErrOrderPaymentActive):
		return utils.ConflictResponse(c, err.Error())
	case errors.Is(err, payerrors.ErrInvalidTransition):
		return utils.ConflictResponse(c, err.Error())
	case payerrors.IsRiskBlocked(err):
		return utils.UnprocessableEntityResponse(c, err.Error())
	case payerrors.IsProvider(err, ""):
		h.logger.Error("Provider call failed", logger.Err(err))
		return utils.BadGatewayResponse(c, err.Error())
	default:
		h.logger.Error("Unhandled payment error", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "")
	}
}
