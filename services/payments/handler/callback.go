package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dukapay/dukapay/internal/pkg/logger"
	"github.com/dukapay/dukapay/internal/utils"
	payerrors "github.com/dukapay/dukapay/services/payments/errors"
)

// maxWebhookBody bounds the raw body read for signature verification
const maxWebhookBody = 64 << 10

// CardWebhook handles POST /callbacks/card. The signature is verified
// against the raw body before anything else; once verified, the event is
// acknowledged regardless of processing outcome so the processor does not
// retry events we have already seen.
func (h *PaymentHandler) CardWebhook(c echo.Context) error {
	c.Request().Body = http.MaxBytesReader(c.Response(), c.Request().Body, maxWebhookBody)

	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return utils.BadRequestResponse(c, "failed to read webhook body")
	}

	event, err := h.verifier.VerifyWebhook(payload, c.Request().Header.Get("Stripe-Signature"))
	if err != nil {
		h.logger.Warn("Rejected card webhook", logger.Err(err))
		return utils.BadRequestResponse(c, "signature verification failed")
	}

	if !event.Relevant {
		return c.JSON(http.StatusOK, map[string]bool{"received": true})
	}

	_, err = h.paymentUC.ApplyProviderOutcome(
		c.Request().Context(),
		event.ProviderTxnID,
		event.Outcome,
		event.MethodDescriptor,
		event.ErrorMessage,
	)
	if err != nil && !errors.Is(err, payerrors.ErrPaymentNotFound) {
		h.logger.Error("Failed to apply card webhook outcome",
			logger.String("provider_txn_id", event.ProviderTxnID),
			logger.Err(err))
	}

	return c.JSON(http.StatusOK, map[string]bool{"received": true})
}

// mmCallback is the gateway's push result payload
type mmCallback struct {
	Body struct {
		StkCallback struct {
			MerchantRequestID string      `json:"MerchantRequestID"`
			CheckoutRequestID string      `json:"CheckoutRequestID"`
			ResultCode        json.Number `json:"ResultCode"`
			ResultDesc        string      `json:"ResultDesc"`
			CallbackMetadata  struct {
				Item []struct {
					Name  string      `json:"Name"`
					Value interface{} `json:"Value"`
				} `json:"Item"`
			} `json:"CallbackMetadata"`
		} `json:"stkCallback"`
	} `json:"Body"`
}

// mmAck is the acknowledgement the gateway expects. Anything other than a
// zero ResultCode makes the gateway retry, so the callback always acks.
type mmAck struct {
	ResultCode int    `json:"ResultCode"`
	ResultDesc string `json:"ResultDesc"`
}

// MobileMoneyCallback handles POST /callbacks/mobile-money. The gateway is
// always acked with ResultCode 0; processing failures are logged and left
// for the staleness poll to reconcile.
func (h *PaymentHandler) MobileMoneyCallback(c echo.Context) error {
	ack := mmAck{ResultCode: 0, ResultDesc: "Accepted"}

	callback := &mmCallback{}
	if err := c.Bind(callback); err != nil {
		h.logger.Warn("Unparseable mobile money callback", logger.Err(err))
		return c.JSON(http.StatusOK, ack)
	}

	stk := callback.Body.StkCallback
	if stk.CheckoutRequestID == "" {
		h.logger.Warn("Mobile money callback missing checkout request id")
		return c.JSON(http.StatusOK, ack)
	}

	outcome, message := h.codes.OutcomeFromResultCode(stk.ResultCode.String())
	if message == "" && stk.ResultDesc != "" && stk.ResultCode.String() != "0" {
		message = stk.ResultDesc
	}

	descriptor := ""
	for _, item := range stk.CallbackMetadata.Item {
		if item.Name == "MpesaReceiptNumber" {
			descriptor = fmt.Sprintf("mobile money receipt %v", item.Value)
		}
	}

	_, err := h.paymentUC.ApplyProviderOutcome(
		c.Request().Context(),
		stk.CheckoutRequestID,
		outcome,
		descriptor,
		message,
	)
	if err != nil && !errors.Is(err, payerrors.ErrPaymentNotFound) {
		h.logger.Error("Failed to apply mobile money callback outcome",
			logger.String("checkout_request_id", stk.CheckoutRequestID),
			logger.Err(err))
	}

	return c.JSON(http.StatusOK, ack)
}
