package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dukapay/dukapay/internal/pkg/models"
	"github.com/dukapay/dukapay/internal/pkg/requestcontext"
	"github.com/dukapay/dukapay/internal/utils"
)

// InitiatePayment handles POST /payments
func (h *PaymentHandler) InitiatePayment(c echo.Context) error {
	req := &models.InitiatePaymentRequest{}
	if err := c.Bind(req); err != nil {
		return utils.BadRequestResponse(c, "invalid request payload")
	}

	reqCtx := requestcontext.FromEchoContext(c)
	reqCtx.UserID = req.UserID

	resp, err := h.paymentUC.InitiatePayment(c.Request().Context(), req, reqCtx)
	if err != nil {
		return h.respondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Payment initiated", resp)
}

// ConfirmPayment handles POST /payments/:id/confirm
func (h *PaymentHandler) ConfirmPayment(c echo.Context) error {
	payment, err := h.paymentUC.ConfirmPayment(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.respondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment confirmed", payment)
}

type refundRequest struct {
	Amount int64 `json:"amount"`
}

// RefundPayment handles POST /payments/:id/refund. A zero or omitted amount
// refunds the full remaining balance.
func (h *PaymentHandler) RefundPayment(c echo.Context) error {
	req := &refundRequest{}
	if err := c.Bind(req); err != nil {
		return utils.BadRequestResponse(c, "invalid request payload")
	}

	payment, err := h.paymentUC.RefundPayment(c.Request().Context(), c.Param("id"), req.Amount)
	if err != nil {
		return h.respondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment refunded", payment)
}

// CancelPayment handles POST /payments/:id/cancel
func (h *PaymentHandler) CancelPayment(c echo.Context) error {
	payment, err := h.paymentUC.CancelPayment(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.respondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment canceled", payment)
}

// GetPayment handles GET /payments/:id
func (h *PaymentHandler) GetPayment(c echo.Context) error {
	payment, err := h.paymentUC.GetStatus(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.respondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment retrieved", payment)
}

// GetOrderPayment handles GET /orders/:orderId/payment, returning the most
// recent payment attempt for the order
func (h *PaymentHandler) GetOrderPayment(c echo.Context) error {
	payment, err := h.paymentUC.GetStatusByOrderID(c.Request().Context(), c.Param("orderId"))
	if err != nil {
		return h.respondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment retrieved", payment)
}
