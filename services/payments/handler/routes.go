package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/dukapay/dukapay/internal/pkg/middleware"
)

// RegisterRoutes wires the payment and callback endpoints. Refund and cancel
// are operator actions and sit behind the API key check; callbacks carry
// their own authentication (signature or gateway result envelope).
func (h *PaymentHandler) RegisterRoutes(e *echo.Echo) {
	operatorKey := middleware.ValidateAPIKey(h.cfg.Payments.OperatorAPIKey)

	paymentGroup := e.Group("/payments")
	paymentGroup.POST("", h.InitiatePayment)
	paymentGroup.GET("/:id/status", h.GetPayment)
	paymentGroup.POST("/:id/confirm", h.ConfirmPayment)
	paymentGroup.POST("/:id/refund", h.RefundPayment, operatorKey)
	paymentGroup.POST("/:id/cancel", h.CancelPayment, operatorKey)
	paymentGroup.GET("/order/:orderId", h.GetOrderPayment)

	paymentGroup.POST("/webhook", h.CardWebhook)
	paymentGroup.POST("/mobile-money/callback", h.MobileMoneyCallback)
}
