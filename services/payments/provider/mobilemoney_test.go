package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukapay/dukapay/internal/pkg/logger"
	"github.com/dukapay/dukapay/internal/pkg/models"
	"github.com/dukapay/dukapay/services/payments"
)

func testLogger(t *testing.T) *logger.ZapLogger {
	zapLogger, err := logger.NewZapLogger(logger.Config{Level: "debug"})
	require.NoError(t, err)
	return zapLogger
}

func mmTestAdapter(t *testing.T, handler http.HandlerFunc) (*MobileMoneyAdapter, *httptest.Server) {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := models.MobileMoneyConfig{
		BaseURL:        server.URL,
		ConsumerKey:    "key",
		ConsumerSecret: "secret",
		ShortCode:      "174379",
		Passkey:        "passkey",
		CallbackURL:    "https://example.com/callbacks/mobile-money",
		TimeoutSeconds: 5,
	}
	return NewMobileMoneyAdapter(cfg, testLogger(t)), server
}

func writeJSON(t *testing.T, w http.ResponseWriter, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestMobileMoneyTokenCaching(t *testing.T) {
	var tokenCalls int32

	adapter, _ := mmTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/oauth/v1/generate") {
			atomic.AddInt32(&tokenCalls, 1)
			user, pass, ok := r.BasicAuth()
			require.True(t, ok)
			assert.Equal(t, "key", user)
			assert.Equal(t, "secret", pass)
			writeJSON(t, w, map[string]string{"access_token": "tok-1", "expires_in": "3599"})
			return
		}
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		writeJSON(t, w, stkQueryResponse{ResultCode: "0"})
	})

	for i := 0; i < 3; i++ {
		_, err := adapter.Query(context.Background(), "ws_CO_1")
		require.NoError(t, err)
	}

	assert.Equal(t, int32(1), atomic.LoadInt32(&tokenCalls))
}

func TestMobileMoneyInitiate(t *testing.T) {
	adapter, _ := mmTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/oauth/v1/generate") {
			writeJSON(t, w, map[string]string{"access_token": "tok-1", "expires_in": "3599"})
			return
		}

		assert.Equal(t, stkPushPath, r.URL.Path)

		var push stkPushRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&push))
		assert.Equal(t, "254712345678", push.PhoneNumber)
		assert.Equal(t, "174379", push.BusinessShortCode)
		assert.Equal(t, int64(100), push.Amount)
		assert.Equal(t, "order-1", push.AccountReference)
		assert.NotEmpty(t, push.Password)

		writeJSON(t, w, stkPushResponse{
			CheckoutRequestID: "ws_CO_191220191020363925",
			ResponseCode:      "0",
			CustomerMessage:   "Success. Request accepted for processing",
		})
	})

	result, err := adapter.Initiate(context.Background(), &payments.InitiateRequest{
		PaymentID:   "pay-1",
		OrderID:     "order-1",
		Amount:      10000,
		Currency:    "kes",
		PhoneNumber: "254712345678",
		Description: "order-1",
	})

	require.NoError(t, err)
	assert.Equal(t, "ws_CO_191220191020363925", result.ProviderTxnID)
	assert.Equal(t, payments.ModeAsync, result.Mode)
	assert.Equal(t, "Success. Request accepted for processing", result.ClientInstructions["customer_message"])
}

func TestMobileMoneyInitiateRejected(t *testing.T) {
	adapter, _ := mmTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/oauth/v1/generate") {
			writeJSON(t, w, map[string]string{"access_token": "tok-1", "expires_in": "3599"})
			return
		}
		writeJSON(t, w, stkPushResponse{ResponseCode: "1", ResponseDescription: "invalid shortcode"})
	})

	_, err := adapter.Initiate(context.Background(), &payments.InitiateRequest{
		PaymentID:   "pay-1",
		OrderID:     "order-1",
		Amount:      10000,
		Currency:    "kes",
		PhoneNumber: "254712345678",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid shortcode")
}

func TestMobileMoneyQueryStillProcessing(t *testing.T) {
	adapter, _ := mmTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/oauth/v1/generate") {
			writeJSON(t, w, map[string]string{"access_token": "tok-1", "expires_in": "3599"})
			return
		}
		writeJSON(t, w, stkQueryResponse{
			ErrorCode:    pendingQueryErrorCode,
			ErrorMessage: "The transaction is being processed",
		})
	})

	result, err := adapter.Query(context.Background(), "ws_CO_1")

	require.NoError(t, err)
	assert.Equal(t, payments.OutcomeProcessing, result.Outcome)
}

func TestOutcomeFromResultCode(t *testing.T) {
	adapter := &MobileMoneyAdapter{}

	tests := []struct {
		name          string
		code          string
		expected      payments.Outcome
		expectMessage bool
	}{
		{name: "zero is the only success", code: "0", expected: payments.OutcomeSucceeded},
		{name: "insufficient balance fails", code: "1", expected: payments.OutcomeFailed, expectMessage: true},
		{name: "user cancel fails", code: "1032", expected: payments.OutcomeFailed, expectMessage: true},
		{name: "prompt timeout fails", code: "1037", expected: payments.OutcomeFailed, expectMessage: true},
		{name: "wrong PIN fails", code: "2001", expected: payments.OutcomeFailed, expectMessage: true},
		{name: "unknown code fails", code: "9999", expected: payments.OutcomeFailed, expectMessage: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, message := adapter.OutcomeFromResultCode(tt.code)
			assert.Equal(t, tt.expected, outcome)
			if tt.expectMessage {
				assert.NotEmpty(t, message)
			} else {
				assert.Empty(t, message)
			}
		})
	}
}

func TestMobileMoneyRefund(t *testing.T) {
	adapter, _ := mmTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/oauth/v1/generate") {
			writeJSON(t, w, map[string]string{"access_token": "tok-1", "expires_in": "3599"})
			return
		}

		assert.Equal(t, reversalPath, r.URL.Path)

		var reversal reversalRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reversal))
		assert.Equal(t, "TransactionReversal", reversal.CommandID)
		assert.Equal(t, "254712345678", reversal.ReceiverParty)
		assert.Equal(t, int64(50), reversal.Amount)

		writeJSON(t, w, reversalResponse{
			ConversationID: "AG_20200101_000041",
			ResponseCode:   "0",
		})
	})

	result, err := adapter.Refund(context.Background(), &payments.RefundRequest{
		ProviderTxnID: "ws_CO_1",
		Recipient:     "254712345678",
		Amount:        5000,
		Currency:      "kes",
	})

	require.NoError(t, err)
	assert.Equal(t, "AG_20200101_000041", result.RefundID)
	assert.Equal(t, int64(5000), result.RefundedAmount)
}
