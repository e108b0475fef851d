package provider

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	pkghttp "github.com/dukapay/dukapay/internal/pkg/http"
	"github.com/dukapay/dukapay/internal/pkg/logger"
	"github.com/dukapay/dukapay/internal/pkg/models"
	"github.com/dukapay/dukapay/internal/utils"
	"github.com/dukapay/dukapay/services/payments"
)

// resultCodeOutcomes is the single translation table for the gateway's
// result codes, shared by the callback and the status poll. Code "0" is the
// only success; unknown codes default to failed.
var resultCodeOutcomes = map[string]struct {
	outcome payments.Outcome
	message string
}{
	"0":    {payments.OutcomeSucceeded, ""},
	"1":    {payments.OutcomeFailed, "insufficient balance"},
	"1001": {payments.OutcomeFailed, "unable to lock subscriber, transaction already in process"},
	"1019": {payments.OutcomeFailed, "transaction expired"},
	"1032": {payments.OutcomeFailed, "request canceled by user"},
	"1037": {payments.OutcomeFailed, "timeout waiting for user input"},
	"2001": {payments.OutcomeFailed, "wrong PIN entered"},
}

// pendingQueryErrorCode is returned by the status poll while the push is
// still awaiting user input. It is not a final result.
const pendingQueryErrorCode = "500.001.1001"

const (
	tokenPath        = "/oauth/v1/generate?grant_type=client_credentials"
	stkPushPath      = "/mpesa/stkpush/v1/processrequest"
	stkQueryPath     = "/mpesa/stkpushquery/v1/query"
	reversalPath     = "/mpesa/reversal/v1/request"
	gatewayTimestamp = "20060102150405"
)

// MobileMoneyAdapter implements payments.ProviderAdapter over the STK push
// gateway. The push is asynchronous: initiation only acknowledges delivery
// of the prompt, and the result arrives on the callback URL or via polling.
type MobileMoneyAdapter struct {
	cfg    models.MobileMoneyConfig
	client *pkghttp.Client
	logger *logger.ZapLogger

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// NewMobileMoneyAdapter creates a mobile money adapter from configuration
func NewMobileMoneyAdapter(cfg models.MobileMoneyConfig, zapLogger *logger.ZapLogger) *MobileMoneyAdapter {
	return &MobileMoneyAdapter{
		cfg:    cfg,
		client: pkghttp.NewClient(cfg.BaseURL, time.Duration(cfg.TimeoutSeconds)*time.Second),
		logger: zapLogger,
	}
}

// Name returns the provider identifier
func (a *MobileMoneyAdapter) Name() models.PaymentProvider {
	return models.ProviderMobileMoney
}

type stkPushRequest struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	TransactionType   string `json:"TransactionType"`
	Amount            int64  `json:"Amount"`
	PartyA            string `json:"PartyA"`
	PartyB            string `json:"PartyB"`
	PhoneNumber       string `json:"PhoneNumber"`
	CallBackURL       string `json:"CallBackURL"`
	AccountReference  string `json:"AccountReference"`
	TransactionDesc   string `json:"TransactionDesc"`
}

type stkPushResponse struct {
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	MerchantRequestID   string `json:"MerchantRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	CustomerMessage     string `json:"CustomerMessage"`
}

// Initiate sends the STK push prompt to the customer's phone. A "0"
// response code only means the prompt was delivered; the charge result
// arrives asynchronously.
func (a *MobileMoneyAdapter) Initiate(ctx context.Context, req *payments.InitiateRequest) (*payments.InitiateResult, error) {
	timestamp := time.Now().Format(gatewayTimestamp)

	push := stkPushRequest{
		BusinessShortCode: a.cfg.ShortCode,
		Password:          a.password(timestamp),
		Timestamp:         timestamp,
		TransactionType:   "CustomerPayBillOnline",
		Amount:            utils.MinorToMajorUnits(req.Amount, req.Currency),
		PartyA:            req.PhoneNumber,
		PartyB:            a.cfg.ShortCode,
		PhoneNumber:       req.PhoneNumber,
		CallBackURL:       a.cfg.CallbackURL,
		AccountReference:  req.OrderID,
		TransactionDesc:   req.Description,
	}

	var resp stkPushResponse
	if err := a.post(ctx, stkPushPath, push, &resp); err != nil {
		return nil, err
	}
	if resp.ResponseCode != "0" {
		return nil, fmt.Errorf("push request rejected: %s", resp.ResponseDescription)
	}

	a.logger.Info("STK push delivered",
		logger.String("payment_id", req.PaymentID),
		logger.String("checkout_request_id", resp.CheckoutRequestID))

	return &payments.InitiateResult{
		ProviderTxnID: resp.CheckoutRequestID,
		Mode:          payments.ModeAsync,
		ClientInstructions: map[string]string{
			"customer_message": resp.CustomerMessage,
		},
	}, nil
}

// Confirm polls the gateway; mobile money has no explicit confirm call, so
// confirmation is a status query under the hood.
func (a *MobileMoneyAdapter) Confirm(ctx context.Context, providerTxnID string) (*payments.ConfirmResult, error) {
	result, err := a.Query(ctx, providerTxnID)
	if err != nil {
		return nil, err
	}
	return &payments.ConfirmResult{
		Outcome:          result.Outcome,
		MethodDescriptor: result.MethodDescriptor,
	}, nil
}

type stkQueryRequest struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	CheckoutRequestID string `json:"CheckoutRequestID"`
}

type stkQueryResponse struct {
	ResponseCode string `json:"ResponseCode"`
	ResultCode   string `json:"ResultCode"`
	ResultDesc   string `json:"ResultDesc"`
	ErrorCode    string `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
	RequestID    string `json:"requestId"`
}

// Query polls the push status. While the prompt is still pending the
// gateway answers with an error envelope rather than a result code; that
// case maps to processing, not failure.
func (a *MobileMoneyAdapter) Query(ctx context.Context, providerTxnID string) (*payments.QueryResult, error) {
	timestamp := time.Now().Format(gatewayTimestamp)

	query := stkQueryRequest{
		BusinessShortCode: a.cfg.ShortCode,
		Password:          a.password(timestamp),
		Timestamp:         timestamp,
		CheckoutRequestID: providerTxnID,
	}

	var resp stkQueryResponse
	if err := a.post(ctx, stkQueryPath, query, &resp); err != nil {
		return nil, err
	}

	if resp.ErrorCode == pendingQueryErrorCode {
		return &payments.QueryResult{
			Outcome: payments.OutcomeProcessing,
			Raw:     resp.ErrorCode,
		}, nil
	}
	if resp.ErrorCode != "" {
		return nil, fmt.Errorf("status query rejected: %s %s", resp.ErrorCode, resp.ErrorMessage)
	}

	outcome, _ := a.OutcomeFromResultCode(resp.ResultCode)
	return &payments.QueryResult{
		Outcome:          outcome,
		MethodDescriptor: fmt.Sprintf("mobile money %s", a.cfg.ShortCode),
		Raw:              resp.ResultCode,
	}, nil
}

type reversalRequest struct {
	Initiator              string `json:"Initiator"`
	SecurityCredential     string `json:"SecurityCredential"`
	CommandID              string `json:"CommandID"`
	TransactionID          string `json:"TransactionID"`
	Amount                 int64  `json:"Amount"`
	ReceiverParty          string `json:"ReceiverParty"`
	RecieverIdentifierType string `json:"RecieverIdentifierType"`
	ResultURL              string `json:"ResultURL"`
	QueueTimeOutURL        string `json:"QueueTimeOutURL"`
	Remarks                string `json:"Remarks"`
}

type reversalResponse struct {
	ConversationID           string `json:"ConversationID"`
	OriginatorConversationID string `json:"OriginatorConversationID"`
	ResponseCode             string `json:"ResponseCode"`
	ResponseDescription      string `json:"ResponseDescription"`
}

// Refund reverses a completed transaction back to the payer. The gateway
// has no partial-refund concept on the prompt itself; the reversal amount
// is whatever the caller bounded upstream.
func (a *MobileMoneyAdapter) Refund(ctx context.Context, req *payments.RefundRequest) (*payments.RefundResult, error) {
	reversal := reversalRequest{
		Initiator:              a.cfg.InitiatorName,
		SecurityCredential:     a.cfg.SecurityCredential,
		CommandID:              "TransactionReversal",
		TransactionID:          req.ProviderTxnID,
		Amount:                 utils.MinorToMajorUnits(req.Amount, req.Currency),
		ReceiverParty:          req.Recipient,
		RecieverIdentifierType: "1",
		ResultURL:              a.cfg.CallbackURL,
		QueueTimeOutURL:        a.cfg.CallbackURL,
		Remarks:                "refund",
	}

	var resp reversalResponse
	if err := a.post(ctx, reversalPath, reversal, &resp); err != nil {
		return nil, err
	}
	if resp.ResponseCode != "0" {
		return nil, fmt.Errorf("reversal rejected: %s", resp.ResponseDescription)
	}

	return &payments.RefundResult{
		RefundID:       resp.ConversationID,
		RefundedAmount: req.Amount,
	}, nil
}

// OutcomeFromResultCode translates a gateway result code and returns the
// failure message when there is one
func (a *MobileMoneyAdapter) OutcomeFromResultCode(code string) (payments.Outcome, string) {
	if entry, ok := resultCodeOutcomes[code]; ok {
		return entry.outcome, entry.message
	}
	return payments.OutcomeFailed, fmt.Sprintf("gateway result code %s", code)
}

// post sends an authenticated JSON request to the gateway
func (a *MobileMoneyAdapter) post(ctx context.Context, path string, body, out interface{}) error {
	token, err := a.token(ctx)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.client.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+token)

	resp, err := a.client.HTTPClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read gateway response: %w", err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse gateway response: %w", err)
	}
	return nil
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   string `json:"expires_in"`
}

// token returns a cached OAuth token, refreshing it when it is within 30
// seconds of expiry
func (a *MobileMoneyAdapter) token(ctx context.Context) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.accessToken != "" && time.Now().Before(a.tokenExpiry.Add(-30*time.Second)) {
		return a.accessToken, nil
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, a.client.BaseURL+tokenPath, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build token request: %w", err)
	}
	httpReq.SetBasicAuth(a.cfg.ConsumerKey, a.cfg.ConsumerSecret)

	resp, err := a.client.HTTPClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token request returned status %d", resp.StatusCode)
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", fmt.Errorf("failed to parse token response: %w", err)
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("token response missing access token")
	}

	ttl := 3600 * time.Second
	if secs, err := time.ParseDuration(token.ExpiresIn + "s"); err == nil && secs > 0 {
		ttl = secs
	}

	a.accessToken = token.AccessToken
	a.tokenExpiry = time.Now().Add(ttl)
	return a.accessToken, nil
}

func (a *MobileMoneyAdapter) password(timestamp string) string {
	return base64.StdEncoding.EncodeToString([]byte(a.cfg.ShortCode + a.cfg.Passkey + timestamp))
}
