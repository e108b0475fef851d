package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	pkghttp "github.com/dukapay/dukapay/internal/pkg/http"
	"github.com/dukapay/dukapay/internal/pkg/logger"
	"github.com/dukapay/dukapay/internal/pkg/models"
	"github.com/dukapay/dukapay/internal/utils"
	"github.com/dukapay/dukapay/services/payments"
)

// walletOutcomes translates the wallet provider's order statuses. An order
// stays CREATED or PAYER_ACTION_REQUIRED until the customer approves it at
// the redirect URL; capture is a separate explicit step.
var walletOutcomes = map[string]payments.Outcome{
	"CREATED":               payments.OutcomePending,
	"SAVED":                 payments.OutcomePending,
	"PAYER_ACTION_REQUIRED": payments.OutcomePending,
	"APPROVED":              payments.OutcomeProcessing,
	"COMPLETED":             payments.OutcomeSucceeded,
	"VOIDED":                payments.OutcomeCanceled,
	"CANCELLED":             payments.OutcomeCanceled,
	"DECLINED":              payments.OutcomeFailed,
}

// WalletAdapter implements payments.ProviderAdapter over the redirect
// wallet provider. The flow is create order, send the customer to the
// approval link, then capture after approval.
type WalletAdapter struct {
	cfg    models.WalletConfig
	client *pkghttp.Client
	logger *logger.ZapLogger

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// NewWalletAdapter creates a wallet adapter from configuration
func NewWalletAdapter(cfg models.WalletConfig, zapLogger *logger.ZapLogger) *WalletAdapter {
	return &WalletAdapter{
		cfg:    cfg,
		client: pkghttp.NewClient(cfg.BaseURL, time.Duration(cfg.TimeoutSeconds)*time.Second),
		logger: zapLogger,
	}
}

// Name returns the provider identifier
func (a *WalletAdapter) Name() models.PaymentProvider {
	return models.ProviderWallet
}

type walletAmount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

type walletPurchaseUnit struct {
	ReferenceID string       `json:"reference_id,omitempty"`
	Description string       `json:"description,omitempty"`
	Amount      walletAmount `json:"amount"`
	Payments    *struct {
		Captures []struct {
			ID     string       `json:"id"`
			Status string       `json:"status"`
			Amount walletAmount `json:"amount"`
		} `json:"captures"`
	} `json:"payments,omitempty"`
}

type walletLink struct {
	Href string `json:"href"`
	Rel  string `json:"rel"`
}

type walletOrder struct {
	ID            string               `json:"id"`
	Status        string               `json:"status"`
	PurchaseUnits []walletPurchaseUnit `json:"purchase_units"`
	Links         []walletLink         `json:"links"`
}

// Initiate creates a wallet order and hands back the approval URL. The
// record stays pending until the capture call confirms the charge.
func (a *WalletAdapter) Initiate(ctx context.Context, req *payments.InitiateRequest) (*payments.InitiateResult, error) {
	order := map[string]interface{}{
		"intent": "CAPTURE",
		"purchase_units": []map[string]interface{}{
			{
				"reference_id": req.OrderID,
				"description":  req.Description,
				"amount": walletAmount{
					CurrencyCode: strings.ToUpper(req.Currency),
					Value:        utils.MinorToDecimal(req.Amount, req.Currency),
				},
			},
		},
		"payment_source": map[string]interface{}{
			"paypal": map[string]interface{}{
				"experience_context": map[string]interface{}{
					"return_url": a.cfg.ReturnURL,
					"cancel_url": a.cfg.CancelURL,
				},
			},
		},
	}

	var created walletOrder
	if err := a.call(ctx, http.MethodPost, "/v2/checkout/orders", order, &created); err != nil {
		return nil, err
	}

	a.logger.Info("Created wallet order",
		logger.String("payment_id", req.PaymentID),
		logger.String("wallet_order_id", created.ID))

	instructions := map[string]string{}
	if link := approvalLink(created.Links); link != "" {
		instructions["approval_url"] = link
	}

	return &payments.InitiateResult{
		ProviderTxnID:      created.ID,
		Mode:               payments.ModeSync,
		ClientInstructions: instructions,
	}, nil
}

// Confirm captures an approved order. A capture on an unapproved order is
// rejected by the provider and surfaces as a failed outcome with the
// rejection recorded.
func (a *WalletAdapter) Confirm(ctx context.Context, providerTxnID string) (*payments.ConfirmResult, error) {
	path := fmt.Sprintf("/v2/checkout/orders/%s/capture", providerTxnID)

	var captured walletOrder
	if err := a.call(ctx, http.MethodPost, path, struct{}{}, &captured); err != nil {
		return nil, err
	}

	result := &payments.ConfirmResult{
		Outcome:          OutcomeFromOrderStatus(captured.Status),
		MethodDescriptor: "wallet",
		CaptureID:        captureID(&captured),
	}
	if result.Outcome != payments.OutcomeSucceeded {
		result.Outcome = payments.OutcomeFailed
		result.ErrorMessage = fmt.Sprintf("capture returned order status %s", captured.Status)
	}
	return result, nil
}

// Query fetches the order for reconciliation of stale pending records
func (a *WalletAdapter) Query(ctx context.Context, providerTxnID string) (*payments.QueryResult, error) {
	path := fmt.Sprintf("/v2/checkout/orders/%s", providerTxnID)

	var order walletOrder
	if err := a.call(ctx, http.MethodGet, path, nil, &order); err != nil {
		return nil, err
	}

	return &payments.QueryResult{
		Outcome:          OutcomeFromOrderStatus(order.Status),
		MethodDescriptor: "wallet",
		Raw:              order.Status,
	}, nil
}

type walletRefundResponse struct {
	ID     string       `json:"id"`
	Status string       `json:"status"`
	Amount walletAmount `json:"amount"`
}

// Refund refunds a completed capture. The capture id was recorded at
// confirmation time; the order id alone cannot be refunded.
func (a *WalletAdapter) Refund(ctx context.Context, req *payments.RefundRequest) (*payments.RefundResult, error) {
	if req.CaptureID == "" {
		return nil, fmt.Errorf("wallet refund requires a capture id")
	}

	path := fmt.Sprintf("/v2/payments/captures/%s/refund", req.CaptureID)
	body := map[string]interface{}{
		"amount": walletAmount{
			CurrencyCode: strings.ToUpper(req.Currency),
			Value:        utils.MinorToDecimal(req.Amount, req.Currency),
		},
	}

	var refund walletRefundResponse
	if err := a.call(ctx, http.MethodPost, path, body, &refund); err != nil {
		return nil, err
	}
	if refund.Status != "COMPLETED" && refund.Status != "PENDING" {
		return nil, fmt.Errorf("refund returned status %s", refund.Status)
	}

	return &payments.RefundResult{
		RefundID:       refund.ID,
		RefundedAmount: req.Amount,
	}, nil
}

// OutcomeFromOrderStatus maps a wallet order status to the universal
// outcome set
func OutcomeFromOrderStatus(status string) payments.Outcome {
	if outcome, ok := walletOutcomes[status]; ok {
		return outcome
	}
	return payments.OutcomeFailed
}

// call sends an authenticated JSON request to the wallet API
func (a *WalletAdapter) call(ctx context.Context, method, path string, body, out interface{}) error {
	token, err := a.token(ctx)
	if err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, a.client.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+token)

	resp, err := a.client.HTTPClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("wallet request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read wallet response: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("wallet API returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse wallet response: %w", err)
	}
	return nil
}

type walletTokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// token returns a cached OAuth token, refreshing it when it is within 30
// seconds of expiry
func (a *WalletAdapter) token(ctx context.Context) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.accessToken != "" && time.Now().Before(a.tokenExpiry.Add(-30*time.Second)) {
		return a.accessToken, nil
	}

	form := strings.NewReader("grant_type=client_credentials")
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.client.BaseURL+"/v1/oauth2/token", form)
	if err != nil {
		return "", fmt.Errorf("failed to build token request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.SetBasicAuth(a.cfg.ClientID, a.cfg.ClientSecret)

	resp, err := a.client.HTTPClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token request returned status %d", resp.StatusCode)
	}

	var token walletTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", fmt.Errorf("failed to parse token response: %w", err)
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("token response missing access token")
	}

	ttl := time.Duration(token.ExpiresIn) * time.Second
	if ttl <= 0 {
		ttl = time.Hour
	}

	a.accessToken = token.AccessToken
	a.tokenExpiry = time.Now().Add(ttl)
	return a.accessToken, nil
}

func approvalLink(links []walletLink) string {
	for _, link := range links {
		if link.Rel == "approve" || link.Rel == "payer-action" {
			return link.Href
		}
	}
	return ""
}

func captureID(order *walletOrder) string {
	for _, unit := range order.PurchaseUnits {
		if unit.Payments == nil {
			continue
		}
		for _, capture := range unit.Payments.Captures {
			return capture.ID
		}
	}
	return ""
}
