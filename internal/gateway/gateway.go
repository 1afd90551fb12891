package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/bountylab/bountyhub/internal/config"
	"github.com/bountylab/bountyhub/pkg/clients"
)

const callTimeout = time.Second * 10

// PaymentStatusPaid is the only terminal session status that credits a wallet.
const PaymentStatusPaid = "paid"

const (
	TransferStatusPaid   = "paid"
	TransferStatusFailed = "failed"
)

var (
	ErrUnavailable = errors.New("payment gateway unavailable")
	ErrTimeout     = errors.New("payment gateway timeout")
	ErrNotFound    = errors.New("payment gateway object not found")
)

type CheckoutSession struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}

type Session struct {
	ID            string            `json:"id"`
	PaymentStatus string            `json:"payment_status"`
	AmountTotal   int64             `json:"amount_total"`
	Currency      string            `json:"currency"`
	Metadata      map[string]string `json:"metadata"`
}

type Account struct {
	ID             string `json:"id"`
	PayoutsEnabled bool   `json:"payouts_enabled"`
}

type Transfer struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type Client struct {
	url    string
	apiKey string
	client clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		url:    cfg.GatewayAddress,
		apiKey: cfg.GatewayAPIKey,
		client: client,
	}
}

func (c *Client) headers() http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		h.Set("Authorization", "Bearer "+c.apiKey)
	}
	return h
}

// MinorUnits converts a decimal amount to the gateway's integer minor units.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).IntPart()
}

func (c *Client) post(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	statusCode, respBody, err := c.client.Post(ctx, c.url+path, c.headers(), body)
	if err != nil {
		return classify(err)
	}
	if statusCode >= http.StatusInternalServerError {
		zap.L().Error("gateway call failed", zap.String("path", path), zap.Int("status", statusCode))
		return ErrUnavailable
	}
	if statusCode != http.StatusOK && statusCode != http.StatusCreated {
		return fmt.Errorf("gateway rejected %s: status %d", path, statusCode)
	}
	if out != nil {
		return json.Unmarshal(respBody, out)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	statusCode, respBody, err := c.client.Get(ctx, c.url+path, c.headers())
	if err != nil {
		return classify(err)
	}
	if statusCode >= http.StatusInternalServerError {
		zap.L().Error("gateway call failed", zap.String("path", path), zap.Int("status", statusCode))
		return ErrUnavailable
	}
	if statusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if statusCode != http.StatusOK {
		return fmt.Errorf("gateway rejected %s: status %d", path, statusCode)
	}
	return json.Unmarshal(respBody, out)
}

func classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrTimeout
	}
	return errors.Join(ErrUnavailable, err)
}

func (c *Client) CreateCheckoutSession(ctx context.Context, amount decimal.Decimal, currency string, metadata map[string]string) (*CheckoutSession, error) {
	payload := map[string]any{
		"amount":   MinorUnits(amount),
		"currency": currency,
		"metadata": metadata,
	}
	var session CheckoutSession
	if err := c.post(ctx, "/v1/checkout/sessions", payload, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *Client) RetrieveSession(ctx context.Context, sessionID string) (*Session, error) {
	var session Session
	if err := c.get(ctx, "/v1/checkout/sessions/"+sessionID, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *Client) CreateConnectedAccount(ctx context.Context, email string) (string, error) {
	var account Account
	if err := c.post(ctx, "/v1/accounts", map[string]any{"email": email}, &account); err != nil {
		return "", err
	}
	return account.ID, nil
}

func (c *Client) CreateOnboardingLink(ctx context.Context, accountID string) (string, error) {
	var link struct {
		URL string `json:"url"`
	}
	if err := c.post(ctx, "/v1/account_links", map[string]any{"account": accountID}, &link); err != nil {
		return "", err
	}
	return link.URL, nil
}

func (c *Client) RetrieveAccount(ctx context.Context, accountID string) (*Account, error) {
	var account Account
	if err := c.get(ctx, "/v1/accounts/"+accountID, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// Transfer initiates a payout to a connected account. The idempotency key
// guards against double transfers when a timed-out call is retried by the
// reconciler.
func (c *Client) Transfer(ctx context.Context, destinationAccountID string, amount decimal.Decimal, idempotencyKey, description string) (string, error) {
	payload := map[string]any{
		"destination":     destinationAccountID,
		"amount":          MinorUnits(amount),
		"description":     description,
		"idempotency_key": idempotencyKey,
	}
	var transfer Transfer
	if err := c.post(ctx, "/v1/transfers", payload, &transfer); err != nil {
		return "", err
	}
	return transfer.ID, nil
}

func (c *Client) RetrieveTransfer(ctx context.Context, transferID string) (*Transfer, error) {
	var transfer Transfer
	if err := c.get(ctx, "/v1/transfers/"+transferID, &transfer); err != nil {
		return nil, err
	}
	return &transfer, nil
}

// LookupTransferByKey resolves an unknown-outcome transfer by its idempotency
// key when the initiating call never returned an id. A key the gateway has
// never seen resolves to nil, whether it answers an empty object or 404.
func (c *Client) LookupTransferByKey(ctx context.Context, idempotencyKey string) (*Transfer, error) {
	var transfer Transfer
	err := c.get(ctx, "/v1/transfers/lookup/"+idempotencyKey, &transfer)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if transfer.ID == "" {
		return nil, nil
	}
	return &transfer, nil
}
