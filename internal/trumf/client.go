package trumf

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultBaseURL is the production Trumf platform endpoint.
const DefaultBaseURL = "https://platform-rest-prod.ngdata.no/trumf"

// APIError is a structured Trumf API failure.
type APIError struct {
	StatusCode int
	Message    string
	Retryable  bool
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("trumf api: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("trumf api: %s", e.Message)
}

// Client calls the Trumf membership API with the member's bearer token.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	retry      RetryConfig
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the platform endpoint. Used in tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithRetryConfig overrides the retry policy.
func WithRetryConfig(cfg RetryConfig) Option {
	return func(c *Client) { c.retry = cfg }
}

// NewClient creates a Trumf client for one member token.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		retry: DefaultRetryConfig,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &APIError{Message: err.Error(), Retryable: true}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Message: err.Error(), Retryable: true}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
			Retryable:  resp.StatusCode >= 500,
		}
	}
	return body, nil
}

// GetTransactions fetches the member's transaction history.
func (c *Client) GetTransactions(ctx context.Context, limit int) ([]Transaction, error) {
	url := fmt.Sprintf("%s/medlemskap/transaksjoner?limit=%d", c.baseURL, limit)

	body, err := withRetry(ctx, c.retry, func(ctx context.Context) ([]byte, error) {
		return c.get(ctx, url)
	})
	if err != nil {
		return nil, err
	}

	// The endpoint has returned both a wrapped and a bare list over time.
	var wrapped struct {
		Transactions []Transaction `json:"transactions"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.Transactions != nil {
		return wrapped.Transactions, nil
	}
	var bare []Transaction
	if err := json.Unmarshal(body, &bare); err != nil {
		return nil, fmt.Errorf("decode transactions: %w", err)
	}
	return bare, nil
}

// GetReceipt fetches the digital receipt for one transaction batch and
// processes its item lines.
func (c *Client) GetReceipt(ctx context.Context, batchID string) (*ReceiptDetail, error) {
	url := fmt.Sprintf("%s/medlemskap/transaksjoner/digitalkvittering/%s", c.baseURL, batchID)

	body, err := withRetry(ctx, c.retry, func(ctx context.Context) ([]byte, error) {
		return c.get(ctx, url)
	})
	if err != nil {
		return nil, err
	}

	var receipt Receipt
	if err := json.Unmarshal(body, &receipt); err != nil {
		return nil, fmt.Errorf("decode receipt: %w", err)
	}

	detail := &ReceiptDetail{
		ReceiptData: json.RawMessage(body),
		Store:       receipt.ButikkID,
		Date:        receipt.TransaksjonsTidspunkt,
		Total:       receipt.Belop,
	}
	for _, item := range receipt.Varelinjer {
		name := item.ProduktBeskrivelse
		if name == "" {
			name = "Unknown Product"
		}
		quantity := item.Antall
		if quantity == 0 {
			quantity = 1
		}
		detail.ProcessedItems = append(detail.ProcessedItems, ProcessedItem{
			Name:     name,
			Price:    item.Belop,
			Quantity: quantity,
		})
	}
	return detail, nil
}
