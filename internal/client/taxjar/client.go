package taxjar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

const (
	defaultBaseURL = "https://api.taxjar.com"
	defaultTimeout = 10 * time.Second
)

// Client manages communication with the TaxJar API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Option configures the client.
type Option func(*Client)

// WithBaseURL overrides the API base URL (used for sandbox and tests).
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a new TaxJar API client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TaxForOrderParams describes one order for the /v2/taxes endpoint. Amounts
// are decimal dollars, which is what the provider expects on the wire.
type TaxForOrderParams struct {
	ToCountry string  `json:"to_country"`
	ToState   string  `json:"to_state"`
	ToCity    string  `json:"to_city,omitempty"`
	ToZip     string  `json:"to_zip,omitempty"`
	Amount    float64 `json:"amount"`
	Shipping  float64 `json:"shipping"`
}

// TaxForOrderResult is the subset of the provider response the engine needs.
type TaxForOrderResult struct {
	Rate            float64 `json:"rate"`
	AmountToCollect float64 `json:"amount_to_collect"`
	FreightTaxable  bool    `json:"freight_taxable"`
	HasNexus        bool    `json:"has_nexus"`
}

type taxForOrderResponse struct {
	Tax TaxForOrderResult `json:"tax"`
}

// Error represents an API error returned by TaxJar.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("taxjar: status %d: %s", e.StatusCode, e.Message)
}

// TaxForOrder calculates sales tax for one order. The caller bounds the call
// with its context; a deadline there overrides the client default timeout.
func (c *Client) TaxForOrder(ctx context.Context, params TaxForOrderParams) (*TaxForOrderResult, error) {
	body, err := json.Marshal(params)
	if err != nil {
		return nil, errors.Wrap(err, "marshal tax_for_order request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v2/taxes", bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "build tax_for_order request")
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "call tax_for_order")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read tax_for_order response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	var parsed taxForOrderResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, errors.Wrap(err, "decode tax_for_order response")
	}

	return &parsed.Tax, nil
}
