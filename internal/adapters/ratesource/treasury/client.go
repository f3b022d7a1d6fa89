package treasury

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ptapp/purchase_txn_app/internal/apperrors"
	"github.com/ptapp/purchase_txn_app/internal/core/domain"
	portsrepo "github.com/ptapp/purchase_txn_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

const (
	// DefaultBaseURL is the Treasury fiscal data API endpoint for exchange rates.
	DefaultBaseURL = "https://api.fiscaldata.treasury.gov/services/api/fiscal_service/v1/accounting/od/rates_of_exchange"

	defaultTimeout = 10 * time.Second
	maxRetries     = 3
)

// rateRecord is a single row of the rates_of_exchange dataset.
type rateRecord struct {
	Currency     string          `json:"currency"`
	ExchangeRate decimal.Decimal `json:"exchange_rate"`
	RecordDate   string          `json:"record_date"`
}

type ratesResponse struct {
	Data []rateRecord `json:"data"`
}

// Client fetches exchange rates from the Treasury Reporting Rates of Exchange API.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	baseCurrency string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient overrides the underlying HTTP client, mainly for tests.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// NewClient creates a Treasury rate client. Rates are quoted from baseCurrency
// to the requested target currency.
func NewClient(baseURL, baseCurrency string, opts ...ClientOption) *Client {
	c := &Client{
		httpClient:   &http.Client{Timeout: defaultTimeout},
		baseURL:      baseURL,
		baseCurrency: baseCurrency,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Ensure Client implements the rate source port
var _ portsrepo.ExchangeRateSource = (*Client)(nil)

// FetchRate returns the most recent rate for targetCurrency recorded on or
// before transactionDate. The query is prefiltered to the six months before
// the transaction date so the API never returns a rate the conversion rules
// would reject anyway.
func (c *Client) FetchRate(ctx context.Context, targetCurrency string, transactionDate time.Time) (*domain.ExchangeRate, error) {
	txnDate := domain.DateOnly(transactionDate)
	windowStart := domain.AddMonths(txnDate, -domain.RateValidityMonths)

	query := url.Values{}
	query.Set("fields", "currency,exchange_rate,record_date")
	query.Set("filter", fmt.Sprintf("currency:eq:%s,record_date:lte:%s,record_date:gte:%s",
		currencyName(targetCurrency),
		txnDate.Format(time.DateOnly),
		windowStart.Format(time.DateOnly),
	))
	query.Set("sort", "-record_date")
	query.Set("page[size]", "1")
	requestURL := c.baseURL + "?" + query.Encode()

	var payload ratesResponse
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= http.StatusInternalServerError {
			return fmt.Errorf("treasury api returned status %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			return backoff.Permanent(fmt.Errorf("treasury api returned status %d", resp.StatusCode))
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			return backoff.Permanent(fmt.Errorf("decoding treasury response: %w", err))
		}
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, fmt.Errorf("%w: fetching rate for %s: %v", apperrors.ErrRateUnavailable, targetCurrency, err)
	}

	if len(payload.Data) == 0 {
		return nil, fmt.Errorf("%w: no rate for %s on or before %s",
			apperrors.ErrRateUnavailable, targetCurrency, txnDate.Format(time.DateOnly))
	}

	record := payload.Data[0]
	effectiveDate, err := time.Parse(time.DateOnly, record.RecordDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid record_date %q", apperrors.ErrRateUnavailable, record.RecordDate)
	}
	rate, err := domain.NewExchangeRate(record.ExchangeRate, c.baseCurrency, targetCurrency, effectiveDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrRateUnavailable, err)
	}
	return &rate, nil
}

// currencyNames maps ISO 4217 codes to the country-currency descriptions the
// rates_of_exchange dataset uses in its currency field.
var currencyNames = map[string]string{
	"EUR": "Euro Zone-Euro",
	"GBP": "United Kingdom-Pound",
	"CAD": "Canada-Dollar",
	"AUD": "Australia-Dollar",
	"JPY": "Japan-Yen",
	"BRL": "Brazil-Real",
	"MXN": "Mexico-Peso",
	"INR": "India-Rupee",
	"CNY": "China-Renminbi",
	"CHF": "Switzerland-Franc",
}

// currencyName resolves an ISO code to the dataset's currency description,
// falling back to the raw code for currencies not in the table.
func currencyName(code string) string {
	if name, ok := currencyNames[code]; ok {
		return name
	}
	return code
}
