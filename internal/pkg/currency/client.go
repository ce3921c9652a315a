package currency

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/yigit/collegehub/internal/pkg/httpx"
)

// Client calls the freecurrencyapi.com "latest" endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	policy     httpx.RetryPolicy
	now        func() time.Time
}

// NewClient creates a Client. timeout bounds every single attempt.
func NewClient(baseURL, apiKey string, timeout time.Duration, policy httpx.RetryPolicy) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		policy: policy,
		now:    time.Now,
	}
}

type latestResponse struct {
	Data map[string]decimal.Decimal `json:"data"`
}

// Latest fetches rates relative to base. An empty currencies list asks for every
// currency the upstream knows.
func (c *Client) Latest(ctx context.Context, base string, currencies []string) (*Snapshot, error) {
	q := url.Values{}
	q.Set("apikey", c.apiKey)
	q.Set("currencies", strings.Join(currencies, ","))
	q.Set("base_currency", base)

	var resp latestResponse
	if err := httpx.GetJSON(ctx, c.httpClient, c.baseURL+"/latest?"+q.Encode(), c.policy, &resp); err != nil {
		return nil, fmt.Errorf("fetch %s rates: %w", base, err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("fetch %s rates: empty rate table", base)
	}

	return &Snapshot{
		Base:      base,
		Rates:     resp.Data,
		FetchedAt: c.now(),
	}, nil
}
