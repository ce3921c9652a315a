// Package currency fetches currency conversion rates from freecurrencyapi.com
// and keeps the last good snapshot around as a fallback.
package currency

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Rates are served as JSON numbers, as the upstream API returns them.
	decimal.MarshalJSONWithoutQuotes = true
}

// Snapshot is a set of conversion rates relative to Base.
type Snapshot struct {
	Base      string                     `json:"base"`
	Rates     map[string]decimal.Decimal `json:"rates"`
	FetchedAt time.Time                  `json:"fetchedAt"`
	Stale     bool                       `json:"-"`
}

// Age returns how old the snapshot is at now.
func (s *Snapshot) Age(now time.Time) time.Duration {
	return now.Sub(s.FetchedAt)
}

// Fetcher retrieves the latest rates for a base currency.
type Fetcher interface {
	Latest(ctx context.Context, base string, currencies []string) (*Snapshot, error)
}

// Cache stores the most recent snapshot per base currency. Get returns
// (nil, nil) when nothing is stored; freshness is decided by the caller.
type Cache interface {
	Get(ctx context.Context, base string) (*Snapshot, error)
	Set(ctx context.Context, snapshot *Snapshot) error
}
