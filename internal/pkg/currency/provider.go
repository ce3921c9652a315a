package currency

import (
	"context"
	"fmt"
	"time"

	"github.com/yigit/collegehub/internal/pkg/apperrors"
	"github.com/yigit/collegehub/internal/pkg/logger"
	"golang.org/x/sync/singleflight"
)

// ProviderConfig configures a Provider
type ProviderConfig struct {
	Base       string
	Currencies []string
	// TTL is how long a snapshot is served without asking upstream again
	TTL time.Duration
	// FetchTimeout bounds one upstream refresh including its retries
	FetchTimeout time.Duration
}

// Provider serves rates from cache, refreshing from upstream when the cached
// snapshot is older than the TTL. When the refresh fails the last snapshot is
// served marked stale. Concurrent refreshes for the same base collapse into one.
type Provider struct {
	fetcher Fetcher
	cache   Cache
	cfg     ProviderConfig
	group   singleflight.Group
	now     func() time.Time
}

// NewProvider creates a Provider
func NewProvider(fetcher Fetcher, cache Cache, cfg ProviderConfig) *Provider {
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = 5 * time.Second
	}
	return &Provider{
		fetcher: fetcher,
		cache:   cache,
		cfg:     cfg,
		now:     time.Now,
	}
}

// Base returns the base currency served by the provider
func (p *Provider) Base() string {
	return p.cfg.Base
}

// LatestRates returns the current snapshot for the configured base currency.
// It fails with apperrors.ErrCurrencyUnavailable only when upstream fails and
// nothing was ever cached.
func (p *Provider) LatestRates(ctx context.Context) (*Snapshot, error) {
	log := logger.FromContext(ctx)

	cached, err := p.cache.Get(ctx, p.cfg.Base)
	if err != nil {
		// A broken cache must not take the endpoint down
		log.Warn().Err(err).Str("base", p.cfg.Base).Msg("Currency cache read failed")
		cached = nil
	}
	if cached != nil && cached.Age(p.now()) < p.cfg.TTL {
		lookupTotal.WithLabelValues("cache").Inc()
		return cached, nil
	}

	v, err, _ := p.group.Do(p.cfg.Base, func() (interface{}, error) {
		return p.refresh(ctx)
	})
	if err == nil {
		lookupTotal.WithLabelValues("upstream").Inc()
		return v.(*Snapshot), nil
	}

	if cached != nil {
		log.Warn().Err(err).Str("base", p.cfg.Base).Dur("age", cached.Age(p.now())).Msg("Serving stale currency rates")
		lookupTotal.WithLabelValues("stale").Inc()
		stale := *cached
		stale.Stale = true
		return &stale, nil
	}

	lookupTotal.WithLabelValues("none").Inc()
	return nil, fmt.Errorf("%w: %v", apperrors.ErrCurrencyUnavailable, err)
}

// refresh fetches from upstream on a context detached from the caller's
// cancellation, since other callers may be waiting on the same flight.
func (p *Provider) refresh(ctx context.Context) (*Snapshot, error) {
	fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.cfg.FetchTimeout)
	defer cancel()

	snapshot, err := p.fetcher.Latest(fetchCtx, p.cfg.Base, p.cfg.Currencies)
	if err != nil {
		fetchTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	fetchTotal.WithLabelValues("success").Inc()

	if err := p.cache.Set(fetchCtx, snapshot); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("base", p.cfg.Base).Msg("Currency cache write failed")
	}
	return snapshot, nil
}
