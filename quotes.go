package stockcalc

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

var errNoQuote = errors.New("no quote fetched")
var errEmptyQuote = errors.New("quote has no positive price")

// FallbackUsdKrw is substituted when the live USD/KRW rate cannot be
// fetched. The substitution is surfaced through QuoteSet.FxFallback.
const FallbackUsdKrw = 1400.0

// DefaultFetchTimeout bounds each individual price or FX fetch.
const DefaultFetchTimeout = 10 * time.Second

// PriceSource resolves a ticker to its current unit price in the market's
// native currency.
type PriceSource interface {
	Price(ctx context.Context, ticker string, market Market) (float64, error)
}

// RateSource resolves the current USD to KRW conversion rate.
type RateSource interface {
	UsdKrw(ctx context.Context) (float64, error)
}

// Quote is one asset's resolved price for a single run.
type Quote struct {
	Native Money // unit price in the market's native currency
	Price  Money // unit price in KRW
	Err    error // non-nil when the fetch failed
}

// Unavailable reports whether the quote cannot price a purchase.
func (q Quote) Unavailable() bool { return q.Err != nil || !q.Price.IsPositive() }

// QuoteSet holds every price resolved for one calculation run, plus the FX
// rate applied to foreign listings. It is built once per run and never
// cached across runs.
type QuoteSet struct {
	Rate       float64 // USD -> KRW
	FxFallback bool    // true when Rate is the static fallback

	quotes map[string]Quote
}

// NewQuoteSet returns an empty set using the given USD/KRW rate.
func NewQuoteSet(rate float64) *QuoteSet {
	return &QuoteSet{Rate: rate, quotes: make(map[string]Quote)}
}

// Set records an asset's native price, converting foreign prices to KRW at
// the set's rate. A non-nil err marks the quote unavailable.
func (s *QuoteSet) Set(ticker string, market Market, price float64, err error) {
	q := Quote{Err: err}
	if err == nil && price <= 0 {
		q.Err = errEmptyQuote
	}
	if q.Err == nil {
		q.Native = M(price, market.Currency())
		q.Price = M(price, "KRW")
		if market == Foreign {
			q.Price = q.Price.Mul(Q(s.Rate))
		}
	}
	s.quotes[ticker] = q
}

// Lookup returns the quote recorded for ticker. A ticker that was never
// fetched behaves like a failed quote.
func (s *QuoteSet) Lookup(ticker string) Quote {
	if q, ok := s.quotes[ticker]; ok {
		return q
	}
	return Quote{Err: errNoQuote}
}

// FetchOptions tunes a FetchQuotes run.
type FetchOptions struct {
	Timeout   time.Duration // per-fetch timeout; DefaultFetchTimeout if zero
	FixedRate float64       // > 0 skips the FX fetch and uses this rate
}

// FetchQuotes resolves the FX rate and every asset price of the model in a
// single concurrent pass. Each fetch has its own timeout; a failed fetch
// degrades that quote (or the rate, to FallbackUsdKrw) without aborting the
// rest of the run. The returned set is complete: every model ticker has an
// entry, failed ones flagged.
func FetchQuotes(ctx context.Context, model PortfolioModel, prices PriceSource, rates RateSource, opts FetchOptions) *QuoteSet {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}

	assets := model.Assets()
	native := make([]float64, len(assets))
	ferr := make([]error, len(assets))

	rate := opts.FixedRate
	fallback := false

	g, gctx := errgroup.WithContext(ctx)

	if rate <= 0 {
		g.Go(func() error {
			fctx, cancel := context.WithTimeout(gctx, timeout)
			defer cancel()
			r, err := rates.UsdKrw(fctx)
			if err != nil || r <= 0 {
				log.Printf("USD/KRW rate unavailable, using fallback %v: %v", FallbackUsdKrw, err)
				rate, fallback = FallbackUsdKrw, true
				return nil
			}
			rate = r
			return nil
		})
	}

	var mu sync.Mutex
	for i, a := range assets {
		i, a := i, a
		g.Go(func() error {
			fctx, cancel := context.WithTimeout(gctx, timeout)
			defer cancel()
			p, err := prices.Price(fctx, a.Ticker, a.Market)
			mu.Lock()
			native[i], ferr[i] = p, err
			mu.Unlock()
			if err != nil {
				log.Printf("quote unavailable for %s: %v", a.Ticker, err)
			}
			return nil // per-asset failure is never fatal
		})
	}
	_ = g.Wait() // individual fetches never return errors

	set := NewQuoteSet(rate)
	set.FxFallback = fallback
	for i, a := range assets {
		set.Set(a.Ticker, a.Market, native[i], ferr[i])
	}
	return set
}
