// Package yahoo resolves live prices and the USD/KRW rate from the public
// Yahoo Finance chart API. No API key is required.
package yahoo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	stockcalc "github.com/gm1616bd-oss/stock-calc"
)

const defaultBase = "https://query1.finance.yahoo.com"

// Client implements stockcalc.PriceSource and stockcalc.RateSource.
// The zero value is not usable; call New.
type Client struct {
	http *http.Client
	base string
}

// New returns a client against the public Yahoo Finance endpoint.
func New() *Client {
	return &Client{http: new(http.Client), base: defaultBase}
}

// NewWithBase returns a client against an alternate endpoint, for tests.
func NewWithBase(base string) *Client {
	return &Client{http: new(http.Client), base: base}
}

// Price returns the current unit price of ticker in its native currency.
// Foreign listings prefer the last pre/post-market trade from the 1-minute
// intraday series, falling back to the regular session price; domestic
// listings use the latest traded price.
func (c *Client) Price(ctx context.Context, ticker string, market stockcalc.Market) (float64, error) {
	if market == stockcalc.Foreign {
		return c.extendedPrice(ctx, ticker)
	}
	return c.metaPrice(ctx, ticker)
}

// UsdKrw returns the current USD to KRW conversion rate.
func (c *Client) UsdKrw(ctx context.Context) (float64, error) {
	return c.metaPrice(ctx, "KRW=X")
}

// extendedPrice reads the last close of today's 1-minute series with
// pre/post market included.
func (c *Client) extendedPrice(ctx context.Context, ticker string) (float64, error) {
	jobj, err := c.chart(ctx, ticker, "1m", true)
	if err != nil {
		return math.NaN(), err
	}
	jval, err := jsonpath.Get("$.chart.result[0].indicators.quote[0].close", jobj)
	if err == nil {
		if closes, ok := jval.([]any); ok {
			// the series is padded with nulls outside trading minutes,
			// the last non-null entry is the freshest trade
			for i := len(closes) - 1; i >= 0; i-- {
				if closes[i] == nil {
					continue
				}
				return asFloat(ticker, closes[i])
			}
		}
	}
	// empty series, fall back to the regular session price of the same payload
	return metaOf(ticker, jobj)
}

// metaPrice reads regularMarketPrice from the daily chart metadata.
func (c *Client) metaPrice(ctx context.Context, ticker string) (float64, error) {
	jobj, err := c.chart(ctx, ticker, "1d", false)
	if err != nil {
		return math.NaN(), err
	}
	return metaOf(ticker, jobj)
}

func metaOf(ticker string, jobj any) (float64, error) {
	jval, err := jsonpath.Get("$.chart.result[0].meta.regularMarketPrice", jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("no price in chart response for %q: %w", ticker, err)
	}
	return asFloat(ticker, jval)
}

func (c *Client) chart(ctx context.Context, ticker, interval string, prepost bool) (any, error) {
	q := url.Values{}
	q.Set("range", "1d")
	q.Set("interval", interval)
	if prepost {
		q.Set("includePrePost", "true")
	}
	addr := fmt.Sprintf("%s/v8/finance/chart/%s?%s", c.base, url.PathEscape(ticker), q.Encode())

	var jobj any
	if err := jwget(ctx, c.http, addr, &jobj); err != nil {
		return nil, fmt.Errorf("error retrieving %q: %w", ticker, err)
	}
	if jdesc, err := jsonpath.Get("$.chart.error.description", jobj); err == nil && jdesc != nil {
		return nil, fmt.Errorf("chart error for %q: %v", ticker, jdesc)
	}
	return jobj, nil
}

// asFloat reads a numeric value that this weird API sometimes returns as a
// string.
func asFloat(ticker string, jval any) (float64, error) {
	if val, ok := jval.(float64); ok {
		if val <= 0 {
			return math.NaN(), fmt.Errorf("empty price for %q", ticker)
		}
		return val, nil
	}
	sval, ok := jval.(string)
	if !ok {
		return math.NaN(), fmt.Errorf("cannot read price for %q: neither a float nor a string", ticker)
	}
	sval = strings.ReplaceAll(sval, ",", "")
	sval = strings.ReplaceAll(sval, " ", "")
	val, err := strconv.ParseFloat(sval, 64)
	if err != nil {
		return math.NaN(), fmt.Errorf("cannot read price for %q: invalid string %q: %w", ticker, sval, err)
	}
	if val <= 0 {
		return math.NaN(), fmt.Errorf("empty price for %q", ticker)
	}
	return val, nil
}

// jwget performs an HTTP GET request and unmarshals the JSON response into
// the provided data structure.
func jwget(ctx context.Context, client *http.Client, addr string, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "Mozilla/5.0 (scalc)")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), data)
}
