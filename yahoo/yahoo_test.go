package yahoo

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	stockcalc "github.com/gm1616bd-oss/stock-calc"
)

const chartBody = `{"chart":{"result":[{"meta":{"regularMarketPrice":%s},"indicators":{"quote":[{"close":%s}]}}],"error":null}}`

func chartServer(t *testing.T, responses map[string]string) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := responses[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		// Yahoo includes pre/post trades only when asked to
		if r.URL.Path == "/v8/finance/chart/TSM" && r.URL.Query().Get("includePrePost") != "true" {
			t.Errorf("foreign fetch missing includePrePost: %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return NewWithBase(srv.URL)
}

func TestPriceForeignPrefersLastExtendedTrade(t *testing.T) {
	c := chartServer(t, map[string]string{
		"/v8/finance/chart/TSM": fmt.Sprintf(chartBody, "99.0", "[100.1,null,101.5,null]"),
	})
	got, err := c.Price(context.Background(), "TSM", stockcalc.Foreign)
	if err != nil {
		t.Fatalf("Price() error = %v", err)
	}
	if got != 101.5 {
		t.Errorf("Price() = %v, want last non-null close 101.5", got)
	}
}

func TestPriceForeignFallsBackToRegularSession(t *testing.T) {
	c := chartServer(t, map[string]string{
		"/v8/finance/chart/TSM": fmt.Sprintf(chartBody, "99.0", "[null,null]"),
	})
	got, err := c.Price(context.Background(), "TSM", stockcalc.Foreign)
	if err != nil {
		t.Fatalf("Price() error = %v", err)
	}
	if got != 99.0 {
		t.Errorf("Price() = %v, want meta price 99.0", got)
	}
}

func TestPriceDomesticUsesLatestTrade(t *testing.T) {
	c := chartServer(t, map[string]string{
		"/v8/finance/chart/005380.KS": fmt.Sprintf(chartBody, "250000", "[]"),
	})
	got, err := c.Price(context.Background(), "005380.KS", stockcalc.Domestic)
	if err != nil {
		t.Fatalf("Price() error = %v", err)
	}
	if got != 250000 {
		t.Errorf("Price() = %v, want 250000", got)
	}
}

func TestPriceToleratesStringNumbers(t *testing.T) {
	c := chartServer(t, map[string]string{
		"/v8/finance/chart/005380.KS": fmt.Sprintf(chartBody, `"250,000"`, "[]"),
	})
	got, err := c.Price(context.Background(), "005380.KS", stockcalc.Domestic)
	if err != nil {
		t.Fatalf("Price() error = %v", err)
	}
	if got != 250000 {
		t.Errorf("Price() = %v, want 250000", got)
	}
}

func TestUsdKrw(t *testing.T) {
	c := chartServer(t, map[string]string{
		"/v8/finance/chart/KRW=X": fmt.Sprintf(chartBody, "1391.2", "[]"),
	})
	got, err := c.UsdKrw(context.Background())
	if err != nil {
		t.Fatalf("UsdKrw() error = %v", err)
	}
	if got != 1391.2 {
		t.Errorf("UsdKrw() = %v, want 1391.2", got)
	}
}

func TestPriceReportsChartError(t *testing.T) {
	c := chartServer(t, map[string]string{
		"/v8/finance/chart/NOPE": `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`,
	})
	if _, err := c.Price(context.Background(), "NOPE", stockcalc.Domestic); err == nil {
		t.Fatal("Price() = nil error, want chart error")
	}
}

func TestPriceReportsHTTPError(t *testing.T) {
	c := chartServer(t, map[string]string{})
	if _, err := c.Price(context.Background(), "MISSING", stockcalc.Domestic); err == nil {
		t.Fatal("Price() = nil error, want HTTP error")
	}
}

func TestPriceRejectsZeroPrice(t *testing.T) {
	c := chartServer(t, map[string]string{
		"/v8/finance/chart/ZERO": fmt.Sprintf(chartBody, "0", "[]"),
	})
	if _, err := c.Price(context.Background(), "ZERO", stockcalc.Domestic); err == nil {
		t.Fatal("Price() = nil error, want empty-price error")
	}
}
