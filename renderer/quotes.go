package renderer

import (
	"fmt"
	"strings"

	stockcalc "github.com/gm1616bd-oss/stock-calc"
)

// QuotesMarkdown renders the resolved quotes of one run, for diagnostics.
func QuotesMarkdown(m stockcalc.PortfolioModel, quotes *stockcalc.QuoteSet) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Quotes\n\n")
	fmt.Fprintf(&b, "USD/KRW **%.2f**", quotes.Rate)
	if quotes.FxFallback {
		fmt.Fprintf(&b, " (fallback)")
	}
	fmt.Fprintf(&b, "\n\n")

	fmt.Fprintln(&b, "| Ticker | Market | Price | Price (KRW) | Status |")
	fmt.Fprintln(&b, "|:---|:---:|--:|--:|:---|")
	for _, a := range m.Assets() {
		q := quotes.Lookup(a.Ticker)
		if q.Unavailable() {
			fmt.Fprintf(&b, "| %s | %s | n/a | n/a | ⚠️ %v |\n", a.Ticker, a.Market, q.Err)
			continue
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | ok |\n", a.Ticker, a.Market, q.Native, q.Price)
	}
	return b.String()
}
