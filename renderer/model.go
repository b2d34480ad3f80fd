package renderer

import (
	"fmt"
	"strings"

	stockcalc "github.com/gm1616bd-oss/stock-calc"
)

// ModelMarkdown renders the declared portfolio model: every tier with its
// budget fraction and mode, and every asset with both its declared weight
// and its effective share of total assets.
func ModelMarkdown(m stockcalc.PortfolioModel) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Portfolio Model\n\n")

	fmt.Fprintln(&b, "| Tier | Budget | Asset | Ticker | Market | Weight | Share of Total |")
	fmt.Fprintln(&b, "|:---|--:|:---|:---|:---:|--:|--:|")
	for _, t := range m.Tiers {
		sum := t.WeightSum()
		for _, a := range t.Assets {
			share := a.Weight
			if t.Mode == stockcalc.FractionOfTier {
				share = a.Weight / sum * t.Fraction
			}
			fmt.Fprintf(&b, "| %s | %.0f%% | %s | %s | %s | %.2f | %s |\n",
				t.Name, 100*t.Fraction, a.Name, a.Ticker, a.Market,
				a.Weight, stockcalc.Percent(100*share))
		}
	}
	if left := m.Leftover(); left > 1e-9 {
		fmt.Fprintf(&b, "| %s | %.0f%% | | | | | %s |\n",
			m.CashLabel(), 100*left, stockcalc.Percent(100*left))
	}
	return b.String()
}
