// Package renderer turns computed plans into markdown documents. It knows
// nothing about price fetching or the engine's math: it only consumes
// immutable result rows.
package renderer

import (
	"fmt"
	"io"
	"strings"

	stockcalc "github.com/gm1616bd-oss/stock-calc"
)

// PlanMarkdown renders the full rebalancing plan as a markdown document:
// a summary header, the per-asset table in model order, and the residual
// cash line.
func PlanMarkdown(p *stockcalc.Plan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Rebalancing Plan\n\n")
	fmt.Fprintf(&b, "Total assets **%s** at USD/KRW **%.2f**\n\n", p.Total, p.Rate)

	ConditionalBlock(&b, func(w io.Writer) bool {
		for _, warn := range p.Warnings {
			fmt.Fprintf(w, "> ⚠️ %s\n", warn)
		}
		if len(p.Warnings) > 0 {
			fmt.Fprintln(w)
			return true
		}
		return false
	})

	fmt.Fprintln(&b, "| Tier | Asset | Price | Price (KRW) | Target % | Now % | Target Amount | Qty | Held | Action |")
	fmt.Fprintln(&b, "|:---|:---|--:|--:|--:|--:|--:|--:|--:|:---|")
	for _, r := range p.Rows {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %d | %d | %s |\n",
			r.Tier,
			r.Name,
			nativeCell(r),
			krwCell(r),
			r.TargetWeight,
			r.CurrentWeight,
			r.TargetAmount,
			r.TargetQty,
			r.CurrentQty,
			actionCell(r),
		)
	}
	fmt.Fprintf(&b, "| %s | | | | %.2f%% | | %s | | | |\n",
		p.CashLabel, 100*residualFraction(p), p.Residual)

	fmt.Fprintf(&b, "\nDeployed **%s**, residual %s\n", p.Deployed, p.Residual.SignedString())
	return b.String()
}

// nativeCell shows the USD price of foreign listings; domestic listings are
// already quoted in KRW so the column stays empty for them.
func nativeCell(r stockcalc.AllocationResult) string {
	if r.Unavailable {
		return "n/a"
	}
	if r.Market == stockcalc.Domestic {
		return "-"
	}
	return r.Native.String()
}

func krwCell(r stockcalc.AllocationResult) string {
	if r.Unavailable {
		return "n/a"
	}
	return r.Price.String()
}

// actionCell highlights actionable rows; HOLD stays unadorned.
func actionCell(r stockcalc.AllocationResult) string {
	if r.Unavailable {
		return "⚠️ PRICE UNAVAILABLE"
	}
	switch r.Action {
	case stockcalc.Buy:
		return fmt.Sprintf("**BUY %d**", r.Delta)
	case stockcalc.Sell:
		return fmt.Sprintf("**SELL %d**", -r.Delta)
	default:
		return "HOLD"
	}
}

func residualFraction(p *stockcalc.Plan) float64 {
	if p.Total.IsZero() {
		return 0
	}
	return p.Residual.AsFloat() / p.Total.AsFloat()
}
