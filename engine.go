package stockcalc

import "fmt"

// Action is the guidance derived from the delta between target and current
// quantity.
type Action int

const (
	Hold Action = iota
	Buy
	Sell
)

func (a Action) String() string {
	switch a {
	case Buy:
		return "BUY"
	case Sell:
		return "SELL"
	default:
		return "HOLD"
	}
}

// AllocationResult is one computed row of a rebalancing plan. Rows are
// immutable once computed and ordered as the model declares its assets.
type AllocationResult struct {
	Tier   string
	Name   string
	Ticker string
	Market Market

	Native Money // unit price in native currency
	Price  Money // unit price in KRW

	TargetWeight  Percent // theoretical share of total assets
	CurrentWeight Percent // share held today, at current prices

	TargetAmount Money // top-down target allocation
	ActualCost   Money // money committed by the rounded quantity

	TargetQty  int64
	CurrentQty int64
	Delta      int64 // TargetQty - CurrentQty
	Value      Money // CurrentQty at current KRW price

	Action      Action
	Unavailable bool // quote failed; quantities forced to zero
}

// Plan is the complete outcome of one rebalancing computation.
type Plan struct {
	Rows []AllocationResult

	Total    Money // total asset value the plan allocates
	Deployed Money // sum of ActualCost over priced rows
	Residual Money // Total - Deployed, signed, never clamped

	CashLabel  string
	Rate       float64 // USD/KRW applied to foreign prices
	FxFallback bool
	Warnings   []string
}

// Planner computes rebalancing plans over one validated model.
type Planner struct {
	model PortfolioModel
}

// NewPlanner validates the model and returns a planner over it.
func NewPlanner(model PortfolioModel) (*Planner, error) {
	if err := model.Validate(); err != nil {
		return nil, err
	}
	return &Planner{model: model}, nil
}

// Model returns the planner's model.
func (p *Planner) Model() PortfolioModel { return p.model }

// TotalFromHoldings derives the total asset value bottom-up: the market
// value of every held position at current KRW prices, plus cash on hand.
// Positions whose quote failed contribute nothing and produce a warning.
func (p *Planner) TotalFromHoldings(quotes *QuoteSet, holdings HoldingsVector, cash Money) (Money, []string) {
	var warnings []string
	total := cash
	for i, a := range p.model.Assets() {
		qty := holdings.At(i)
		if qty == 0 {
			continue
		}
		q := quotes.Lookup(a.Ticker)
		if q.Unavailable() {
			warnings = append(warnings, fmt.Sprintf("%s: quote unavailable, %d held shares excluded from total", a.Ticker, qty))
			continue
		}
		total = total.Add(q.Price.Mul(Q(qty)))
	}
	return total, warnings
}

// Plan allocates total across the model's tiers at the given quotes and
// returns one row per asset, in declaration order, plus the residual cash
// figures. It returns ErrInvalidInput when total is zero or negative.
//
// Per-asset quote failures degrade that row (zero quantity, Unavailable
// flag) and never abort the run.
func (p *Planner) Plan(total Money, quotes *QuoteSet, holdings HoldingsVector) (*Plan, error) {
	if !total.IsPositive() {
		return nil, ErrInvalidInput
	}

	plan := &Plan{
		Total:      total,
		Deployed:   M(0, "KRW"),
		CashLabel:  p.model.CashLabel(),
		Rate:       quotes.Rate,
		FxFallback: quotes.FxFallback,
	}
	if plan.FxFallback {
		plan.Warnings = append(plan.Warnings, fmt.Sprintf("live USD/KRW rate unavailable, using fallback %.1f", quotes.Rate))
	}

	idx := 0
	for _, tier := range p.model.Tiers {
		tierBudget := total.Mul(Q(tier.Fraction))
		weightSum := tier.WeightSum()

		for _, a := range tier.Assets {
			row := AllocationResult{
				Tier:       tier.Name,
				Name:       a.Name,
				Ticker:     a.Ticker,
				Market:     a.Market,
				CurrentQty: holdings.At(idx),
			}

			switch tier.Mode {
			case FractionOfTier:
				row.TargetAmount = tierBudget.Mul(Q(a.Weight / weightSum))
			case FractionOfTotal:
				row.TargetAmount = total.Mul(Q(a.Weight))
			}
			row.TargetWeight = Percent(100 * row.TargetAmount.AsFloat() / total.AsFloat())

			q := quotes.Lookup(a.Ticker)
			if q.Unavailable() {
				// Degraded row: flagged, no quantity, no cost. Routing
				// through the flag keeps a failed quote from ever turning
				// into a plausible zero-price purchase.
				row.Unavailable = true
				row.ActualCost = M(0, "KRW")
				row.Value = M(0, "KRW")
			} else {
				row.Native = q.Native
				row.Price = q.Price
				row.TargetQty = row.TargetAmount.DivPrice(q.Price).Round().Int64()
				row.ActualCost = q.Price.Mul(Q(row.TargetQty))
				row.Value = q.Price.Mul(Q(row.CurrentQty))
				row.CurrentWeight = Percent(100 * row.Value.AsFloat() / total.AsFloat())
				plan.Deployed = plan.Deployed.Add(row.ActualCost)
			}

			row.Delta = row.TargetQty - row.CurrentQty
			switch {
			case row.Delta > 0:
				row.Action = Buy
			case row.Delta < 0:
				row.Action = Sell
			default:
				row.Action = Hold
			}

			plan.Rows = append(plan.Rows, row)
			idx++
		}
	}

	// The residual absorbs rounding residue and any undeployed fraction.
	// It is computed bottom-up from committed costs and reported signed:
	// rounding up across many assets can legitimately push it negative.
	plan.Residual = total.Sub(plan.Deployed)
	return plan, nil
}
