package stockcalc

import (
	"errors"
	"fmt"
	"math"
)

// Market identifies where an asset trades, which fixes its native currency
// and how its price is fetched.
type Market int

const (
	// Domestic is a Korean listing, priced in KRW.
	Domestic Market = iota
	// Foreign is a US listing, priced in USD.
	Foreign
)

func (m Market) String() string {
	if m == Domestic {
		return "KR"
	}
	return "US"
}

// Currency returns the native currency code for the market.
func (m Market) Currency() string {
	if m == Domestic {
		return "KRW"
	}
	return "USD"
}

// WeightMode declares how an asset's weight is read within its tier.
type WeightMode int

const (
	// FractionOfTier reads weights as shares of the tier's own budget,
	// normalized by the sum of the tier's weights.
	FractionOfTier WeightMode = iota
	// FractionOfTotal reads weights as shares of the whole portfolio;
	// the tier fraction is informational only in this mode.
	FractionOfTotal
)

// AssetSpec is the static declaration of one asset in the model.
type AssetSpec struct {
	Name   string
	Ticker string
	Weight float64
	Market Market
}

// BudgetTier is an ordered group of assets sharing one slice of the budget.
type BudgetTier struct {
	Name     string
	Fraction float64 // share of total assets assigned to this tier
	Mode     WeightMode
	Assets   []AssetSpec
}

// WeightSum returns the sum of the tier's asset weights.
func (t BudgetTier) WeightSum() float64 {
	var sum float64
	for _, a := range t.Assets {
		sum += a.Weight
	}
	return sum
}

// CashTier optionally names the residual cash line. Its fraction is always
// the leftover (1 - sum of tier fractions); declaring a Fraction >= 0 that
// differs from the leftover is a configuration error.
type CashTier struct {
	Name     string
	Fraction float64 // < 0 means "derive from leftover"
}

// PortfolioModel is the process-wide immutable portfolio declaration.
// Construct it once at startup, validate it, and pass it explicitly into the
// planner; there is no ambient lookup and no runtime mutation.
type PortfolioModel struct {
	Tiers []BudgetTier
	Cash  *CashTier
}

// Assets returns all assets in declaration order: tier order, then
// within-tier order. This is also the order of holdings vectors and of the
// planner's output rows.
func (m PortfolioModel) Assets() []AssetSpec {
	var all []AssetSpec
	for _, t := range m.Tiers {
		all = append(all, t.Assets...)
	}
	return all
}

// NumAssets returns the total asset count across tiers.
func (m PortfolioModel) NumAssets() int {
	n := 0
	for _, t := range m.Tiers {
		n += len(t.Assets)
	}
	return n
}

// Leftover returns the share of total assets not assigned to any tier.
func (m PortfolioModel) Leftover() float64 {
	left := 1.0
	for _, t := range m.Tiers {
		left -= t.Fraction
	}
	return left
}

// CashLabel returns the display name of the residual cash line.
func (m PortfolioModel) CashLabel() string {
	if m.Cash != nil && m.Cash.Name != "" {
		return m.Cash.Name
	}
	return "Cash"
}

const fractionTolerance = 1e-9

// Validate checks the model declaration and returns a ConfigError joining
// every issue found, or nil.
func (m PortfolioModel) Validate() error {
	var errs error
	if len(m.Tiers) == 0 {
		errs = errors.Join(errs, errors.New("model declares no tiers"))
	}
	for _, t := range m.Tiers {
		if t.Fraction <= 0 || t.Fraction > 1 {
			errs = errors.Join(errs, fmt.Errorf("tier %q: fraction %v is not in (0, 1]", t.Name, t.Fraction))
		}
		if len(t.Assets) == 0 {
			errs = errors.Join(errs, fmt.Errorf("tier %q: no assets", t.Name))
		}
		seen := make(map[string]bool)
		for _, a := range t.Assets {
			if a.Weight <= 0 {
				errs = errors.Join(errs, fmt.Errorf("tier %q: asset %q has non-positive weight %v", t.Name, a.Ticker, a.Weight))
			}
			if seen[a.Ticker] {
				errs = errors.Join(errs, fmt.Errorf("tier %q: duplicate ticker %q", t.Name, a.Ticker))
			}
			seen[a.Ticker] = true
		}
	}
	left := m.Leftover()
	if left < -fractionTolerance {
		errs = errors.Join(errs, fmt.Errorf("tier fractions sum to %v, over 1", 1-left))
	}
	// The residual cash line is always the leftover; an explicit fraction
	// must agree with it rather than be silently reconciled.
	if m.Cash != nil && m.Cash.Fraction >= 0 && math.Abs(m.Cash.Fraction-left) > fractionTolerance {
		errs = errors.Join(errs, fmt.Errorf("cash fraction %v does not match leftover %v", m.Cash.Fraction, left))
	}
	if errs != nil {
		return &ConfigError{Err: errs}
	}
	return nil
}
