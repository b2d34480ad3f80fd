package stockcalc

import (
	"errors"
	"testing"
)

func oneTier(mode WeightMode, fraction float64, assets ...AssetSpec) PortfolioModel {
	return PortfolioModel{Tiers: []BudgetTier{{Name: "T", Fraction: fraction, Mode: mode, Assets: assets}}}
}

func TestDefaultModelIsValid(t *testing.T) {
	if err := DefaultModel().Validate(); err != nil {
		t.Fatalf("DefaultModel().Validate() error = %v", err)
	}
	if got, want := DefaultModel().NumAssets(), 16; got != want {
		t.Errorf("NumAssets() = %d, want %d", got, want)
	}
}

func TestValidateRejectsBadModels(t *testing.T) {
	a := AssetSpec{Name: "A", Ticker: "A", Weight: 0.5, Market: Domestic}

	tests := []struct {
		name  string
		model PortfolioModel
	}{
		{"no tiers", PortfolioModel{}},
		{"empty tier", oneTier(FractionOfTier, 1.0)},
		{"zero weight", oneTier(FractionOfTier, 1.0, AssetSpec{Ticker: "A", Weight: 0})},
		{"negative weight", oneTier(FractionOfTier, 1.0, AssetSpec{Ticker: "A", Weight: -0.1})},
		{"duplicate ticker", oneTier(FractionOfTier, 1.0, a, a)},
		{"fraction over 1", oneTier(FractionOfTier, 1.5, a)},
		{"fraction zero", oneTier(FractionOfTier, 0, a)},
		{"fractions sum over 1", PortfolioModel{Tiers: []BudgetTier{
			{Name: "T1", Fraction: 0.75, Mode: FractionOfTier, Assets: []AssetSpec{a}},
			{Name: "T2", Fraction: 0.75, Mode: FractionOfTier, Assets: []AssetSpec{a}},
		}}},
		{"cash fraction mismatch", PortfolioModel{
			Tiers: []BudgetTier{{Name: "T", Fraction: 0.75, Mode: FractionOfTier, Assets: []AssetSpec{a}}},
			Cash:  &CashTier{Name: "Cash", Fraction: 0.10},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.model.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			var cfg *ConfigError
			if !errors.As(err, &cfg) {
				t.Errorf("Validate() error type = %T, want *ConfigError", err)
			}
		})
	}
}

func TestValidateCashLeftover(t *testing.T) {
	a := AssetSpec{Name: "A", Ticker: "A", Weight: 0.5, Market: Domestic}
	m := PortfolioModel{
		Tiers: []BudgetTier{{Name: "T", Fraction: 0.75, Mode: FractionOfTier, Assets: []AssetSpec{a}}},
		Cash:  &CashTier{Name: "Reserve", Fraction: 0.25},
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate() error = %v, want nil for matching cash fraction", err)
	}
	if got, want := m.CashLabel(), "Reserve"; got != want {
		t.Errorf("CashLabel() = %q, want %q", got, want)
	}

	// a derived fraction is always accepted
	m.Cash = &CashTier{Name: "Reserve", Fraction: -1}
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate() error = %v, want nil for derived cash fraction", err)
	}
}

func TestAssetsPreservesDeclarationOrder(t *testing.T) {
	m := DefaultModel()
	assets := m.Assets()
	wantFirst, wantLast := "GLDM", "005380.KS"
	if assets[0].Ticker != wantFirst {
		t.Errorf("first asset = %q, want %q", assets[0].Ticker, wantFirst)
	}
	if assets[len(assets)-1].Ticker != wantLast {
		t.Errorf("last asset = %q, want %q", assets[len(assets)-1].Ticker, wantLast)
	}
}
