package costing

import (
	"math"
	"reflect"
	"testing"
)

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func cents(v int64) *int64 { return &v }

func TestComponentCost_CeilsFractionalCents(t *testing.T) {
	// 1000¢ pack of 3, one used per product: exact share is 333.33…¢.
	got := ComponentCost(Component{UnitPriceCents: 1000, UnitQtyPerPack: 3, UsageQtyPerProduct: 1})
	if got != 334 {
		t.Fatalf("ComponentCost = %d, want 334 (ceiling, not nearest)", got)
	}
}

func TestComponentCost_ExactShareIsUnchanged(t *testing.T) {
	got := ComponentCost(Component{UnitPriceCents: 1000, UnitQtyPerPack: 4, UsageQtyPerProduct: 2})
	if got != 500 {
		t.Fatalf("ComponentCost = %d, want 500", got)
	}
}

func TestComponentCost_FractionalQuantities(t *testing.T) {
	// 250ml bottle at 599¢, 37.5ml per product: 599/250*37.5 = 89.85 → 90.
	got := ComponentCost(Component{UnitPriceCents: 599, UnitQtyPerPack: 250, UsageQtyPerProduct: 37.5})
	if got != 90 {
		t.Fatalf("ComponentCost = %d, want 90", got)
	}
}

func TestComponentCost_ZeroGuard(t *testing.T) {
	for _, c := range []Component{
		{UnitPriceCents: 1000, UnitQtyPerPack: 0, UsageQtyPerProduct: 1},
		{UnitPriceCents: 1000, UnitQtyPerPack: 5, UsageQtyPerProduct: 0},
		{UnitPriceCents: 1000, UnitQtyPerPack: -1, UsageQtyPerProduct: 1},
	} {
		if got := ComponentCost(c); got != 0 {
			t.Fatalf("ComponentCost(%+v) = %d, want fallback 0", c, got)
		}
	}
}

func TestLaborCost_RoundsToNearest(t *testing.T) {
	cases := []struct {
		minutes, rate, want int64
	}{
		{90, 4000, 6000},  // 1.5h at 40.00/h
		{1, 100, 2},       // 100/60 = 1.66… → 2
		{59, 100, 98},     // 98.33… → 98
		{30, 4001, 2001},  // 2000.5 rounds half away from zero
		{0, 4000, 0},
		{45, 0, 0},
	}
	for _, tc := range cases {
		if got := LaborCost(tc.minutes, tc.rate); got != tc.want {
			t.Fatalf("LaborCost(%d, %d) = %d, want %d", tc.minutes, tc.rate, got, tc.want)
		}
	}
}

func TestCompute_TotalsAndPerComponentCosts(t *testing.T) {
	in := Input{
		LaborMinutes:          90,
		LaborRateCentsPerHour: 4000,
		Components: []Component{
			{UnitPriceCents: 1000, UnitQtyPerPack: 3, UsageQtyPerProduct: 1},   // 334
			{UnitPriceCents: 2500, UnitQtyPerPack: 100, UsageQtyPerProduct: 8}, // 200
		},
	}

	b := Compute(in)

	if want := []int64{334, 200}; !reflect.DeepEqual(b.ComponentCosts, want) {
		t.Fatalf("ComponentCosts = %v, want %v", b.ComponentCosts, want)
	}
	if b.MaterialsCostCents != 534 {
		t.Fatalf("MaterialsCostCents = %d, want 534", b.MaterialsCostCents)
	}
	if b.LaborCostCents != 6000 {
		t.Fatalf("LaborCostCents = %d, want 6000", b.LaborCostCents)
	}
	if b.TotalCostCents != b.MaterialsCostCents+b.LaborCostCents {
		t.Fatalf("TotalCostCents = %d, want materials+labor = %d", b.TotalCostCents, b.MaterialsCostCents+b.LaborCostCents)
	}
	if b.ProfitAmountCents != nil || b.ProfitMarginPercent != nil {
		t.Fatal("profit fields must be nil without a selling price")
	}
}

func TestCompute_ProfitMetrics(t *testing.T) {
	in := Input{
		LaborMinutes:          90,
		LaborRateCentsPerHour: 4000,
		SellingPriceCents:     cents(10000),
		Components: []Component{
			{UnitPriceCents: 1000, UnitQtyPerPack: 3, UsageQtyPerProduct: 1},
		},
	}

	b := Compute(in)

	if b.TotalCostCents != 6334 {
		t.Fatalf("TotalCostCents = %d, want 6334", b.TotalCostCents)
	}
	if b.ProfitAmountCents == nil || *b.ProfitAmountCents != 3666 {
		t.Fatalf("ProfitAmountCents = %v, want 3666", b.ProfitAmountCents)
	}
	if b.ProfitMarginPercent == nil {
		t.Fatal("ProfitMarginPercent is nil")
	}
	nearlyEqual(t, "ProfitMarginPercent", *b.ProfitMarginPercent, 3666.0/6334.0*100)
}

func TestCompute_NegativeMarginIsPreserved(t *testing.T) {
	in := Input{
		LaborMinutes:          60,
		LaborRateCentsPerHour: 5000,
		SellingPriceCents:     cents(2500),
	}

	b := Compute(in)

	if b.ProfitAmountCents == nil || *b.ProfitAmountCents != -2500 {
		t.Fatalf("ProfitAmountCents = %v, want -2500", b.ProfitAmountCents)
	}
	if b.ProfitMarginPercent == nil || *b.ProfitMarginPercent >= 0 {
		t.Fatalf("ProfitMarginPercent = %v, want negative", b.ProfitMarginPercent)
	}
	nearlyEqual(t, "ProfitMarginPercent", *b.ProfitMarginPercent, -50)
}

func TestCompute_ZeroCostMarginIsZero(t *testing.T) {
	b := Compute(Input{SellingPriceCents: cents(1000)})

	if b.TotalCostCents != 0 {
		t.Fatalf("TotalCostCents = %d, want 0", b.TotalCostCents)
	}
	if b.ProfitAmountCents == nil || *b.ProfitAmountCents != 1000 {
		t.Fatalf("ProfitAmountCents = %v, want 1000", b.ProfitAmountCents)
	}
	if b.ProfitMarginPercent == nil || *b.ProfitMarginPercent != 0 {
		t.Fatalf("ProfitMarginPercent = %v, want exactly 0", b.ProfitMarginPercent)
	}
}

func TestCompute_IsDeterministic(t *testing.T) {
	in := Input{
		LaborMinutes:          125,
		LaborRateCentsPerHour: 3275,
		SellingPriceCents:     cents(19999),
		Components: []Component{
			{UnitPriceCents: 1999, UnitQtyPerPack: 7, UsageQtyPerProduct: 3},
			{UnitPriceCents: 450, UnitQtyPerPack: 33.3, UsageQtyPerProduct: 1.7},
		},
	}

	first := Compute(in)
	second := Compute(in)

	if !reflect.DeepEqual(first.ComponentCosts, second.ComponentCosts) ||
		first.MaterialsCostCents != second.MaterialsCostCents ||
		first.LaborCostCents != second.LaborCostCents ||
		first.TotalCostCents != second.TotalCostCents ||
		*first.ProfitAmountCents != *second.ProfitAmountCents ||
		*first.ProfitMarginPercent != *second.ProfitMarginPercent {
		t.Fatalf("recomputation diverged: %+v vs %+v", first, second)
	}
}
