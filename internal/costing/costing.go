// Package costing computes product cost breakdowns from cents-denominated
// inputs. Every function is pure: no I/O, no shared state, safe to call
// concurrently. Inputs are assumed to have passed boundary validation; the
// only defensive path is the zero-quantity guard in ComponentCost.
package costing

import (
	"log"
	"math"
)

// Component carries the stored fields of one purchased component that matter
// to cost allocation.
type Component struct {
	UnitPriceCents     int64
	UnitQtyPerPack     float64
	UsageQtyPerProduct float64
}

// Input is a snapshot of the stored fields of a product.
type Input struct {
	LaborMinutes          int64
	LaborRateCentsPerHour int64
	SellingPriceCents     *int64
	Components            []Component
}

// Breakdown is the read-only result of a cost computation. Profit fields are
// nil when no selling price was supplied.
type Breakdown struct {
	ComponentCosts      []int64
	MaterialsCostCents  int64
	LaborCostCents      int64
	TotalCostCents      int64
	ProfitAmountCents   *int64
	ProfitMarginPercent *float64
}

// ComponentCost allocates the fraction of a pack's price consumed by one
// finished product. The final rounding is ceiling, never nearest: a
// fractional cent of material cost always charges the next whole cent.
func ComponentCost(c Component) int64 {
	if c.UnitQtyPerPack <= 0 || c.UsageQtyPerProduct <= 0 {
		// Validation rejects these before storage; reaching this guard
		// means a caller skipped the write boundary.
		log.Printf("costing: anomaly: non-positive quantity (pack=%v usage=%v), allocating 0", c.UnitQtyPerPack, c.UsageQtyPerProduct)
		return 0
	}
	perUnit := float64(c.UnitPriceCents) / c.UnitQtyPerPack
	return int64(math.Ceil(perUnit * c.UsageQtyPerProduct))
}

// LaborCost converts minutes at an hourly rate to cents, rounding half away
// from zero. Labor is an estimate, so nearest rounding is used here in
// contrast to the conservative ceiling applied to materials.
func LaborCost(minutes, rateCentsPerHour int64) int64 {
	hours := float64(minutes) / 60
	return int64(math.Round(float64(rateCentsPerHour) * hours))
}

// Compute derives the full cost breakdown for a product snapshot.
func Compute(in Input) Breakdown {
	b := Breakdown{
		ComponentCosts: make([]int64, 0, len(in.Components)),
	}
	for _, c := range in.Components {
		cost := ComponentCost(c)
		b.ComponentCosts = append(b.ComponentCosts, cost)
		b.MaterialsCostCents += cost
	}
	b.LaborCostCents = LaborCost(in.LaborMinutes, in.LaborRateCentsPerHour)
	b.TotalCostCents = b.MaterialsCostCents + b.LaborCostCents

	if in.SellingPriceCents != nil {
		amount := *in.SellingPriceCents - b.TotalCostCents
		margin := 0.0
		if b.TotalCostCents > 0 {
			margin = float64(amount) / float64(b.TotalCostCents) * 100
		}
		b.ProfitAmountCents = &amount
		b.ProfitMarginPercent = &margin
	}
	return b
}
