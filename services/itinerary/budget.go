package itinerary

import (
	"math"

	"wayfare/models"
)

// defaultCurrency is used when the draft does not declare one.
const defaultCurrency = "CNY"

// ReconcileBudget recomputes the itinerary budget strictly from itemized
// activity costs and overwrites whatever totals the draft generator reported.
// The generator's self-reported numbers are never trusted.
func ReconcileBudget(it *models.Itinerary) {
	var breakdown models.BudgetBreakdown

	for di := range it.DailyPlans {
		for ai := range it.DailyPlans[di].Activities {
			a := &it.DailyPlans[di].Activities[ai]
			if a.CostEstimate == nil {
				continue
			}
			cost := *a.CostEstimate
			if cost < 0 || math.IsNaN(cost) || math.IsInf(cost, 0) {
				continue
			}

			breakdown.Total += cost
			switch a.Kind {
			case models.KindHotel:
				breakdown.Accommodation += cost
			case models.KindTransport:
				breakdown.Transport += cost
			case models.KindFood:
				breakdown.Food += cost
			case models.KindSight:
				breakdown.Activities += cost
			default:
				breakdown.Other += cost
			}
		}
	}

	breakdown.Currency = defaultCurrency
	if it.BudgetBreakdown != nil && it.BudgetBreakdown.Currency != "" {
		breakdown.Currency = it.BudgetBreakdown.Currency
	}

	total := breakdown.Total
	it.BudgetBreakdown = &breakdown
	it.BudgetEstimate = &total
}
