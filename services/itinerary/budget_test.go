package itinerary

import (
	"testing"

	"wayfare/models"
)

func f64(v float64) *float64 { return &v }

func TestReconcileBudget_SumsByCategory(t *testing.T) {
	it := &models.Itinerary{
		Destination: "Chengdu",
		Days:        1,
		DailyPlans: []models.DailyPlan{{
			Day: "Day 1",
			Activities: []models.Activity{
				{Kind: models.KindFood, Title: "Hotpot", CostEstimate: f64(100)},
				{Kind: models.KindTransport, Title: "Metro", CostEstimate: f64(200)},
				{Kind: models.KindOther, Title: "Souvenirs", CostEstimate: f64(50)},
			},
		}},
	}

	ReconcileBudget(it)

	bb := it.BudgetBreakdown
	if bb == nil {
		t.Fatal("expected budget breakdown")
	}
	if bb.Total != 350 {
		t.Fatalf("total = %v, want 350", bb.Total)
	}
	if bb.Food != 100 || bb.Transport != 200 || bb.Other != 50 {
		t.Fatalf("unexpected subtotals: %+v", bb)
	}
	if it.BudgetEstimate == nil || *it.BudgetEstimate != 350 {
		t.Fatalf("budget estimate = %v, want 350", it.BudgetEstimate)
	}
}

func TestReconcileBudget_OverwritesDraftTotals(t *testing.T) {
	it := &models.Itinerary{
		Destination:    "Chengdu",
		Days:           1,
		BudgetEstimate: f64(99999),
		BudgetBreakdown: &models.BudgetBreakdown{
			Total:    99999,
			Food:     12345,
			Currency: "JPY",
		},
		DailyPlans: []models.DailyPlan{{
			Day: "Day 1",
			Activities: []models.Activity{
				{Kind: models.KindHotel, Title: "Hotel", CostEstimate: f64(400)},
				{Kind: models.KindSight, Title: "Panda base", CostEstimate: f64(60)},
			},
		}},
	}

	ReconcileBudget(it)

	if it.BudgetBreakdown.Total != 460 {
		t.Fatalf("total = %v, want 460 (draft totals must not be trusted)", it.BudgetBreakdown.Total)
	}
	if it.BudgetBreakdown.Accommodation != 400 || it.BudgetBreakdown.Activities != 60 {
		t.Fatalf("unexpected subtotals: %+v", it.BudgetBreakdown)
	}
	if it.BudgetBreakdown.Currency != "JPY" {
		t.Fatalf("currency = %q, want draft currency preserved", it.BudgetBreakdown.Currency)
	}
	if *it.BudgetEstimate != 460 {
		t.Fatalf("estimate = %v, want 460", *it.BudgetEstimate)
	}
}

func TestReconcileBudget_DefaultsAndSkipsBadCosts(t *testing.T) {
	neg := -10.0
	it := &models.Itinerary{
		Destination: "Chengdu",
		Days:        1,
		DailyPlans: []models.DailyPlan{{
			Day: "Day 1",
			Activities: []models.Activity{
				{Kind: models.KindFood, Title: "Lunch", CostEstimate: f64(80)},
				{Kind: models.KindFood, Title: "Free sample", CostEstimate: &neg},
				{Kind: models.KindSight, Title: "Park"},
			},
		}},
	}

	ReconcileBudget(it)

	if it.BudgetBreakdown.Total != 80 {
		t.Fatalf("total = %v, want 80 (negative and absent costs skipped)", it.BudgetBreakdown.Total)
	}
	if it.BudgetBreakdown.Currency != defaultCurrency {
		t.Fatalf("currency = %q, want default %q", it.BudgetBreakdown.Currency, defaultCurrency)
	}
}
