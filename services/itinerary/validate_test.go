package itinerary

import (
	"math"
	"strings"
	"testing"

	"wayfare/models"
)

func TestValidateRequest(t *testing.T) {
	cases := []struct {
		name string
		req  models.GenerationRequest
		ok   bool
	}{
		{"destination and days", models.GenerationRequest{Destination: "Chengdu", Days: 2}, true},
		{"destination and date range", models.GenerationRequest{Destination: "Chengdu", StartDate: "2026-09-01", EndDate: "2026-09-03"}, true},
		{"blank destination", models.GenerationRequest{Destination: "  ", Days: 2}, false},
		{"negative days", models.GenerationRequest{Destination: "Chengdu", Days: -1}, false},
		{"no duration at all", models.GenerationRequest{Destination: "Chengdu"}, false},
	}
	for _, tc := range cases {
		err := ValidateRequest(tc.req)
		if (err == nil) != tc.ok {
			t.Errorf("%s: ValidateRequest = %v, want ok=%v", tc.name, err, tc.ok)
		}
	}
}

func TestValidateItinerary_ActivityInvariants(t *testing.T) {
	base := func() *models.Itinerary {
		return &models.Itinerary{
			Destination: "Chengdu",
			Days:        1,
			DailyPlans: []models.DailyPlan{{
				Day:        "Day 1",
				Activities: []models.Activity{{Kind: models.KindSight, Title: "Panda Base"}},
			}},
		}
	}

	if err := ValidateItinerary(base()); err != nil {
		t.Fatalf("valid itinerary rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(a *models.Activity)
	}{
		{"unknown kind", func(a *models.Activity) { a.Kind = "teleportation" }},
		{"blank title", func(a *models.Activity) { a.Title = " " }},
		{"unpaired coordinates", func(a *models.Activity) { a.Lat = f64(30) }},
		{"latitude out of range", func(a *models.Activity) { a.Lat, a.Lng = f64(91), f64(0) }},
		{"nan longitude", func(a *models.Activity) { a.Lat, a.Lng = f64(0), f64(math.NaN()) }},
		{"negative cost", func(a *models.Activity) { a.CostEstimate = f64(-1) }},
		{"confidence above one", func(a *models.Activity) { a.Confidence = f64(1.5) }},
		{"too many photos", func(a *models.Activity) { a.PhotoURLs = make([]string, maxPhotosPerActivity+1) }},
	}
	for _, tc := range cases {
		it := base()
		tc.mutate(&it.DailyPlans[0].Activities[0])
		err := ValidateItinerary(it)
		if err == nil {
			t.Errorf("%s: expected rejection", tc.name)
			continue
		}
		if !strings.Contains(err.Error(), "day 1 activity 1") {
			t.Errorf("%s: error should locate the activity, got %q", tc.name, err)
		}
	}
}

func TestValidateItinerary_TopLevel(t *testing.T) {
	if err := ValidateItinerary(nil); err == nil {
		t.Fatal("nil itinerary must be rejected")
	}
	if err := ValidateItinerary(&models.Itinerary{Destination: "Chengdu", Days: 0}); err == nil {
		t.Fatal("non-positive day count must be rejected")
	}
	if err := ValidateItinerary(&models.Itinerary{Destination: "", Days: 1}); err == nil {
		t.Fatal("blank destination must be rejected")
	}
}
