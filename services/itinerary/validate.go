package itinerary

import (
	"fmt"
	"math"
	"strings"

	"wayfare/models"
)

const maxPhotosPerActivity = 6

// ValidateRequest rejects requests the pipeline cannot act on at all.
func ValidateRequest(req models.GenerationRequest) error {
	if strings.TrimSpace(req.Destination) == "" {
		return NewValidationError("destination", "must not be empty")
	}
	if req.Days < 0 {
		return NewValidationError("days", "must not be negative")
	}
	if req.Days == 0 && req.StartDate == "" {
		return NewValidationError("days", "either a day count or a date range is required")
	}
	return nil
}

// ValidateItinerary checks every structural invariant an itinerary must
// satisfy, both for freshly drafted payloads and for cache hits.
func ValidateItinerary(it *models.Itinerary) error {
	if it == nil {
		return NewValidationError("itinerary", "is nil")
	}
	if strings.TrimSpace(it.Destination) == "" {
		return NewValidationError("destination", "must not be empty")
	}
	if it.Days <= 0 {
		return NewValidationError("days", "must be positive")
	}
	for di := range it.DailyPlans {
		day := &it.DailyPlans[di]
		for ai := range day.Activities {
			if err := validateActivity(&day.Activities[ai]); err != nil {
				return fmt.Errorf("day %d activity %d: %w", di+1, ai+1, err)
			}
		}
	}
	return nil
}

func validateActivity(a *models.Activity) error {
	if !models.KnownKind(a.Kind) {
		return NewValidationError("kind", fmt.Sprintf("unknown kind %q", a.Kind))
	}
	if strings.TrimSpace(a.Title) == "" {
		return NewValidationError("title", "must not be empty")
	}
	if (a.Lat == nil) != (a.Lng == nil) {
		return NewValidationError("coordinates", "latitude and longitude must be set together")
	}
	if a.Lat != nil {
		if !ValidCoordinates(*a.Lat, *a.Lng) {
			return NewValidationError("coordinates", fmt.Sprintf("out of range: %v, %v", *a.Lat, *a.Lng))
		}
	}
	if a.CostEstimate != nil && (*a.CostEstimate < 0 || math.IsNaN(*a.CostEstimate) || math.IsInf(*a.CostEstimate, 0)) {
		return NewValidationError("cost_estimate", "must be a finite non-negative number")
	}
	if a.Confidence != nil && (*a.Confidence < 0 || *a.Confidence > 1 || math.IsNaN(*a.Confidence)) {
		return NewValidationError("confidence", "must be within [0, 1]")
	}
	if len(a.PhotoURLs) > maxPhotosPerActivity {
		return NewValidationError("photo_urls", fmt.Sprintf("at most %d photos", maxPhotosPerActivity))
	}
	return nil
}

// ValidCoordinates reports whether a lat/lng pair is finite and in range.
func ValidCoordinates(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lng) || math.IsInf(lng, 0) {
		return false
	}
	return math.Abs(lat) <= 90 && math.Abs(lng) <= 180
}
