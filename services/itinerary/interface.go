package itinerary

import (
	"context"

	"wayfare/models"
)

// ItineraryService is the single operation exposed to the surrounding CRUD
// layer.
type ItineraryService interface {
	Generate(ctx context.Context, req models.GenerationRequest) (*models.Itinerary, error)
}

// DraftGenerator produces an unvalidated candidate itinerary. A failure here
// is the only fatal error category of the pipeline.
type DraftGenerator interface {
	GenerateDraft(ctx context.Context, req models.GenerationRequest) (*models.Itinerary, error)
}

// RefinementOracle proposes better locations for low-confidence activities.
// A nil result with a nil error means the oracle had nothing to offer.
type RefinementOracle interface {
	RefineLocation(ctx context.Context, input models.RefinementInput) (*models.RefinementResult, error)
}

// DestinationClassifier overrides the internationality keyword heuristic
// when configured. Errors fall back silently to the heuristic.
type DestinationClassifier interface {
	Classify(ctx context.Context, destination string) (bool, error)
}

// Cache stores finished itineraries under the request fingerprint. Both
// operations are best-effort from the pipeline's point of view: a Get error
// is a miss, a Set error is logged and swallowed.
type Cache interface {
	Get(ctx context.Context, fingerprint string) (*models.Itinerary, error)
	Set(ctx context.Context, fingerprint string, it *models.Itinerary) error
}
