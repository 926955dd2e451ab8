package itinerary

import (
	"context"
	"fmt"
	"sync"

	"wayfare/models"
	"wayfare/services/geo"
	"wayfare/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultItineraryService coordinates the enrichment pipeline: cache check,
// draft generation, per-day geocoding + refinement + media planning, budget
// reconciliation, cache write. Safe for concurrent use when reused as a
// long-lived instance; the classifier memo is the only mutable shared state.
type DefaultItineraryService struct {
	Drafter    DraftGenerator
	Geocoder   geo.Geocoder
	Refiner    RefinementOracle      // optional; without it low-confidence activities pass through
	Classifier DestinationClassifier // optional oracle override
	Cache      Cache                 // optional; failures degrade to misses

	// ImageryCredential marks whether a server-side imagery key exists. A
	// caller-supplied credential on the request has the same effect.
	ImageryCredential bool

	intlMu   sync.RWMutex
	intlMemo map[string]bool
}

func NewItineraryService(drafter DraftGenerator, geocoder geo.Geocoder, refiner RefinementOracle, classifier DestinationClassifier, cache Cache, imageryCredential bool) *DefaultItineraryService {
	return &DefaultItineraryService{
		Drafter:           drafter,
		Geocoder:          geocoder,
		Refiner:           refiner,
		Classifier:        classifier,
		Cache:             cache,
		ImageryCredential: imageryCredential,
		intlMemo:          make(map[string]bool),
	}
}

// Generate runs the full pipeline for one request. Only draft generation
// failures (or an invalid draft) surface as errors; every enrichment problem
// degrades to the unenriched input instead.
func (s *DefaultItineraryService) Generate(ctx context.Context, req models.GenerationRequest) (*models.Itinerary, error) {
	if err := ValidateRequest(req); err != nil {
		return nil, err
	}

	hasCredential := s.ImageryCredential || req.Credential != ""
	fingerprint := Fingerprint(req, hasCredential)
	logger := utils.GetLogger().With(
		zap.String("requestId", uuid.New().String()),
		zap.String("fingerprint", fingerprint[:12]),
		zap.String("destination", req.Destination),
	)

	if cached := s.cachedItinerary(ctx, fingerprint, logger); cached != nil {
		logger.Info("itinerary served from cache")
		return cached, nil
	}

	draft, err := s.Drafter.GenerateDraft(ctx, req)
	if err != nil {
		return nil, NewGenerationError("draft generation failed", err)
	}
	if err := ValidateItinerary(draft); err != nil {
		return nil, NewGenerationError("draft failed validation", err)
	}

	international := s.isInternational(ctx, draft.Destination)

	for i := range draft.DailyPlans {
		enriched, err := s.enrichDay(ctx, draft.Destination, draft.DailyPlans[i], international, hasCredential)
		if err != nil {
			logger.Warn("day enrichment failed, keeping unenriched day",
				zap.String("day", draft.DailyPlans[i].Day), zap.Error(err))
			continue
		}
		draft.DailyPlans[i] = enriched
	}

	ReconcileBudget(draft)

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, fingerprint, draft); err != nil {
			logger.Warn("itinerary cache write failed", zap.Error(err))
		}
	}

	logger.Info("itinerary generated",
		zap.Int("days", len(draft.DailyPlans)),
		zap.Bool("international", international))
	return draft, nil
}

// cachedItinerary returns a validated cache hit or nil. Read failures and
// corrupted entries are both treated as misses.
func (s *DefaultItineraryService) cachedItinerary(ctx context.Context, fingerprint string, logger *zap.Logger) *models.Itinerary {
	if s.Cache == nil {
		return nil
	}
	cached, err := s.Cache.Get(ctx, fingerprint)
	if err != nil {
		logger.Debug("itinerary cache read failed, treating as miss", zap.Error(err))
		return nil
	}
	if cached == nil {
		return nil
	}
	if err := ValidateItinerary(cached); err != nil {
		logger.Warn("corrupted itinerary cache entry, regenerating", zap.Error(err))
		return nil
	}
	return cached
}

// enrichDay runs the per-day stages on a copy, so any failure (including a
// panic from a provider client) falls back to the day as drafted.
func (s *DefaultItineraryService) enrichDay(ctx context.Context, destination string, day models.DailyPlan, international, hasCredential bool) (out models.DailyPlan, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("day enrichment panicked: %v", r)
		}
	}()

	acts := make([]models.Activity, len(day.Activities))
	copy(acts, day.Activities)

	acts = s.enrichActivities(ctx, destination, acts)
	acts = s.refineActivities(ctx, destination, day.Day, acts)
	acts = s.planMedia(destination, international, hasCredential, acts)

	day.Activities = acts
	return day, nil
}
