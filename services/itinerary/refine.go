package itinerary

import (
	"context"
	"strings"

	"wayfare/models"
	"wayfare/services/geo"
	"wayfare/utils"

	"go.uber.org/zap"
)

const (
	// lowConfidence is the threshold below which a geocoded match is not
	// trusted and refinement kicks in.
	lowConfidence = 0.45
	// refinementFloor is the minimum confidence assigned to any location the
	// refinement stage accepts. Confidence never decreases through refinement.
	refinementFloor = 0.35
	// maxCandidateQueries bounds the oracle-proposed re-geocode attempts.
	maxCandidateQueries = 6
	// refineContextWindow is how many already-resolved activities of the same
	// day are passed to the oracle as geographic context.
	refineContextWindow = 3
)

// aiLocationDisclaimer is appended to the note of every activity whose
// location was AI-assisted, so downstream UI can flag it for verification.
const aiLocationDisclaimer = "Location AI-assisted, please verify before visiting."

// needsRefinement is the predicate gating the refinement stage.
func needsRefinement(a *models.Activity) bool {
	return !a.HasCoordinates() || a.Confidence == nil || *a.Confidence < lowConfidence
}

// refineActivities runs the oracle-assisted fallback chain over one day, in
// order, threading resolved activities forward as context for later ones.
func (s *DefaultItineraryService) refineActivities(ctx context.Context, destination, dayLabel string, acts []models.Activity) []models.Activity {
	if s.Refiner == nil {
		return acts
	}
	var recent []models.RefinedContext

	for i := range acts {
		if needsRefinement(&acts[i]) {
			acts[i] = s.refineActivity(ctx, destination, dayLabel, acts[i], recent)
		}

		if acts[i].HasCoordinates() {
			recent = append(recent, models.RefinedContext{
				Title:    acts[i].Title,
				Location: &models.GeoPoint{Lat: *acts[i].Lat, Lng: *acts[i].Lng},
			})
			if len(recent) > refineContextWindow {
				recent = recent[len(recent)-refineContextWindow:]
			}
		}
	}
	return acts
}

// refineStrategy is one tier of the fallback chain. It returns the refined
// activity and whether it handled it; unhandled activities fall through to
// the next tier.
type refineStrategy func(ctx context.Context, destination string, a models.Activity, res *models.RefinementResult) (models.Activity, bool)

// refineActivity consults the oracle once and walks the fallback tiers:
// direct coordinates, re-geocoding the oracle's candidate queries, then
// note-only annotation. Any error leaves the activity exactly as it entered.
func (s *DefaultItineraryService) refineActivity(ctx context.Context, destination, dayLabel string, a models.Activity, recent []models.RefinedContext) models.Activity {
	logger := utils.GetLogger()

	res, err := s.Refiner.RefineLocation(ctx, models.RefinementInput{
		Destination:     destination,
		ActivityTitle:   a.Title,
		Kind:            a.Kind,
		TimeSlot:        a.TimeSlot,
		ExistingAddress: a.Address,
		ExistingNote:    a.Note,
		DayLabel:        dayLabel,
		Recent:          recent,
	})
	if err != nil {
		logger.Debug("location refinement failed",
			zap.String("title", a.Title), zap.Error(err))
		return a
	}
	if res == nil {
		return a
	}

	strategies := []refineStrategy{
		adoptOracleCoordinates,
		s.regeocodeCandidates,
		adoptHintsOnly,
	}
	for _, strategy := range strategies {
		if refined, ok := strategy(ctx, destination, a, res); ok {
			return refined
		}
	}
	return a
}

// adoptOracleCoordinates accepts coordinates the oracle is confident about.
func adoptOracleCoordinates(_ context.Context, _ string, a models.Activity, res *models.RefinementResult) (models.Activity, bool) {
	if res.Location == nil || !ValidCoordinates(res.Location.Lat, res.Location.Lng) {
		return a, false
	}

	lat, lng := res.Location.Lat, res.Location.Lng
	a.Lat, a.Lng = &lat, &lng
	raiseConfidence(&a, res.Confidence)
	annotateRefined(&a, res)
	return a, true
}

// regeocodeCandidates retries geocoding against the oracle's hints: refined
// name first, then the destination-prefixed address hint, then each candidate
// search query, capped and deduplicated.
func (s *DefaultItineraryService) regeocodeCandidates(ctx context.Context, destination string, a models.Activity, res *models.RefinementResult) (models.Activity, bool) {
	terms := candidateTerms(destination, res)
	if len(terms) == 0 {
		return a, false
	}

	for _, term := range terms {
		place, err := s.Geocoder.Geocode(ctx, term, destination, geo.Options{ReferenceName: a.Title})
		if err != nil || place == nil || place.Location == nil {
			continue
		}
		lat, lng := place.Location.Lat, place.Location.Lng
		if !ValidCoordinates(lat, lng) {
			continue
		}
		a.Lat, a.Lng = &lat, &lng
		if place.Address != "" {
			a.Address = place.Address
		}
		conf := place.Confidence
		raiseConfidence(&a, &conf)
		annotateRefined(&a, res)
		return a, true
	}
	return a, false
}

// adoptHintsOnly is the terminal tier: no coordinates are invented, but the
// landmark/reasoning annotations still land in the note and an address hint
// becomes the fallback address.
func adoptHintsOnly(_ context.Context, _ string, a models.Activity, res *models.RefinementResult) (models.Activity, bool) {
	if len(res.Landmarks) == 0 && res.Reason == "" && res.AddressHint == "" {
		return a, false
	}
	if res.AddressHint != "" && a.Address == "" {
		a.Address = res.AddressHint
	}
	annotateHints(&a, res)
	return a, true
}

func candidateTerms(destination string, res *models.RefinementResult) []string {
	raw := make([]string, 0, 2+len(res.SearchQueries))
	if res.RefinedName != "" {
		raw = append(raw, res.RefinedName)
	}
	if res.AddressHint != "" {
		raw = append(raw, strings.TrimSpace(destination+" "+res.AddressHint))
	}
	raw = append(raw, res.SearchQueries...)

	seen := make(map[string]struct{}, len(raw))
	terms := make([]string, 0, len(raw))
	for _, t := range raw {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		terms = append(terms, t)
		if len(terms) == maxCandidateQueries {
			break
		}
	}
	return terms
}

// raiseConfidence clamps the activity's confidence to at least the refinement
// floor and the proposed score, never lowering an existing value.
func raiseConfidence(a *models.Activity, proposed *float64) {
	conf := refinementFloor
	if proposed != nil && *proposed > conf {
		conf = *proposed
	}
	if a.Confidence != nil && *a.Confidence > conf {
		conf = *a.Confidence
	}
	if conf > 1 {
		conf = 1
	}
	a.Confidence = &conf
}

// annotateRefined appends the AI-assisted disclaimer plus any landmark and
// reasoning text to the activity note.
func annotateRefined(a *models.Activity, res *models.RefinementResult) {
	appendNote(a, aiLocationDisclaimer)
	annotateHints(a, res)
}

func annotateHints(a *models.Activity, res *models.RefinementResult) {
	if len(res.Landmarks) > 0 {
		appendNote(a, "Nearby: "+strings.Join(res.Landmarks, ", "))
	}
	if res.Reason != "" {
		appendNote(a, res.Reason)
	}
}

func appendNote(a *models.Activity, text string) {
	if text == "" || strings.Contains(a.Note, text) {
		return
	}
	if a.Note == "" {
		a.Note = text
		return
	}
	a.Note = a.Note + " " + text
}
