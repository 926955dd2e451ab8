package itinerary

import (
	"context"
	"strings"

	"wayfare/models"
	"wayfare/services/geo"
	"wayfare/utils"

	"go.uber.org/zap"
)

// enrichActivities fills missing coordinates and addresses by geocoding each
// activity against a priority-ordered list of query terms. This stage never
// fails: a provider error or empty result leaves the activity untouched.
func (s *DefaultItineraryService) enrichActivities(ctx context.Context, destination string, acts []models.Activity) []models.Activity {
	logger := utils.GetLogger()

	for i := range acts {
		a := &acts[i]
		if a.HasCoordinates() && a.Address != "" {
			continue
		}

		for _, query := range geocodeQueries(destination, a) {
			place, err := s.Geocoder.Geocode(ctx, query, destination, geo.Options{ReferenceName: a.Title})
			if err != nil {
				logger.Debug("geocode lookup failed",
					zap.String("query", query), zap.Error(err))
				continue
			}
			if place == nil || place.Location == nil {
				continue
			}
			applyPlace(a, place)
			break
		}
	}
	return acts
}

// geocodeQueries builds the candidate query terms for one activity, most
// specific combination first.
func geocodeQueries(destination string, a *models.Activity) []string {
	candidates := []string{
		joinTerms(a.Title, a.Address),
		joinTerms(destination, a.Address),
		joinTerms(destination, a.Title),
		joinTerms(a.Title, a.Note),
		a.Address,
		a.Title,
		a.Note,
	}

	seen := make(map[string]struct{}, len(candidates))
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

func joinTerms(parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			kept = append(kept, p)
		}
	}
	if len(kept) < 2 {
		return ""
	}
	return strings.Join(kept, " ")
}

// applyPlace copies a geocode match onto the activity. Existing coordinates
// are kept; only gaps are filled. Confidence is deliberately left alone here,
// the refinement stage owns it.
func applyPlace(a *models.Activity, place *models.Place) {
	if !a.HasCoordinates() {
		lat, lng := place.Location.Lat, place.Location.Lng
		a.Lat, a.Lng = &lat, &lng
	}
	if a.Address == "" && place.Address != "" {
		a.Address = place.Address
	}
}
