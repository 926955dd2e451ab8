package itinerary

import (
	"regexp"

	"wayfare/models"
)

// highConfidence gates any imagery request: only locations we already trust
// are worth spending imagery quota on.
const highConfidence = 0.8

// maxSearchPhotos caps the name-based photo lookup per activity.
const maxSearchPhotos = 3

// Bounding box of the primary map provider's home coverage region (mainland
// plus near coastal waters). Coordinates outside it count as foreign for the
// street-level imagery decision.
const (
	homeLatMin = 17.5
	homeLatMax = 53.6
	homeLngMin = 73.4
	homeLngMax = 135.1
)

func inHomeRegion(lat, lng float64) bool {
	return lat >= homeLatMin && lat <= homeLatMax && lng >= homeLngMin && lng <= homeLngMax
}

// addressPatterns pull address-shaped fragments out of free-text notes:
// Han street/number forms and Latin "123 Some Street" forms.
var addressPatterns = []*regexp.Regexp{
	regexp.MustCompile(`[\p{Han}0-9]{2,}(?:路|街|道|巷|大道|大街)[0-9０-９]*号?`),
	regexp.MustCompile(`\d+[A-Za-z]?\s+[A-Za-z][A-Za-z.\- ]*(?:Street|St|Avenue|Ave|Road|Rd|Boulevard|Blvd|Lane|Ln|Drive|Dr)\.?\b`),
}

// planMedia decides, per activity, the two independent pending imagery
// requests and attaches them for the downstream media worker. Without an
// imagery credential no pending request survives.
func (s *DefaultItineraryService) planMedia(destination string, international, hasCredential bool, acts []models.Activity) []models.Activity {
	for i := range acts {
		a := &acts[i]
		a.Media = nil

		plan := models.MediaPlan{
			StreetView:  planStreetView(a, international),
			PhotoSearch: planPhotoSearch(a, destination, international),
		}
		if plan.StreetView != nil || plan.PhotoSearch != nil {
			a.Media = &plan
		}
	}

	if !hasCredential {
		for i := range acts {
			acts[i].Media = nil
		}
	}
	return acts
}

func planStreetView(a *models.Activity, international bool) *models.StreetViewRequest {
	if a.Confidence == nil || *a.Confidence < highConfidence {
		return nil
	}

	if a.HasCoordinates() && !inHomeRegion(*a.Lat, *a.Lng) {
		return &models.StreetViewRequest{Lat: a.Lat, Lng: a.Lng, Candidates: addressCandidates(a)}
	}

	if international {
		if candidates := addressCandidates(a); len(candidates) > 0 {
			req := &models.StreetViewRequest{Candidates: candidates}
			if a.HasCoordinates() {
				req.Lat, req.Lng = a.Lat, a.Lng
			}
			return req
		}
	}
	return nil
}

func planPhotoSearch(a *models.Activity, destination string, international bool) *models.PhotoSearchRequest {
	if len(a.PhotoURLs) > 0 || a.HasCoordinates() || a.Address != "" {
		return nil
	}
	if a.Confidence == nil || *a.Confidence < highConfidence {
		return nil
	}
	if !international && containsHan(a.Title) {
		return nil
	}
	return &models.PhotoSearchRequest{
		Query:           a.Title,
		DestinationHint: destination,
		MaxPhotos:       maxSearchPhotos,
	}
}

// addressCandidates derives street-view lookup candidates from the address
// field, falling back to address-shaped fragments in the note.
func addressCandidates(a *models.Activity) []string {
	if a.Address != "" {
		return []string{a.Address}
	}
	var out []string
	for _, pattern := range addressPatterns {
		for _, m := range pattern.FindAllString(a.Note, 2) {
			out = append(out, m)
			if len(out) == 2 {
				return out
			}
		}
	}
	return out
}
