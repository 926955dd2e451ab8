package geo

import (
	"context"

	"wayfare/models"
)

// Options tunes a single geocode lookup.
type Options struct {
	// ReferenceName is the activity title the query was derived from; providers
	// may use it to bias result scoring.
	ReferenceName string
	// MinConfidence discards matches scored below it. Zero means no floor.
	MinConfidence float64
}

// Geocoder resolves a free-text query to a Place. A nil Place with a nil
// error means the provider found no match; callers treat provider errors the
// same way (no match, not a transient fault to retry).
type Geocoder interface {
	Geocode(ctx context.Context, query, destinationHint string, opts Options) (*models.Place, error)
}
