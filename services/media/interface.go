package media

import (
	"context"

	"wayfare/models"
)

// StreetImageryProvider fetches street-level frame URLs for a pending
// street-view request.
type StreetImageryProvider interface {
	FetchFrames(ctx context.Context, req models.StreetViewRequest, destinationHint string) ([]string, error)
}

// PhotoSearchProvider looks up photos by activity name.
type PhotoSearchProvider interface {
	SearchPhotos(ctx context.Context, req models.PhotoSearchRequest) ([]string, error)
}

// Mirror rehosts a remote image and returns the hosted URL, so itinerary
// photo links do not depend on short-lived provider URLs.
type Mirror interface {
	MirrorImage(ctx context.Context, sourceURL, folder string) (string, error)
}
