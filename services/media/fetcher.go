package media

import (
	"context"
	"fmt"

	"wayfare/models"
	"wayfare/utils"

	"go.uber.org/zap"
)

// maxPhotosPerActivity mirrors the itinerary invariant: an activity never
// carries more than six photo URLs.
const maxPhotosPerActivity = 6

// Fetcher resolves the pending media plan of one activity into concrete
// photo URLs. Every provider failure is best-effort: whatever resolved
// before the failure is still returned.
type Fetcher struct {
	Street StreetImageryProvider
	Photos PhotoSearchProvider
	Mirror Mirror // optional; raw provider URLs are used when absent
}

// Resolve fans one activity's media plan out to the providers and returns the
// resulting URLs, capped so existing photos plus new ones stay within bounds.
func (f *Fetcher) Resolve(ctx context.Context, destination string, a models.Activity) ([]string, error) {
	if a.Media == nil {
		return nil, nil
	}
	logger := utils.GetLogger()

	budget := maxPhotosPerActivity - len(a.PhotoURLs)
	if budget <= 0 {
		return nil, nil
	}

	var urls []string
	if a.Media.StreetView != nil && f.Street != nil {
		frames, err := f.Street.FetchFrames(ctx, *a.Media.StreetView, destination)
		if err != nil {
			logger.Warn("street view fetch failed",
				zap.String("title", a.Title), zap.Error(err))
		}
		urls = append(urls, frames...)
	}
	if a.Media.PhotoSearch != nil && f.Photos != nil {
		photos, err := f.Photos.SearchPhotos(ctx, *a.Media.PhotoSearch)
		if err != nil {
			logger.Warn("photo search failed",
				zap.String("title", a.Title), zap.Error(err))
		}
		urls = append(urls, photos...)
	}

	if len(urls) > budget {
		urls = urls[:budget]
	}
	if f.Mirror == nil || len(urls) == 0 {
		return urls, nil
	}

	folder := fmt.Sprintf("itineraries/%s", utils.SlugifyFolder(destination))
	mirrored := make([]string, 0, len(urls))
	for _, u := range urls {
		hosted, err := f.Mirror.MirrorImage(ctx, u, folder)
		if err != nil {
			logger.Warn("image mirror failed", zap.Error(err))
			mirrored = append(mirrored, u)
			continue
		}
		mirrored = append(mirrored, hosted)
	}
	return mirrored, nil
}
