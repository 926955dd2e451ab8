package media

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"wayfare/models"
)

const (
	placeSearchURL = "https://maps.googleapis.com/maps/api/place/textsearch/json"
	placePhotoURL  = "https://maps.googleapis.com/maps/api/place/photo"
)

// GooglePlacePhotos implements name-based photo search through the Places
// Text Search API.
type GooglePlacePhotos struct {
	APIKey string
	Client *http.Client
}

func NewGooglePlacePhotos(apiKey string) *GooglePlacePhotos {
	return &GooglePlacePhotos{
		APIKey: apiKey,
		Client: &http.Client{Timeout: 5 * time.Second},
	}
}

type placeSearchResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Photos []struct {
			PhotoReference string `json:"photo_reference"`
		} `json:"photos"`
	} `json:"results"`
}

func (p *GooglePlacePhotos) SearchPhotos(ctx context.Context, req models.PhotoSearchRequest) ([]string, error) {
	query := req.Query
	if req.DestinationHint != "" {
		query = req.DestinationHint + " " + query
	}
	params := url.Values{}
	params.Set("query", query)
	params.Set("key", p.APIKey)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, placeSearchURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := p.Client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("place search request failed: %w", err)
	}
	defer resp.Body.Close()

	var decoded placeSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("place search decode failed: %w", err)
	}
	if decoded.Status != "OK" || len(decoded.Results) == 0 {
		return nil, nil
	}

	max := req.MaxPhotos
	if max <= 0 {
		max = 3
	}

	var photos []string
	for _, ref := range decoded.Results[0].Photos {
		if ref.PhotoReference == "" {
			continue
		}
		photos = append(photos, p.photoURL(ref.PhotoReference))
		if len(photos) == max {
			break
		}
	}
	return photos, nil
}

func (p *GooglePlacePhotos) photoURL(reference string) string {
	params := url.Values{}
	params.Set("maxwidth", "800")
	params.Set("photo_reference", reference)
	params.Set("key", p.APIKey)
	return placePhotoURL + "?" + params.Encode()
}
