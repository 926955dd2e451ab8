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
	streetViewImageURL    = "https://maps.googleapis.com/maps/api/streetview"
	streetViewMetadataURL = "https://maps.googleapis.com/maps/api/streetview/metadata"
)

// GoogleStreetView resolves street-view requests through the Street View
// Static API. Each location is checked against the metadata endpoint first so
// we never hand out URLs of gray "no imagery" placeholders.
type GoogleStreetView struct {
	APIKey string
	Client *http.Client
}

func NewGoogleStreetView(apiKey string) *GoogleStreetView {
	return &GoogleStreetView{
		APIKey: apiKey,
		Client: &http.Client{Timeout: 5 * time.Second},
	}
}

func (p *GoogleStreetView) FetchFrames(ctx context.Context, req models.StreetViewRequest, destinationHint string) ([]string, error) {
	var locations []string
	if req.Lat != nil && req.Lng != nil {
		locations = append(locations, fmt.Sprintf("%f,%f", *req.Lat, *req.Lng))
	}
	for _, c := range req.Candidates {
		if destinationHint != "" {
			c = destinationHint + " " + c
		}
		locations = append(locations, c)
	}

	var frames []string
	for _, loc := range locations {
		ok, err := p.hasImagery(ctx, loc)
		if err != nil {
			return frames, err
		}
		if !ok {
			continue
		}
		frames = append(frames, p.imageURL(loc))
		if len(frames) == 2 {
			break
		}
	}
	return frames, nil
}

func (p *GoogleStreetView) hasImagery(ctx context.Context, location string) (bool, error) {
	params := url.Values{}
	params.Set("location", location)
	params.Set("key", p.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, streetViewMetadataURL+"?"+params.Encode(), nil)
	if err != nil {
		return false, err
	}
	resp, err := p.Client.Do(req)
	if err != nil {
		return false, fmt.Errorf("street view metadata request failed: %w", err)
	}
	defer resp.Body.Close()

	var meta struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&meta); err != nil {
		return false, fmt.Errorf("street view metadata decode failed: %w", err)
	}
	return meta.Status == "OK", nil
}

func (p *GoogleStreetView) imageURL(location string) string {
	params := url.Values{}
	params.Set("size", "640x400")
	params.Set("location", location)
	params.Set("key", p.APIKey)
	return streetViewImageURL + "?" + params.Encode()
}
