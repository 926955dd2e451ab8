package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"wayfare/models"
)

const googleGeocodeURL = "https://maps.googleapis.com/maps/api/geocode/json"

// GoogleGeocoder resolves addresses through the Google Geocoding API.
type GoogleGeocoder struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
}

func NewGoogleGeocoder(apiKey string) *GoogleGeocoder {
	return &GoogleGeocoder{
		APIKey:  apiKey,
		BaseURL: googleGeocodeURL,
		Client:  &http.Client{Timeout: 5 * time.Second},
	}
}

type googleGeocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		FormattedAddress string `json:"formatted_address"`
		PartialMatch     bool   `json:"partial_match"`
		Geometry         struct {
			LocationType string `json:"location_type"`
			Location     struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// googleLocationTypeConfidence scores Google's geometry precision.
var googleLocationTypeConfidence = map[string]float64{
	"ROOFTOP":            0.95,
	"RANGE_INTERPOLATED": 0.8,
	"GEOMETRIC_CENTER":   0.65,
	"APPROXIMATE":        0.5,
}

func (g *GoogleGeocoder) Geocode(ctx context.Context, query, destinationHint string, opts Options) (*models.Place, error) {
	address := query
	if destinationHint != "" {
		address = destinationHint + " " + query
	}
	params := url.Values{}
	params.Set("address", address)
	params.Set("key", g.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := g.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("google geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("google geocode read failed: %w", err)
	}

	var decoded googleGeocodeResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("google geocode decode failed: %w", err)
	}
	if decoded.Status != "OK" || len(decoded.Results) == 0 {
		return nil, nil
	}

	best := decoded.Results[0]
	confidence, ok := googleLocationTypeConfidence[best.Geometry.LocationType]
	if !ok {
		confidence = 0.5
	}
	if best.PartialMatch {
		confidence -= 0.15
	}
	if opts.MinConfidence > 0 && confidence < opts.MinConfidence {
		return nil, nil
	}

	name := opts.ReferenceName
	if name == "" {
		name = query
	}

	return &models.Place{
		Name:    name,
		Address: best.FormattedAddress,
		Location: &models.GeoPoint{
			Lat: best.Geometry.Location.Lat,
			Lng: best.Geometry.Location.Lng,
		},
		Provider:   "google",
		Confidence: confidence,
		Raw:        body,
	}, nil
}
