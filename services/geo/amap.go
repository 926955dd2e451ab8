package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"wayfare/models"
)

const amapGeocodeURL = "https://restapi.amap.com/v3/geocode/geo"

// AmapGeocoder resolves addresses through the Amap (Gaode) geocoding API,
// the primary map provider for the product's home region.
type AmapGeocoder struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
}

func NewAmapGeocoder(apiKey string) *AmapGeocoder {
	return &AmapGeocoder{
		APIKey:  apiKey,
		BaseURL: amapGeocodeURL,
		Client:  &http.Client{Timeout: 5 * time.Second},
	}
}

type amapGeocodeResponse struct {
	Status   string `json:"status"`
	Info     string `json:"info"`
	Geocodes []struct {
		FormattedAddress string `json:"formatted_address"`
		City             any    `json:"city"` // string, or empty array when unknown
		Location         string `json:"location"`
		Level            string `json:"level"`
	} `json:"geocodes"`
}

// amapLevelConfidence maps Amap's match granularity to a confidence score.
var amapLevelConfidence = map[string]float64{
	"门牌号": 0.92,
	"兴趣点": 0.88,
	"道路":  0.7,
	"乡镇":  0.6,
	"村庄":  0.55,
	"区县":  0.5,
	"市":   0.4,
	"省":   0.3,
}

func (g *AmapGeocoder) Geocode(ctx context.Context, query, destinationHint string, opts Options) (*models.Place, error) {
	params := url.Values{}
	params.Set("address", query)
	params.Set("key", g.APIKey)
	if destinationHint != "" {
		params.Set("city", destinationHint)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := g.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("amap geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("amap geocode read failed: %w", err)
	}

	var decoded amapGeocodeResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("amap geocode decode failed: %w", err)
	}
	if decoded.Status != "1" || len(decoded.Geocodes) == 0 {
		return nil, nil
	}

	best := decoded.Geocodes[0]
	loc, ok := parseAmapLocation(best.Location)
	if !ok {
		return nil, nil
	}

	confidence, ok := amapLevelConfidence[best.Level]
	if !ok {
		confidence = 0.5
	}
	if opts.MinConfidence > 0 && confidence < opts.MinConfidence {
		return nil, nil
	}

	city := ""
	if s, ok := best.City.(string); ok {
		city = s
	}

	name := opts.ReferenceName
	if name == "" {
		name = query
	}

	return &models.Place{
		Name:       name,
		Address:    best.FormattedAddress,
		City:       city,
		Location:   loc,
		Provider:   "amap",
		Confidence: confidence,
		Raw:        body,
	}, nil
}

// parseAmapLocation splits Amap's "lng,lat" location string.
func parseAmapLocation(s string) (*models.GeoPoint, bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, false
	}
	lng, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lat, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err1 != nil || err2 != nil {
		return nil, false
	}
	return &models.GeoPoint{Lat: lat, Lng: lng}, true
}
