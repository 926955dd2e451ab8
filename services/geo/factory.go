package geo

import "fmt"

// NewGeocoder selects a geocoding provider by its configuration name.
func NewGeocoder(provider, amapKey, googleKey string) (Geocoder, error) {
	switch provider {
	case "amap", "":
		if amapKey == "" {
			return nil, fmt.Errorf("geo: amap geocoder selected but AMAP_API_KEY is empty")
		}
		return NewAmapGeocoder(amapKey), nil
	case "google":
		if googleKey == "" {
			return nil, fmt.Errorf("geo: google geocoder selected but GOOGLE_API_KEY is empty")
		}
		return NewGoogleGeocoder(googleKey), nil
	default:
		return nil, fmt.Errorf("geo: unknown geocoder provider %q", provider)
	}
}
