package models

import "encoding/json"

// GeoPoint is a WGS-84 coordinate pair.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Place is the result of a single geocoding lookup. Places are consumed
// within one pipeline invocation and never persisted.
type Place struct {
	Name       string          `json:"name"`
	Address    string          `json:"address,omitempty"`
	City       string          `json:"city,omitempty"`
	Location   *GeoPoint       `json:"location,omitempty"`
	Provider   string          `json:"provider"`
	Confidence float64         `json:"confidence"`
	Raw        json.RawMessage `json:"-"`
}

// RefinementInput is the context handed to the refinement oracle for one
// low-confidence activity.
type RefinementInput struct {
	Destination     string           `json:"destination"`
	ActivityTitle   string           `json:"activity_title"`
	Kind            ActivityKind     `json:"kind"`
	TimeSlot        string           `json:"time_slot,omitempty"`
	ExistingAddress string           `json:"existing_address,omitempty"`
	ExistingNote    string           `json:"existing_note,omitempty"`
	DayLabel        string           `json:"day_label,omitempty"`
	Recent          []RefinedContext `json:"recent,omitempty"`
}

// RefinedContext is one already-resolved activity from earlier in the same
// day, passed to the oracle so it can reason about geographic proximity.
type RefinedContext struct {
	Title    string    `json:"title"`
	Location *GeoPoint `json:"location,omitempty"`
}

// RefinementResult is the oracle's answer. Every field is optional; an empty
// result means the oracle had nothing useful.
type RefinementResult struct {
	RefinedName   string    `json:"refined_name,omitempty"`
	AddressHint   string    `json:"address_hint,omitempty"`
	SearchQueries []string  `json:"search_queries,omitempty"`
	Landmarks     []string  `json:"landmarks,omitempty"`
	Location      *GeoPoint `json:"location,omitempty"`
	Confidence    *float64  `json:"confidence,omitempty"`
	Reason        string    `json:"reason,omitempty"`
}
