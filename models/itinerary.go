package models

// ActivityKind categorizes a single itinerary entry.
type ActivityKind string

const (
	KindSight     ActivityKind = "sight"
	KindFood      ActivityKind = "food"
	KindTransport ActivityKind = "transport"
	KindHotel     ActivityKind = "hotel"
	KindOther     ActivityKind = "other"
)

// KnownKind reports whether k is one of the supported activity kinds.
func KnownKind(k ActivityKind) bool {
	switch k {
	case KindSight, KindFood, KindTransport, KindHotel, KindOther:
		return true
	}
	return false
}

// GenerationRequest is the immutable input to the enrichment pipeline.
// It is only ever read and hashed; the pipeline never mutates it.
type GenerationRequest struct {
	Destination string   `json:"destination"`
	Days        int      `json:"days,omitempty"`
	StartDate   string   `json:"start_date,omitempty"`
	EndDate     string   `json:"end_date,omitempty"`
	Budget      float64  `json:"budget,omitempty"`
	PartySize   int      `json:"party_size,omitempty"`
	Preferences []string `json:"preferences,omitempty"`
	Origin      string   `json:"origin,omitempty"`
	OriginLat   *float64 `json:"origin_lat,omitempty"`
	OriginLng   *float64 `json:"origin_lng,omitempty"`

	// Credential is an optional caller-supplied imagery key. Its presence
	// enables media planning; the value itself is never cached or hashed.
	Credential string `json:"credential,omitempty"`
}

// Itinerary is the finished, enriched trip plan returned to the caller
// and written to the fingerprint cache.
type Itinerary struct {
	Destination     string           `json:"destination"`
	Days            int              `json:"days"`
	BudgetEstimate  *float64         `json:"budget_estimate,omitempty"`
	BudgetBreakdown *BudgetBreakdown `json:"budget_breakdown,omitempty"`
	Preferences     []string         `json:"preferences,omitempty"`
	DailyPlans      []DailyPlan      `json:"daily_plans"`
	Tips            []string         `json:"tips,omitempty"`
}

// DailyPlan is one day of the itinerary. Activity order is chronological
// and preserved through every pipeline stage.
type DailyPlan struct {
	Day        string     `json:"day"`
	Activities []Activity `json:"activities"`
}

// Activity is a single itinerary entry.
type Activity struct {
	Kind         ActivityKind `json:"kind"`
	Title        string       `json:"title"`
	TimeSlot     string       `json:"time_slot,omitempty"`
	Note         string       `json:"note,omitempty"`
	Address      string       `json:"address,omitempty"`
	Lat          *float64     `json:"lat,omitempty"`
	Lng          *float64     `json:"lng,omitempty"`
	CostEstimate *float64     `json:"cost_estimate,omitempty"`
	Confidence   *float64     `json:"confidence,omitempty"`
	PhotoURLs    []string     `json:"photo_urls,omitempty"`

	// Media holds deferred imagery requests attached by the media planner,
	// resolved later by the media worker.
	Media *MediaPlan `json:"media,omitempty"`
}

// HasCoordinates reports whether both latitude and longitude are present.
func (a *Activity) HasCoordinates() bool {
	return a.Lat != nil && a.Lng != nil
}

// BudgetBreakdown carries the reconciled totals. After reconciliation the
// total always equals the sum of the present category subtotals, which in
// turn equals the sum of every itemized activity cost.
type BudgetBreakdown struct {
	Total         float64 `json:"total"`
	Accommodation float64 `json:"accommodation,omitempty"`
	Transport     float64 `json:"transport,omitempty"`
	Food          float64 `json:"food,omitempty"`
	Activities    float64 `json:"activities,omitempty"`
	Other         float64 `json:"other,omitempty"`
	Currency      string  `json:"currency,omitempty"`
}

// MediaPlan holds up to two independent pending imagery requests.
type MediaPlan struct {
	StreetView  *StreetViewRequest  `json:"street_view,omitempty"`
	PhotoSearch *PhotoSearchRequest `json:"photo_search,omitempty"`
}

// StreetViewRequest asks for street-level frames near an activity, either by
// coordinate or by one of the derived address candidates.
type StreetViewRequest struct {
	Lat        *float64 `json:"lat,omitempty"`
	Lng        *float64 `json:"lng,omitempty"`
	Candidates []string `json:"candidates,omitempty"`
}

// PhotoSearchRequest asks for a name-based photo lookup.
type PhotoSearchRequest struct {
	Query           string `json:"query"`
	DestinationHint string `json:"destination_hint,omitempty"`
	MaxPhotos       int    `json:"max_photos"`
}
