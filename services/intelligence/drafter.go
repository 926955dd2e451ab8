package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"wayfare/models"
)

// GeminiDrafter produces unvalidated candidate itineraries from trip
// parameters. Its output is always re-validated by the orchestrator before
// any enrichment runs.
type GeminiDrafter struct {
	Client *GeminiClient
}

func NewGeminiDrafter(client *GeminiClient) *GeminiDrafter {
	return &GeminiDrafter{Client: client}
}

const draftPromptTemplate = `You are a travel planner. Produce a day-by-day trip itinerary as a single JSON object, no commentary.

Schema:
{
  "destination": string,
  "days": int,
  "budget_estimate": number (optional),
  "budget_breakdown": {"total": number, "accommodation": number, "transport": number, "food": number, "activities": number, "other": number, "currency": string} (optional),
  "daily_plans": [{"day": string, "activities": [{"kind": "sight"|"food"|"transport"|"hotel"|"other", "title": string, "time_slot": string, "note": string, "address": string, "lat": number, "lng": number, "cost_estimate": number}]}],
  "tips": [string]
}

Rules: every activity needs a kind and a non-empty title. Include lat/lng only when you are certain. Itemize cost_estimate per activity in the trip currency.

Trip parameters:
%s`

func (d *GeminiDrafter) GenerateDraft(ctx context.Context, req models.GenerationRequest) (*models.Itinerary, error) {
	params, err := json.Marshal(draftParams(req))
	if err != nil {
		return nil, fmt.Errorf("drafter: marshal params: %w", err)
	}

	reply, err := d.Client.GenerateContent(ctx, fmt.Sprintf(draftPromptTemplate, params))
	if err != nil {
		return nil, fmt.Errorf("drafter: %w", err)
	}

	raw := extractJSON(reply)
	if raw == "" {
		return nil, fmt.Errorf("drafter: no JSON object in model reply")
	}

	var draft models.Itinerary
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		return nil, fmt.Errorf("drafter: decode draft: %w", err)
	}

	// Backfill fields the model tends to omit.
	if strings.TrimSpace(draft.Destination) == "" {
		draft.Destination = req.Destination
	}
	if draft.Days == 0 {
		draft.Days = len(draft.DailyPlans)
	}
	if len(draft.Preferences) == 0 {
		draft.Preferences = req.Preferences
	}
	return &draft, nil
}

// draftParams strips the caller credential before the request reaches the
// drafting service.
func draftParams(req models.GenerationRequest) map[string]any {
	p := map[string]any{
		"destination": req.Destination,
	}
	if req.Days > 0 {
		p["days"] = req.Days
	}
	if req.StartDate != "" {
		p["start_date"] = req.StartDate
	}
	if req.EndDate != "" {
		p["end_date"] = req.EndDate
	}
	if req.Budget > 0 {
		p["budget"] = req.Budget
	}
	if req.PartySize > 0 {
		p["party_size"] = req.PartySize
	}
	if len(req.Preferences) > 0 {
		p["preferences"] = req.Preferences
	}
	if req.Origin != "" {
		p["origin"] = req.Origin
	}
	if req.OriginLat != nil && req.OriginLng != nil {
		p["origin_lat"] = *req.OriginLat
		p["origin_lng"] = *req.OriginLng
	}
	return p
}
