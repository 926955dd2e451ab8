package intelligence

import (
	"context"
	"encoding/json"
	"fmt"

	"wayfare/models"
)

// GeminiRefiner is the secondary location oracle. Given a low-confidence
// activity and its day context, it proposes better coordinates, alternate
// search queries, or at least nearby landmarks.
type GeminiRefiner struct {
	Client *GeminiClient
}

func NewGeminiRefiner(client *GeminiClient) *GeminiRefiner {
	return &GeminiRefiner{Client: client}
}

const refinePromptTemplate = `You are a local guide helping pin down the exact location of a trip activity. Reply with one JSON object, no commentary.

Schema:
{
  "refined_name": string (official or commonly mapped name, optional),
  "address_hint": string (optional),
  "search_queries": [string] (queries likely to geocode well, most specific first, optional),
  "landmarks": [string] (well-known places nearby, optional),
  "location": {"lat": number, "lng": number} (only if you are confident),
  "confidence": number between 0 and 1 (only with location),
  "reason": string (one short sentence, optional)
}

Omit every field you are not sure about. Never invent coordinates.

Activity context:
%s`

func (r *GeminiRefiner) RefineLocation(ctx context.Context, input models.RefinementInput) (*models.RefinementResult, error) {
	payload, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("refiner: marshal input: %w", err)
	}

	reply, err := r.Client.GenerateContent(ctx, fmt.Sprintf(refinePromptTemplate, payload))
	if err != nil {
		return nil, fmt.Errorf("refiner: %w", err)
	}

	raw := extractJSON(reply)
	if raw == "" {
		return nil, nil
	}

	var result models.RefinementResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("refiner: decode result: %w", err)
	}
	return &result, nil
}
