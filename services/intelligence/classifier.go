package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
)

// GeminiClassifier answers whether a destination lies outside the primary
// map provider's home coverage region. Failures fall back to the keyword
// heuristic in the pipeline, so errors here are never fatal.
type GeminiClassifier struct {
	Client *GeminiClient
}

func NewGeminiClassifier(client *GeminiClient) *GeminiClassifier {
	return &GeminiClassifier{Client: client}
}

const classifyPromptTemplate = `Is the travel destination %q outside mainland China? Reply with exactly {"international": true} or {"international": false}.`

func (c *GeminiClassifier) Classify(ctx context.Context, destination string) (bool, error) {
	reply, err := c.Client.GenerateContent(ctx, fmt.Sprintf(classifyPromptTemplate, destination))
	if err != nil {
		return false, fmt.Errorf("classifier: %w", err)
	}

	raw := extractJSON(reply)
	if raw == "" {
		return false, fmt.Errorf("classifier: no JSON in model reply")
	}

	var decoded struct {
		International bool `json:"international"`
	}
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return false, fmt.Errorf("classifier: decode: %w", err)
	}
	return decoded.International, nil
}
