package itinerary

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"wayfare/models"
)

// Fingerprint derives the deterministic cache key for a generation request.
// Fields are serialized in a fixed order with normalized text, so logically
// identical requests always hash the same. The imagery flag is part of the
// identity because it decides whether pending media plans are attached; the
// credential value itself is never hashed.
func Fingerprint(req models.GenerationRequest, imagery bool) string {
	var b strings.Builder

	b.WriteString("dest=")
	b.WriteString(normalizeText(req.Destination))
	fmt.Fprintf(&b, "|days=%d", req.Days)
	b.WriteString("|start=")
	b.WriteString(strings.TrimSpace(req.StartDate))
	b.WriteString("|end=")
	b.WriteString(strings.TrimSpace(req.EndDate))
	fmt.Fprintf(&b, "|budget=%.2f|party=%d", req.Budget, req.PartySize)

	// Preference order is meaningful, so tags are normalized but not sorted.
	b.WriteString("|prefs=")
	for i, p := range req.Preferences {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(normalizeText(p))
	}

	b.WriteString("|origin=")
	b.WriteString(normalizeText(req.Origin))
	if req.OriginLat != nil && req.OriginLng != nil {
		fmt.Fprintf(&b, "|origin_geo=%.4f,%.4f", *req.OriginLat, *req.OriginLng)
	}
	fmt.Fprintf(&b, "|imagery=%t", imagery)

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

func normalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
