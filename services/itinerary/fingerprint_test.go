package itinerary

import (
	"testing"

	"wayfare/models"
)

func TestFingerprint_DeterministicAndNormalized(t *testing.T) {
	a := models.GenerationRequest{Destination: "Tokyo", Days: 3, Preferences: []string{"Food", "Museums"}}
	b := models.GenerationRequest{Destination: "  tokyo ", Days: 3, Preferences: []string{"food", " museums"}}

	if Fingerprint(a, false) != Fingerprint(a, false) {
		t.Fatal("fingerprint is not deterministic")
	}
	if Fingerprint(a, false) != Fingerprint(b, false) {
		t.Fatal("normalization should make these requests hash identically")
	}
}

func TestFingerprint_DistinguishesRequests(t *testing.T) {
	base := models.GenerationRequest{Destination: "Tokyo", Days: 3}

	changedDays := base
	changedDays.Days = 4
	if Fingerprint(base, false) == Fingerprint(changedDays, false) {
		t.Fatal("day count must affect the fingerprint")
	}

	changedPrefs := base
	changedPrefs.Preferences = []string{"food"}
	if Fingerprint(base, false) == Fingerprint(changedPrefs, false) {
		t.Fatal("preferences must affect the fingerprint")
	}
}

func TestFingerprint_PreferenceOrderMatters(t *testing.T) {
	a := models.GenerationRequest{Destination: "Tokyo", Days: 3, Preferences: []string{"food", "museums"}}
	b := models.GenerationRequest{Destination: "Tokyo", Days: 3, Preferences: []string{"museums", "food"}}
	if Fingerprint(a, false) == Fingerprint(b, false) {
		t.Fatal("preference tags are ordered; order must affect the fingerprint")
	}
}

func TestFingerprint_CredentialValueNeverHashed(t *testing.T) {
	a := models.GenerationRequest{Destination: "Tokyo", Days: 3, Credential: "key-one"}
	b := a
	b.Credential = "key-two"
	if Fingerprint(a, true) != Fingerprint(b, true) {
		t.Fatal("the credential value must not affect the fingerprint")
	}
}

func TestFingerprint_ImageryPresenceSplitsIdentity(t *testing.T) {
	req := models.GenerationRequest{Destination: "Tokyo", Days: 3}
	if Fingerprint(req, true) == Fingerprint(req, false) {
		t.Fatal("imagery capability changes the planned media, so it must split the cache")
	}
}
