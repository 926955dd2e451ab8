package itinerary

import (
	"context"
	"errors"
	"testing"
)

type fakeClassifier struct {
	international bool
	err           error
	calls         int
}

func (f *fakeClassifier) Classify(ctx context.Context, destination string) (bool, error) {
	f.calls++
	return f.international, f.err
}

func TestHeuristicInternational(t *testing.T) {
	cases := []struct {
		destination string
		want        bool
	}{
		{"tokyo", true},
		{"东京", true},
		{"paris", true},
		{"beijing", false},
		{"成都", false},
		{"hong kong", false},
		{"a 3-day trip to osaka", true},
		{"somewhere unheard of", false}, // unknown defaults to domestic
	}
	for _, tc := range cases {
		if got := heuristicInternational(tc.destination); got != tc.want {
			t.Errorf("heuristicInternational(%q) = %v, want %v", tc.destination, got, tc.want)
		}
	}
}

func TestIsInternational_DomesticKeywordWinsOverForeign(t *testing.T) {
	// "china town, london" mentions both; the domestic list is checked first.
	if heuristicInternational("china town, london") {
		t.Fatal("domestic keywords must short-circuit before foreign ones")
	}
}

func TestIsInternational_OracleOverridesHeuristic(t *testing.T) {
	svc := newTestService(&fakeGeocoder{}, nil)
	svc.Classifier = &fakeClassifier{international: true}

	// The heuristic alone would call this domestic.
	if !svc.isInternational(context.Background(), "somewhere unheard of") {
		t.Fatal("oracle verdict must override the heuristic")
	}
}

func TestIsInternational_OracleFailureFallsBack(t *testing.T) {
	svc := newTestService(&fakeGeocoder{}, nil)
	svc.Classifier = &fakeClassifier{err: errors.New("oracle down")}

	if !svc.isInternational(context.Background(), "Tokyo") {
		t.Fatal("heuristic must carry the verdict when the oracle fails")
	}
	if svc.isInternational(context.Background(), "Chengdu") {
		t.Fatal("heuristic must carry the verdict when the oracle fails")
	}
}

func TestIsInternational_MemoizesPerDestination(t *testing.T) {
	cls := &fakeClassifier{international: true}
	svc := newTestService(&fakeGeocoder{}, nil)
	svc.Classifier = cls

	for i := 0; i < 3; i++ {
		svc.isInternational(context.Background(), "Tokyo")
	}
	svc.isInternational(context.Background(), "  tokyo ") // same key after normalization

	if cls.calls != 1 {
		t.Fatalf("classifier calls = %d, want 1 (memoized)", cls.calls)
	}

	svc.isInternational(context.Background(), "Seoul")
	if cls.calls != 2 {
		t.Fatalf("classifier calls = %d, want 2 after a new destination", cls.calls)
	}
}

func TestContainsHan(t *testing.T) {
	if !containsHan("东京塔") {
		t.Fatal("expected Han detection")
	}
	if containsHan("Tokyo Tower") {
		t.Fatal("Latin text must not register as Han")
	}
	if !containsHan("Tokyo 塔") {
		t.Fatal("mixed text with one Han rune counts")
	}
}
