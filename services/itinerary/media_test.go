package itinerary

import (
	"testing"

	"wayfare/models"
)

func TestPlanMedia_StreetViewForForeignCoordinates(t *testing.T) {
	svc := newTestService(&fakeGeocoder{}, nil)

	acts := svc.planMedia("Tokyo", true, true, []models.Activity{{
		Kind: models.KindSight, Title: "Tokyo Tower",
		Lat: f64(35.66), Lng: f64(139.75), // outside the home bounding box
		Address: "4 Chome-2-8 Shibakoen", Confidence: f64(0.9),
	}})

	m := acts[0].Media
	if m == nil || m.StreetView == nil {
		t.Fatalf("expected a pending street-view request: %+v", acts[0])
	}
	if *m.StreetView.Lat != 35.66 || *m.StreetView.Lng != 139.75 {
		t.Fatalf("street-view request missing coordinates: %+v", m.StreetView)
	}
	if len(m.StreetView.Candidates) != 1 || m.StreetView.Candidates[0] != "4 Chome-2-8 Shibakoen" {
		t.Fatalf("candidates = %v", m.StreetView.Candidates)
	}
}

func TestPlanMedia_NoStreetViewBelowConfidence(t *testing.T) {
	svc := newTestService(&fakeGeocoder{}, nil)

	acts := svc.planMedia("Tokyo", true, true, []models.Activity{{
		Kind: models.KindSight, Title: "Tokyo Tower",
		Lat: f64(35.66), Lng: f64(139.75), Address: "addr", Confidence: f64(0.7),
	}})

	if acts[0].Media != nil {
		t.Fatalf("sub-threshold confidence must not trigger imagery: %+v", acts[0].Media)
	}
}

func TestPlanMedia_NoStreetViewInsideHomeRegion(t *testing.T) {
	svc := newTestService(&fakeGeocoder{}, nil)

	acts := svc.planMedia("Chengdu", false, true, []models.Activity{{
		Kind: models.KindSight, Title: "Panda Base",
		Lat: f64(30.73), Lng: f64(104.15), Address: "addr", Confidence: f64(0.95),
	}})

	if acts[0].Media != nil && acts[0].Media.StreetView != nil {
		t.Fatalf("domestic coordinates are covered by the home provider: %+v", acts[0].Media)
	}
}

func TestPlanMedia_InternationalStreetViewFromNoteAddress(t *testing.T) {
	svc := newTestService(&fakeGeocoder{}, nil)

	acts := svc.planMedia("New York", true, true, []models.Activity{{
		Kind: models.KindFood, Title: "Famous deli",
		Note:       "Try the pastrami at 205 E Houston Street before noon.",
		Confidence: f64(0.85),
	}})

	m := acts[0].Media
	if m == nil || m.StreetView == nil {
		t.Fatalf("expected street view from address-shaped note text: %+v", acts[0])
	}
	if m.StreetView.Lat != nil {
		t.Fatalf("no coordinates should be attached: %+v", m.StreetView)
	}
	if len(m.StreetView.Candidates) != 1 || m.StreetView.Candidates[0] != "205 E Houston Street" {
		t.Fatalf("candidates = %v", m.StreetView.Candidates)
	}
}

func TestPlanMedia_HanNoteAddressExtraction(t *testing.T) {
	svc := newTestService(&fakeGeocoder{}, nil)

	acts := svc.planMedia("东京", true, true, []models.Activity{{
		Kind: models.KindFood, Title: "Ramen shop",
		Note:       "地址：中央大道88号，分店：樱花街12号。",
		Confidence: f64(0.9),
	}})

	m := acts[0].Media
	if m == nil || m.StreetView == nil {
		t.Fatalf("expected street view from Han address fragments: %+v", acts[0])
	}
	got := m.StreetView.Candidates
	if len(got) != 2 || got[0] != "中央大道88号" || got[1] != "樱花街12号" {
		t.Fatalf("candidates = %v", got)
	}
}

func TestPlanMedia_PhotoSearchForUnresolvedForeignActivity(t *testing.T) {
	svc := newTestService(&fakeGeocoder{}, nil)

	acts := svc.planMedia("Tokyo", true, true, []models.Activity{{
		Kind: models.KindSight, Title: "TeamLab Planets", Confidence: f64(0.85),
	}})

	m := acts[0].Media
	if m == nil || m.PhotoSearch == nil {
		t.Fatalf("expected a pending photo search: %+v", acts[0])
	}
	ps := m.PhotoSearch
	if ps.Query != "TeamLab Planets" || ps.DestinationHint != "Tokyo" || ps.MaxPhotos != maxSearchPhotos {
		t.Fatalf("photo search = %+v", ps)
	}
}

func TestPlanMedia_NoPhotoSearchWhenResolvedOrStocked(t *testing.T) {
	svc := newTestService(&fakeGeocoder{}, nil)
	conf := f64(0.9)

	cases := []models.Activity{
		{Kind: models.KindSight, Title: "a", Confidence: conf, PhotoURLs: []string{"u"}},
		{Kind: models.KindSight, Title: "b", Confidence: conf, Lat: f64(1), Lng: f64(1)},
		{Kind: models.KindSight, Title: "c", Confidence: conf, Address: "somewhere"},
	}
	acts := svc.planMedia("Tokyo", true, true, cases)
	for i, a := range acts {
		if a.Media != nil && a.Media.PhotoSearch != nil {
			t.Errorf("case %d: resolved activity must not request photos: %+v", i, a.Media)
		}
	}
}

func TestPlanMedia_DomesticHanTitleSkipsPhotoSearch(t *testing.T) {
	svc := newTestService(&fakeGeocoder{}, nil)

	acts := svc.planMedia("成都", false, true, []models.Activity{
		{Kind: models.KindSight, Title: "宽窄巷子", Confidence: f64(0.9)},
		{Kind: models.KindSight, Title: "Local market", Confidence: f64(0.9)},
	})

	if acts[0].Media != nil && acts[0].Media.PhotoSearch != nil {
		t.Fatalf("domestic Han-titled activity must not request photos: %+v", acts[0].Media)
	}
	if acts[1].Media == nil || acts[1].Media.PhotoSearch == nil {
		t.Fatalf("domestic Latin-titled activity still qualifies: %+v", acts[1])
	}
}

func TestPlanMedia_CredentialGateStripsEverything(t *testing.T) {
	svc := newTestService(&fakeGeocoder{}, nil)

	acts := svc.planMedia("Tokyo", true, false, []models.Activity{
		{Kind: models.KindSight, Title: "Tokyo Tower", Lat: f64(35.66), Lng: f64(139.75), Address: "a", Confidence: f64(0.9)},
		{Kind: models.KindSight, Title: "TeamLab Planets", Confidence: f64(0.9)},
	})

	for i, a := range acts {
		if a.Media != nil {
			t.Errorf("activity %d: no pending media may survive without a credential: %+v", i, a.Media)
		}
	}
}

func TestInHomeRegion(t *testing.T) {
	if !inHomeRegion(30.73, 104.15) {
		t.Fatal("Chengdu is inside the home box")
	}
	if inHomeRegion(35.66, 139.75) {
		t.Fatal("Tokyo is outside the home box")
	}
	if inHomeRegion(48.85, 2.35) {
		t.Fatal("Paris is outside the home box")
	}
}
