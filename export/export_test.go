package export

import (
	"bytes"
	"encoding/json"
	"image/png"
	"math/rand"
	"reflect"
	"testing"
	"time"

	"go-firewatch/mockdata"
	"go-firewatch/regions"
	"go-firewatch/types"
)

func TestFilenameFormat(t *testing.T) {
	at := time.UnixMilli(1756400000000)

	cases := []struct {
		kind, region, ext string
		want              string
	}{
		{"prediction", "dehradun", "json", "prediction_dehradun_1756400000000.json"},
		{"simulation", "nainital", "json", "simulation_nainital_1756400000000.json"},
		{"video", "dehradun", "png", "video_dehradun_1756400000000.png"},
	}
	for _, tc := range cases {
		if got := Filename(tc.kind, tc.region, at, tc.ext); got != tc.want {
			t.Errorf("Filename(%s,%s): got %q, want %q", tc.kind, tc.region, got, tc.want)
		}
	}
}

func TestPredictionJSONRoundTrip(t *testing.T) {
	region, _ := regions.ByID("dehradun")
	original := mockdata.GeneratePrediction(rand.New(rand.NewSource(5)), region)

	blob, err := PredictionJSON(original)
	if err != nil {
		t.Fatalf("PredictionJSON: %v", err)
	}

	var parsed types.PredictionData
	if err := json.Unmarshal(blob, &parsed); err != nil {
		t.Fatalf("parsing export blob: %v", err)
	}
	if !reflect.DeepEqual(original, parsed) {
		t.Error("export round trip is lossy")
	}
}

func TestSimulationJSONRoundTrip(t *testing.T) {
	region, _ := regions.ByID("almora")
	original := mockdata.GenerateSimulation(rand.New(rand.NewSource(6)), region)

	blob, err := SimulationJSON(original)
	if err != nil {
		t.Fatalf("SimulationJSON: %v", err)
	}

	var parsed types.SimulationData
	if err := json.Unmarshal(blob, &parsed); err != nil {
		t.Fatalf("parsing export blob: %v", err)
	}
	if !reflect.DeepEqual(original, parsed) {
		t.Error("export round trip is lossy")
	}
}

func TestReportJSONCarriesSummary(t *testing.T) {
	region, _ := regions.ByID("dehradun")
	blob, err := ReportJSON(Report{
		GeneratedAt: "2026-08-29T00:00:00Z",
		Region:      region,
		Summary:     "Risk is moderate.",
	})
	if err != nil {
		t.Fatalf("ReportJSON: %v", err)
	}

	var parsed Report
	if err := json.Unmarshal(blob, &parsed); err != nil {
		t.Fatalf("parsing report blob: %v", err)
	}
	if parsed.Summary != "Risk is moderate." || parsed.Region.ID != "dehradun" {
		t.Errorf("report fields lost: %+v", parsed)
	}
}

func TestVideoPlaceholderPNG(t *testing.T) {
	data, err := VideoPlaceholderPNG(32, 18)
	if err != nil {
		t.Fatalf("VideoPlaceholderPNG: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a valid PNG: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 32 || b.Dy() != 18 {
		t.Errorf("frame is %dx%d, want 32x18", b.Dx(), b.Dy())
	}

	if _, err := VideoPlaceholderPNG(0, 10); err == nil {
		t.Error("expected error for zero width")
	}
}
