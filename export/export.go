package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"time"

	"go-firewatch/types"
)

// Report bundles everything the report download carries.
type Report struct {
	GeneratedAt   string                    `json:"generatedAt"`
	Region        types.Region              `json:"region"`
	Environmental types.EnvironmentalParams `json:"environmental"`
	Prediction    *types.PredictionData     `json:"prediction"`
	Simulation    *types.SimulationData     `json:"simulation"`
	Summary       string                    `json:"summary"`
}

// Filename builds the download name: <type>_<region>_<epoch-ms>.<ext>.
func Filename(kind, regionID string, now time.Time, ext string) string {
	return fmt.Sprintf("%s_%s_%d.%s", kind, regionID, now.UnixMilli(), ext)
}

// PredictionJSON renders the prediction download. The marshalling is
// lossless: parsing the blob back yields the same structure field for field.
func PredictionJSON(p types.PredictionData) ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

// SimulationJSON renders the simulation download.
func SimulationJSON(s types.SimulationData) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// ReportJSON renders the combined report download.
func ReportJSON(r Report) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// VideoPlaceholderPNG renders the stand-in frame served by the video
// download: a dark field with an ember-colored band. The real rendering
// happens client-side off the map canvas.
func VideoPlaceholderPNG(width, height int) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid frame size %dx%d", width, height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	bg := color.RGBA{R: 18, G: 24, B: 32, A: 255}
	ember := color.RGBA{R: 226, G: 88, B: 34, A: 255}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if y > height*2/3 {
				img.Set(x, y, ember)
			} else {
				img.Set(x, y, bg)
			}
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
