package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-firewatch/export"
	"go-firewatch/report"
	"go-firewatch/state"
)

const videoFrameWidth, videoFrameHeight = 1280, 720

func attach(c *gin.Context, filename, contentType string, data []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, data)
}

// ExportPrediction serves the prediction result as a JSON download.
func ExportPrediction(c *gin.Context, store *state.Store) {
	snap := store.Snapshot()
	if snap.Prediction == nil || snap.SelectedRegion == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no prediction data to export"})
		return
	}

	data, err := export.PredictionJSON(*snap.Prediction)
	if err != nil {
		log.Printf("Error marshaling prediction export: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to format prediction data"})
		return
	}

	attach(c, export.Filename("prediction", snap.SelectedRegion.ID, time.Now(), "json"), "application/json", data)
}

// ExportSimulation serves the simulation result as a JSON download.
func ExportSimulation(c *gin.Context, store *state.Store) {
	snap := store.Snapshot()
	if snap.Simulation == nil || snap.SelectedRegion == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no simulation data to export"})
		return
	}

	data, err := export.SimulationJSON(*snap.Simulation)
	if err != nil {
		log.Printf("Error marshaling simulation export: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to format simulation data"})
		return
	}

	attach(c, export.Filename("simulation", snap.SelectedRegion.ID, time.Now(), "json"), "application/json", data)
}

// ExportReport serves the combined report download. The narrative summary
// comes from the LLM when configured, otherwise from the deterministic
// fallback text.
func ExportReport(c *gin.Context, store *state.Store) {
	snap := store.Snapshot()
	if snap.SelectedRegion == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no region selected"})
		return
	}

	summary := report.FallbackSummary(*snap.SelectedRegion, snap.Prediction)
	if client, ok := report.NewClientFromEnv(); ok && snap.Prediction != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 20*time.Second)
		defer cancel()
		if s, err := report.Summarize(ctx, client, *snap.SelectedRegion, snap.Prediction, snap.Simulation); err != nil {
			log.Printf("Error generating report summary: %v", err)
		} else {
			summary = s
		}
	}

	data, err := export.ReportJSON(export.Report{
		GeneratedAt:   time.Now().UTC().Format(time.RFC3339),
		Region:        *snap.SelectedRegion,
		Environmental: snap.Environmental,
		Prediction:    snap.Prediction,
		Simulation:    snap.Simulation,
		Summary:       summary,
	})
	if err != nil {
		log.Printf("Error marshaling report export: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to format report"})
		return
	}

	attach(c, export.Filename("report", snap.SelectedRegion.ID, time.Now(), "json"), "application/json", data)
}

// ExportVideo serves the PNG stand-in for the simulation video download.
func ExportVideo(c *gin.Context, store *state.Store) {
	snap := store.Snapshot()
	if snap.SelectedRegion == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no region selected"})
		return
	}

	frame, err := export.VideoPlaceholderPNG(videoFrameWidth, videoFrameHeight)
	if err != nil {
		log.Printf("Error rendering video placeholder: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render frame"})
		return
	}

	attach(c, export.Filename("video", snap.SelectedRegion.ID, time.Now(), "png"), "image/png", frame)
}
