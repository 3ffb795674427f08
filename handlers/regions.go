package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-firewatch/analysis"
	"go-firewatch/geocode"
	"go-firewatch/playback"
	"go-firewatch/regions"
	"go-firewatch/state"
)

// ListRegions returns the fixed region catalog.
func ListRegions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"regions": regions.All()})
}

// SelectRegion swaps the dashboard onto a catalog region and kicks off an
// analysis run. The previous run, if still in flight, is superseded, and
// playback is halted before the store resets so the ticker cannot advance
// the new region's step.
func SelectRegion(c *gin.Context, store *state.Store, runner *analysis.Runner, ctrl *playback.Controller) {
	var request struct {
		RegionID string `json:"regionId"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	region, ok := regions.Resolve(request.RegionID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown region: " + request.RegionID})
		return
	}

	log.Printf("Selecting region %s (%s)", region.ID, region.Name)
	ctrl.Pause()
	store.SelectRegion(region)
	runner.Start(region)

	c.JSON(http.StatusOK, store.Snapshot())
}

// CustomRegion geocodes an off-catalog region name and selects it.
func CustomRegion(c *gin.Context, store *state.Store, runner *analysis.Runner, ctrl *playback.Controller) {
	var request struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&request); err != nil || request.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	region, err := geocode.ResolveRegion(c.Request.Context(), request.Name)
	if err != nil {
		log.Printf("Error geocoding %q: %v", request.Name, err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "geocoding unavailable", "details": err.Error()})
		return
	}

	ctrl.Pause()
	store.SelectRegion(region)
	runner.Start(region)

	c.JSON(http.StatusOK, store.Snapshot())
}
