package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-firewatch/playback"
	"go-firewatch/state"
)

// PlaySimulation starts cycling through the simulation time steps.
func PlaySimulation(c *gin.Context, store *state.Store, ctrl *playback.Controller) {
	ctrl.Play()
	c.JSON(http.StatusOK, gin.H{"playback": store.Snapshot().Playback})
}

// PauseSimulation halts playback with no further transitions.
func PauseSimulation(c *gin.Context, store *state.Store, ctrl *playback.Controller) {
	ctrl.Pause()
	c.JSON(http.StatusOK, gin.H{"playback": store.Snapshot().Playback})
}

// SetPlaybackSpeed changes the multiplier; while playing it takes effect on
// the next tick.
func SetPlaybackSpeed(c *gin.Context, store *state.Store, ctrl *playback.Controller) {
	var request struct {
		Speed float64 `json:"speed"`
	}
	if err := c.ShouldBindJSON(&request); err != nil || request.Speed <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "speed must be a positive number"})
		return
	}

	ctrl.SetSpeed(request.Speed)
	c.JSON(http.StatusOK, gin.H{"playback": store.Snapshot().Playback})
}

// StepSimulation advances playback one time step by hand.
func StepSimulation(c *gin.Context, store *state.Store, ctrl *playback.Controller) {
	step := ctrl.Advance()
	c.JSON(http.StatusOK, gin.H{"currentTimeStep": step, "playback": store.Snapshot().Playback})
}
