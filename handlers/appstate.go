package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-firewatch/state"
	"go-firewatch/types"
)

// GetState returns the full dashboard state snapshot.
func GetState(c *gin.Context, store *state.Store) {
	c.JSON(http.StatusOK, store.Snapshot())
}

// SetActiveView switches the dashboard's active view.
func SetActiveView(c *gin.Context, store *state.Store) {
	var request struct {
		View state.ActiveView `json:"view"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch request.View {
	case state.ViewDashboard, state.ViewMap, state.ViewSimulation, state.ViewReports:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown view: " + string(request.View)})
		return
	}

	store.SetActiveView(request.View)
	c.JSON(http.StatusOK, gin.H{"activeView": request.View})
}

// SetEnvironmentalParams updates the wind/humidity/temperature annotations.
func SetEnvironmentalParams(c *gin.Context, store *state.Store) {
	var params types.EnvironmentalParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	store.SetEnvironmental(params)
	c.JSON(http.StatusOK, gin.H{"environmental": params})
}
