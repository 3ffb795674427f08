package handlers

import (
	"math/rand"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-firewatch/mockdata"
	"go-firewatch/regions"
)

// GetDemoData fabricates a full prediction + simulation dataset for a
// region without touching the remote service. Pass seed for reproducible
// output.
func GetDemoData(c *gin.Context) {
	region, ok := regions.Resolve(c.DefaultQuery("region", "dehradun"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown region"})
		return
	}

	rng := mockdata.NewRand()
	if s := c.Query("seed"); s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "seed must be an integer"})
			return
		}
		rng = rand.New(rand.NewSource(seed))
	}

	c.JSON(http.StatusOK, gin.H{
		"region":     region,
		"prediction": mockdata.GeneratePrediction(rng, region),
		"simulation": mockdata.GenerateSimulation(rng, region),
	})
}
