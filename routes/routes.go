package routes

import (
	"github.com/gin-gonic/gin"

	"go-firewatch/analysis"
	"go-firewatch/fireapi"
	"go-firewatch/handlers"
	"go-firewatch/playback"
	"go-firewatch/state"
)

func SetupRouter(store *state.Store, runner *analysis.Runner, ctrl *playback.Controller, client *fireapi.Client) *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Hello, welcome to Go Firewatch!",
		})
	})

	// api routes
	api := r.Group("/api/firewatch")
	{
		api.GET("/regions", handlers.ListRegions)
		api.POST("/regions/select", func(c *gin.Context) {
			handlers.SelectRegion(c, store, runner, ctrl)
		})
		api.POST("/regions/custom", func(c *gin.Context) {
			handlers.CustomRegion(c, store, runner, ctrl)
		})

		api.GET("/state", func(c *gin.Context) {
			handlers.GetState(c, store)
		})
		api.POST("/view", func(c *gin.Context) {
			handlers.SetActiveView(c, store)
		})
		api.POST("/environment", func(c *gin.Context) {
			handlers.SetEnvironmentalParams(c, store)
		})

		api.POST("/playback/play", func(c *gin.Context) {
			handlers.PlaySimulation(c, store, ctrl)
		})
		api.POST("/playback/pause", func(c *gin.Context) {
			handlers.PauseSimulation(c, store, ctrl)
		})
		api.POST("/playback/speed", func(c *gin.Context) {
			handlers.SetPlaybackSpeed(c, store, ctrl)
		})
		api.POST("/playback/step", func(c *gin.Context) {
			handlers.StepSimulation(c, store, ctrl)
		})

		api.GET("/export/prediction", func(c *gin.Context) {
			handlers.ExportPrediction(c, store)
		})
		api.GET("/export/simulation", func(c *gin.Context) {
			handlers.ExportSimulation(c, store)
		})
		api.GET("/export/report", func(c *gin.Context) {
			handlers.ExportReport(c, store)
		})
		api.GET("/export/video", func(c *gin.Context) {
			handlers.ExportVideo(c, store)
		})

		api.GET("/demo", handlers.GetDemoData)
		api.GET("/probe", func(c *gin.Context) {
			handlers.TestConnection(c, client)
		})
	}

	return r
}
