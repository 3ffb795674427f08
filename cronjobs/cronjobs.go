package cronjobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"go-firewatch/analysis"
	"go-firewatch/fireapi"
	"go-firewatch/playback"
	"go-firewatch/state"
)

// InitCronJobs schedules the background jobs: a connectivity probe of the
// remote service every 10 minutes and an hourly refresh of the selected
// region's analysis. Returns the running scheduler so main can stop it.
func InitCronJobs(client *fireapi.Client, store *state.Store, runner *analysis.Runner, ctrl *playback.Controller) *cron.Cron {
	log.Println("Starting Cron Jobs -------------------------------------------------------")
	c := cron.New()

	// Connectivity probe: every 10 minutes
	_, err := c.AddFunc("*/10 * * * *", func() {
		log.Println("CronJob: fire service probe running")
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := client.Ping(ctx); err != nil {
			log.Println("CronJob: fire service unreachable:", err)
		}
	})
	if err != nil {
		log.Println("Error scheduling service probe:", err)
	}

	// Prediction refresh: hourly, only when a region is selected and idle
	_, err = c.AddFunc("0 * * * *", func() {
		snap := store.Snapshot()
		if snap.SelectedRegion == nil || snap.IsProcessing {
			return
		}
		log.Println("CronJob: refreshing prediction for", snap.SelectedRegion.ID)
		// The refresh replaces the simulation wholesale; halt playback so
		// the viewer is not stepping through data being swapped out.
		ctrl.Pause()
		runner.Start(*snap.SelectedRegion)
	})
	if err != nil {
		log.Println("Error scheduling prediction refresh:", err)
	}

	c.Start()
	return c
}
