package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"go-firewatch/analysis"
	"go-firewatch/cronjobs"
	"go-firewatch/fireapi"
	"go-firewatch/playback"
	"go-firewatch/routes"
	"go-firewatch/state"
	"go-firewatch/types"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using process environment")
	}

	// Print and check env
	if os.Getenv("OPENAI_API_KEY") != "" {
		fmt.Println("OPENAI_API_KEY loaded, report summaries enabled")
	}
	if os.Getenv("MAPS_CREDENTIALS") != "" {
		fmt.Println("MAPS_CREDENTIALS loaded, custom regions enabled")
	}
	fmt.Println("FIREAPI_BASE_URL: ", os.Getenv("FIREAPI_BASE_URL"))

	// Remote fire service client
	client := fireapi.NewFromEnv()

	// Dashboard state, analysis runs, playback
	store := state.NewStore()
	runner := analysis.NewRunner(store, client)
	ctrl := playback.New(store, types.DefaultTimeSteps)
	defer runner.Shutdown()
	defer ctrl.Shutdown()

	// Initialize cron jobs
	scheduler := cronjobs.InitCronJobs(client, store, runner, ctrl)
	defer scheduler.Stop()

	r := routes.SetupRouter(store, runner, ctrl, client)
	if err := r.Run(":8080"); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
