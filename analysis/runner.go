package analysis

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"time"

	"go-firewatch/fireapi"
	"go-firewatch/mockdata"
	"go-firewatch/state"
	"go-firewatch/steps"
	"go-firewatch/types"
)

// pipelineSteps name the remote pipeline's stages for the scripted
// loading animation. The animation does not track real stage completion.
var pipelineSteps = []string{
	"Data Collection",
	"DEM Terrain Analysis",
	"Weather Integration",
	"LULC Segmentation",
	"LSTM Risk Prediction",
	"Cellular Automata Simulation",
}

// Runner drives analysis runs: the cosmetic step animation and the real
// backend calls in parallel, with abort-on-supersede between runs.
type Runner struct {
	store   *state.Store
	client  *fireapi.Client
	stepCfg steps.Config
	newRand func() *rand.Rand

	mu     sync.Mutex
	cancel context.CancelFunc
}

func NewRunner(store *state.Store, client *fireapi.Client) *Runner {
	return &Runner{
		store:   store,
		client:  client,
		stepCfg: steps.DefaultConfig(),
		newRand: mockdata.NewRand,
	}
}

// Start launches an analysis run for region, cancelling any run still in
// flight. The returned channel closes when the run has fully settled
// (animation done, results applied, processing flag dropped).
func (r *Runner) Start(region types.Region) <-chan struct{} {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.mu.Unlock()

	gen := r.store.BeginRun()
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer cancel()
		r.run(ctx, gen, region)
	}()
	return done
}

// Shutdown cancels the in-flight run, if any.
func (r *Runner) Shutdown() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}

func (r *Runner) run(ctx context.Context, gen uint64, region types.Region) {
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		rng := r.newRand()
		err := steps.Run(ctx, rng, pipelineSteps, r.stepCfg, func(s []types.ProcessingStep) {
			r.store.SetSteps(gen, s)
		})
		if err != nil {
			log.Printf("analysis: step animation for %s stopped: %v", region.ID, err)
		}
	}()

	go func() {
		defer wg.Done()
		r.fetch(ctx, gen, region)
	}()

	// The animation and the fetch are unordered; only the processing flag
	// is gated on both.
	wg.Wait()
	r.store.FinishRun(gen)
}

// fetch runs the real backend sequence. Any failure clears the results to
// empty and logs; nothing propagates to the handlers.
func (r *Runner) fetch(ctx context.Context, gen uint64, region types.Region) {
	pre, err := r.client.Preprocess(ctx, region.ID, region.Name)
	if err != nil {
		log.Printf("analysis: preprocess for %s failed: %v", region.ID, err)
		r.clear(gen)
		return
	}
	log.Printf("analysis: preprocessed %s (%d files, %d clusters)",
		pre.Region, pre.NFiles, pre.Segmentation.NClusters)

	predict, err := r.client.Predict(ctx, region.Name)
	if err != nil {
		log.Printf("analysis: predict for %s failed: %v", region.ID, err)
		r.clear(gen)
		return
	}

	riskAgg, err := r.client.RegionPrediction(ctx, region.ID)
	if err != nil {
		log.Printf("analysis: region prediction for %s failed: %v", region.ID, err)
		r.clear(gen)
		return
	}

	rng := r.newRand()
	prediction := buildPrediction(rng, region, riskAgg)
	simulation := buildSimulation(rng, region, predict)

	if !r.store.SetPrediction(gen, prediction) {
		log.Printf("analysis: run for %s superseded, result dropped", region.ID)
		return
	}
	r.store.SetSimulation(gen, simulation)
}

func (r *Runner) clear(gen uint64) {
	r.store.SetPrediction(gen, nil)
	r.store.SetSimulation(gen, nil)
}

// buildPrediction maps the remote aggregate onto PredictionData. The zone
// scatter itself is fabricated around the region center; the service only
// reports per-level areas.
func buildPrediction(rng *rand.Rand, region types.Region, agg *fireapi.RegionPrediction) *types.PredictionData {
	zones := mockdata.GenerateRiskZones(rng, region.Center)

	generatedAt := agg.Timestamp
	if generatedAt == "" {
		generatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	level := types.RiskLevel(agg.OverallRiskLevel)
	switch level {
	case types.RiskHigh, types.RiskModerate, types.RiskLow:
	default:
		level = mockdata.DominantLevel(zones)
	}

	return &types.PredictionData{
		RegionID:            region.ID,
		GeneratedAt:         generatedAt,
		Zones:               zones,
		Confidence:          agg.Confidence(),
		OverallRiskLevel:    level,
		TotalAreaKM2:        region.AreaKM2,
		HighRiskAreaKM2:     agg.HighRiskAreaKM2,
		ModerateRiskAreaKM2: agg.ModerateRiskAreaKM2,
		LowRiskAreaKM2:      agg.LowRiskAreaKM2,
	}
}

// buildSimulation maps the remote burned-area/spread-rate series onto the
// fixed time-step sequence, fabricating the point scatter per step.
func buildSimulation(rng *rand.Rand, region types.Region, resp *fireapi.PredictResponse) *types.SimulationData {
	stepsSeq := types.DefaultTimeSteps
	return &types.SimulationData{
		RegionID:      region.ID,
		GeneratedAt:   time.Now().UTC().Format(time.RFC3339),
		Confidence:    resp.Confidence(),
		TimeSteps:     stepsSeq,
		SpreadByStep:  mockdata.GenerateSpreadPoints(rng, region.Center, stepsSeq),
		BurnedAreaKM2: fitSeries(resp.SimulationResult.TotalBurnedArea, len(stepsSeq)),
		SpreadRateKMH: fitSeries(resp.SimulationResult.SpreadRate, len(stepsSeq)),
	}
}

// fitSeries pads or truncates vals to n entries so the series stays
// index-aligned with the time-step sequence. Padding repeats the last
// value; an empty series pads with zeros.
func fitSeries(vals []float64, n int) []float64 {
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		switch {
		case i < len(vals):
			out[i] = vals[i]
		case len(vals) > 0:
			out[i] = vals[len(vals)-1]
		}
	}
	return out
}
