package state

import (
	"sync"

	"go-firewatch/types"
)

type ActiveView string

const (
	ViewDashboard  ActiveView = "dashboard"
	ViewMap        ActiveView = "map"
	ViewSimulation ActiveView = "simulation"
	ViewReports    ActiveView = "reports"
)

// PlaybackState is the simulation viewer's play position.
type PlaybackState struct {
	IsPlaying       bool    `json:"isPlaying"`
	CurrentTimeStep int     `json:"currentTimeStep"`
	Speed           float64 `json:"speed"`
}

// AppState is everything the dashboard renders from.
type AppState struct {
	SelectedRegion  *types.Region             `json:"selectedRegion"`
	ActiveView      ActiveView                `json:"activeView"`
	ProcessingSteps []types.ProcessingStep    `json:"processingSteps"`
	Prediction      *types.PredictionData     `json:"prediction"`
	Simulation      *types.SimulationData     `json:"simulation"`
	Environmental   types.EnvironmentalParams `json:"environmental"`
	IsProcessing    bool                      `json:"isProcessing"`
	Playback        PlaybackState             `json:"playback"`
}

// Store owns the dashboard state. All mutation goes through the named
// update operations below; readers get copies via Snapshot. Result setters
// carry a run generation so a superseded analysis run's late result is
// discarded instead of overwriting a newer one.
type Store struct {
	mu         sync.Mutex
	app        AppState
	generation uint64
}

func NewStore() *Store {
	return &Store{
		app: AppState{
			ActiveView: ViewDashboard,
			Environmental: types.EnvironmentalParams{
				WindSpeedKMH: 12,
				HumidityPct:  45,
				TemperatureC: 32,
			},
			Playback: PlaybackState{
				IsPlaying:       false,
				CurrentTimeStep: types.DefaultTimeSteps[0],
				Speed:           1,
			},
		},
	}
}

// Snapshot returns a copy safe to render and marshal.
func (s *Store) Snapshot() AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyState(s.app)
}

func copyState(a AppState) AppState {
	out := a
	if a.SelectedRegion != nil {
		r := *a.SelectedRegion
		out.SelectedRegion = &r
	}
	if a.ProcessingSteps != nil {
		out.ProcessingSteps = append([]types.ProcessingStep(nil), a.ProcessingSteps...)
	}
	if a.Prediction != nil {
		p := *a.Prediction
		p.Zones = append([]types.RiskZone(nil), a.Prediction.Zones...)
		out.Prediction = &p
	}
	if a.Simulation != nil {
		sim := *a.Simulation
		sim.TimeSteps = append([]int(nil), a.Simulation.TimeSteps...)
		sim.BurnedAreaKM2 = append([]float64(nil), a.Simulation.BurnedAreaKM2...)
		sim.SpreadRateKMH = append([]float64(nil), a.Simulation.SpreadRateKMH...)
		sim.SpreadByStep = make(map[int][]types.SpreadPoint, len(a.Simulation.SpreadByStep))
		for step, pts := range a.Simulation.SpreadByStep {
			sim.SpreadByStep[step] = append([]types.SpreadPoint(nil), pts...)
		}
		out.Simulation = &sim
	}
	return out
}

// SelectRegion swaps the selected region, discards the previous run's
// results and halts playback. Any in-flight run is invalidated.
func (s *Store) SelectRegion(r types.Region) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.app.SelectedRegion = &r
	s.app.Prediction = nil
	s.app.Simulation = nil
	s.app.ProcessingSteps = nil
	s.app.IsProcessing = false
	s.app.Playback.IsPlaying = false
	s.app.Playback.CurrentTimeStep = types.DefaultTimeSteps[0]
}

// BeginRun marks the start of an analysis run and returns its generation.
func (s *Store) BeginRun() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.app.IsProcessing = true
	return s.generation
}

// FinishRun drops the processing flag, if gen is still the current run.
func (s *Store) FinishRun(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return false
	}
	s.app.IsProcessing = false
	return true
}

// SetPrediction applies a run's prediction result; stale runs are rejected.
func (s *Store) SetPrediction(gen uint64, p *types.PredictionData) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return false
	}
	s.app.Prediction = p
	return true
}

// SetSimulation applies a run's simulation result; stale runs are rejected.
func (s *Store) SetSimulation(gen uint64, sim *types.SimulationData) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return false
	}
	s.app.Simulation = sim
	return true
}

// SetSteps publishes a processing-step snapshot for the given run.
func (s *Store) SetSteps(gen uint64, steps []types.ProcessingStep) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return false
	}
	s.app.ProcessingSteps = append([]types.ProcessingStep(nil), steps...)
	return true
}

func (s *Store) SetActiveView(v ActiveView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.app.ActiveView = v
}

func (s *Store) SetEnvironmental(p types.EnvironmentalParams) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.app.Environmental = p
}

func (s *Store) SetPlaying(playing bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.app.Playback.IsPlaying = playing
}

func (s *Store) SetSpeed(speed float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.app.Playback.Speed = speed
}

func (s *Store) SetTimeStep(step int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.app.Playback.CurrentTimeStep = step
}

// AdvanceTimeStep moves playback to the next entry of sequence, wrapping
// from the last back to the first. Unknown current positions restart at
// the beginning.
func (s *Store) AdvanceTimeStep(sequence []int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(sequence) == 0 {
		return s.app.Playback.CurrentTimeStep
	}

	next := sequence[0]
	for i, step := range sequence {
		if step == s.app.Playback.CurrentTimeStep {
			next = sequence[(i+1)%len(sequence)]
			break
		}
	}
	s.app.Playback.CurrentTimeStep = next
	return next
}

// Generation reports the current run generation.
func (s *Store) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}
