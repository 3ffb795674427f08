package types

type StepStatus string

const (
	StepPending    StepStatus = "pending"
	StepProcessing StepStatus = "processing"
	StepCompleted  StepStatus = "completed"
	StepError      StepStatus = "error"
)

// ProcessingStep is one named phase of the scripted loading animation shown
// while an analysis request is in flight. Mutated in place as it advances.
type ProcessingStep struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Status   StepStatus `json:"status"`
	Progress int        `json:"progress"` // [0,100]
}

// EnvironmentalParams are user-adjustable scalars annotating the simulation
// display. They are not fed back into any server-side computation here.
type EnvironmentalParams struct {
	WindSpeedKMH float64 `json:"windSpeedKmh"`
	HumidityPct  float64 `json:"humidityPct"`
	TemperatureC float64 `json:"temperatureC"`
}
