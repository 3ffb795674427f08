package types

// DefaultTimeSteps are the discrete simulated time offsets (hours) at which
// fire-spread state is sampled.
var DefaultTimeSteps = []int{1, 2, 3, 6, 12}

// SpreadPoint is a point location with a fire intensity at one time step.
type SpreadPoint struct {
	Lat       float64 `json:"lat"`
	Long      float64 `json:"long"`
	Intensity float64 `json:"intensity"` // [0,1]
	TimeStep  int     `json:"timeStep"`
}

// SimulationData is the aggregate spread result for one analysis run.
// BurnedAreaKM2 and SpreadRateKMH are indexed identically to TimeSteps.
type SimulationData struct {
	RegionID      string                `json:"regionId"`
	GeneratedAt   string                `json:"generatedAt"`
	Confidence    float64               `json:"confidence"`
	TimeSteps     []int                 `json:"timeSteps"`
	SpreadByStep  map[int][]SpreadPoint `json:"spreadByStep"`
	BurnedAreaKM2 []float64             `json:"burnedAreaKm2"`
	SpreadRateKMH []float64             `json:"spreadRateKmh"`
}
